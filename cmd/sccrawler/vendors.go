package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/internal/vendors/alibaba"
	"github.com/sparecores/sc-crawler/internal/vendors/aws"
	"github.com/sparecores/sc-crawler/internal/vendors/azure"
	"github.com/sparecores/sc-crawler/internal/vendors/cache"
	"github.com/sparecores/sc-crawler/internal/vendors/gcp"
	"github.com/sparecores/sc-crawler/internal/vendors/hetzner"
	"github.com/sparecores/sc-crawler/internal/vendors/ovh"
	"github.com/sparecores/sc-crawler/internal/vendors/upcloud"
)

// buildRegistry constructs every vendor adapter this binary knows how to
// build, wiring each one's Fetcher to dataset for inspector enrichment and,
// for the two vendors with no Go SDK in the example corpus, to diskCache
// for on-disk response caching (spec.md §4.7, "Adapters MAY cache").
//
// A vendor whose Fetcher fails to construct (typically a missing
// credentials env var) is logged and left out of the registry rather than
// aborting startup — mirroring the original crawler's per-vendor
// get_vendor() import, which only fails the vendors actually being pulled.
func buildRegistry(ctx context.Context, dataset *inspector.Dataset, diskCache *cache.Cache, log *slog.Logger) runtime.Registry {
	reg := runtime.Registry{}

	try := func(id string, build func() (runtime.Adapter, error)) {
		adapter, err := build()
		if err != nil {
			log.Warn("vendor adapter unavailable, skipping", "vendor", id, "error", err)
			return
		}
		reg[id] = adapter
	}

	try("aws", func() (runtime.Adapter, error) {
		f, err := aws.NewSDKFetcher(ctx)
		if err != nil {
			return nil, err
		}
		return aws.New(f, dataset), nil
	})
	try("azure", func() (runtime.Adapter, error) {
		f, err := azure.NewSDKFetcher()
		if err != nil {
			return nil, err
		}
		return azure.New(f, dataset), nil
	})
	try("gcp", func() (runtime.Adapter, error) {
		f, err := gcp.NewSDKFetcher(ctx)
		if err != nil {
			return nil, err
		}
		return gcp.New(f, dataset), nil
	})
	try("hetzner", func() (runtime.Adapter, error) {
		f, err := hetzner.NewSDKFetcher()
		if err != nil {
			return nil, err
		}
		return hetzner.New(f, dataset), nil
	})
	try("ovh", func() (runtime.Adapter, error) {
		f, err := ovh.NewHTTPFetcher(diskCache)
		if err != nil {
			return nil, err
		}
		return ovh.New(f, dataset), nil
	})
	try("upcloud", func() (runtime.Adapter, error) {
		f, err := upcloud.NewHTTPFetcher(diskCache)
		if err != nil {
			return nil, err
		}
		return upcloud.New(f, dataset), nil
	})
	try("alibaba", func() (runtime.Adapter, error) {
		f, err := alibaba.NewSDKFetcher()
		if err != nil {
			return nil, err
		}
		return alibaba.New(f, dataset), nil
	})

	return reg
}

// selectVendorIDs resolves the --include-vendor/--exclude-vendor flags
// (config.Validate already rejects setting both) against the curated
// roster in internal/lookup.
//
// An explicit --include-vendor is a firm request: an id whose adapter
// buildRegistry couldn't construct (e.g. missing credentials) is left in
// the result and surfaces as a fatal error from Registry.Resolve, since
// asking for a vendor by name and silently getting nothing would be a
// worse outcome than failing loudly. With no --include-vendor, the default
// is every known vendor minus --exclude-vendor minus whatever
// buildRegistry couldn't construct — mirroring the original crawler, which
// only pulls the vendors it actually managed to import.
func selectVendorIDs(include, exclude []string, available map[string]bool) ([]string, error) {
	known := make(map[string]bool, len(lookup.Vendors))
	for id := range lookup.Vendors {
		known[id] = true
	}

	if len(include) > 0 {
		for _, id := range include {
			if !known[id] {
				return nil, fmt.Errorf("unknown vendor %q", id)
			}
		}
		return include, nil
	}

	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		if !known[id] {
			return nil, fmt.Errorf("unknown vendor %q", id)
		}
		excluded[id] = true
	}

	out := make([]string, 0, len(known))
	for id := range known {
		if !excluded[id] && available[id] {
			out = append(out, id)
		}
	}
	return out, nil
}
