// Package hetzner implements the Hetzner Cloud inventory adapter: hardware
// facts are a mix of the hcloud API (datacenters, server types, hourly
// prices) and manual lookup tables for what the API doesn't expose (CPU
// manufacturer/family, location coordinates), ported from
// original_source/src/sc_crawler/vendors/hcloud.py.
package hetzner

import (
	"context"
	"fmt"
	"os"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// Fetcher is the raw-payload I/O surface the adapter needs. Kept separate
// from the normalize functions so tests can stub it without hitting the
// real Hetzner API.
type Fetcher interface {
	Datacenters(ctx context.Context) ([]*hcloud.Datacenter, error)
	ServerTypes(ctx context.Context) ([]*hcloud.ServerType, error)
}

type sdkFetcher struct {
	client *hcloud.Client
}

// NewSDKFetcher builds the production Fetcher from the HCLOUD_TOKEN
// environment variable, matching original_source/src/sc_crawler/vendors/hcloud.py's env-var-driven client
// construction (spec.md §6.3).
func NewSDKFetcher() (Fetcher, error) {
	token := os.Getenv("HCLOUD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("hetzner: HCLOUD_TOKEN environment variable is required")
	}
	return &sdkFetcher{client: hcloud.NewClient(hcloud.WithToken(token))}, nil
}

func (f *sdkFetcher) Datacenters(ctx context.Context) ([]*hcloud.Datacenter, error) {
	datacenters, err := f.client.Datacenter.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("hetzner: listing datacenters: %w", err)
	}
	return datacenters, nil
}

func (f *sdkFetcher) ServerTypes(ctx context.Context) ([]*hcloud.ServerType, error) {
	serverTypes, err := f.client.ServerType.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("hetzner: listing server types: %w", err)
	}
	return serverTypes, nil
}
