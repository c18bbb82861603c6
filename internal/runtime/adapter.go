// Package runtime decorates a schema.Vendor with the session handle,
// progress tracker, logger, and adapter it needs at pull time, and wires
// vendor ids to their adapters through a static registry — the Go
// replacement for the Python package's dynamic module-import-by-name
// (original_source/src/sc_crawler/vendors.py), per spec.md §4.4/§4.7.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/sparecores/sc-crawler/pkg/progress"
	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/store"
)

// Adapter is the inventory surface every vendor must implement, mirroring
// spec.md §4.4's required adapter surface verbatim. Each method fans out
// internally (e.g. one worker per region) if it wants to; the runtime
// aggregates before handing rows to a pipeline stage.
type Adapter interface {
	InventoryComplianceFrameworks(v *Vendor) ([]schema.VendorComplianceLink, error)
	InventoryRegions(v *Vendor) ([]schema.Region, error)
	InventoryZones(v *Vendor) ([]schema.Zone, error)
	InventoryServers(v *Vendor) ([]schema.Server, error)
	InventoryServerPrices(v *Vendor) ([]schema.ServerPrice, error)
	InventoryServerPricesSpot(v *Vendor) ([]schema.ServerPrice, error)
	InventoryStorages(v *Vendor) ([]schema.Storage, error)
	InventoryStoragePrices(v *Vendor) ([]schema.StoragePrice, error)
	InventoryTrafficPrices(v *Vendor) ([]schema.TrafficPrice, error)
	InventoryIpv4Prices(v *Vendor) ([]schema.Ipv4Price, error)
}

// Vendor is a schema.Vendor decorated with what a pull needs at runtime: a
// session handle, a progress tracker, a logger, and the adapter bound to
// its vendor id. Per spec.md §4.4.
type Vendor struct {
	schema.Vendor
	Session  *store.Session
	Tracker  *progress.Tracker
	Log      *slog.Logger
	Adapter  Adapter
	Regions  []schema.Region
	Zones    []schema.Zone
	Servers  []schema.Server
	Storages []schema.Storage
}

// ConfigError reports a fatal, startup-time misconfiguration — e.g. a
// vendor id with no registered adapter. It is never returned mid-pull.
type ConfigError struct {
	Vendor string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("runtime: vendor %q: %s", e.Vendor, e.Reason)
}

// Registry maps a vendor id to its adapter implementation, wired at
// program start in place of Python's importlib module lookup.
type Registry map[string]Adapter

// Resolve validates that every id in vendorIDs has a registered, non-nil
// adapter, returning a *ConfigError for the first one that doesn't. A
// missing adapter is a fatal configuration error surfaced at startup, not
// on demand, per spec.md §4.4.
func (r Registry) Resolve(vendorIDs []string) (map[string]Adapter, error) {
	out := make(map[string]Adapter, len(vendorIDs))
	for _, id := range vendorIDs {
		adapter, ok := r[id]
		if !ok || adapter == nil {
			return nil, &ConfigError{Vendor: id, Reason: "no adapter registered for this vendor id"}
		}
		out[id] = adapter
	}
	return out, nil
}

// KnownVendors returns the registry's vendor ids, useful for validating
// --vendors/--exclude-vendors CLI flags against what's actually wired.
func (r Registry) KnownVendors() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	return ids
}
