package hetzner

import (
	"context"

	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

// Adapter implements runtime.Adapter for Hetzner Cloud.
type Adapter struct {
	Fetcher Fetcher
	Dataset *inspector.Dataset
}

// New builds a Hetzner adapter on top of the given Fetcher. Pass nil for
// dataset to skip inspector hardware enrichment.
func New(fetcher Fetcher, dataset *inspector.Dataset) *Adapter {
	return &Adapter{Fetcher: fetcher, Dataset: dataset}
}

// BenchmarkDataset exposes the inspector dataset to the pipeline's server
// stage, which harvests BenchmarkScore rows after upserting servers.
func (a *Adapter) BenchmarkDataset() *inspector.Dataset { return a.Dataset }

// InventoryComplianceFrameworks is a manual list, same as original_source/src/sc_crawler/vendors/hcloud.py: no
// API exposes compliance certifications.
func (a *Adapter) InventoryComplianceFrameworks(v *runtime.Vendor) ([]schema.VendorComplianceLink, error) {
	ids := lookup.VendorCompliance[vendorID]
	out := make([]schema.VendorComplianceLink, 0, len(ids))
	for _, id := range ids {
		out = append(out, schema.VendorComplianceLink{VendorID: vendorID, ComplianceFrameworkID: id})
	}
	return out, nil
}

func (a *Adapter) InventoryRegions(v *runtime.Vendor) ([]schema.Region, error) {
	raw, err := a.Fetcher.Datacenters(context.Background())
	if err != nil {
		return nil, err
	}
	return inventoryRegions(raw), nil
}

func (a *Adapter) InventoryZones(v *runtime.Vendor) ([]schema.Zone, error) {
	return inventoryZones(v.Regions), nil
}

func (a *Adapter) InventoryServers(v *runtime.Vendor) ([]schema.Server, error) {
	raw, err := a.Fetcher.ServerTypes(context.Background())
	if err != nil {
		return nil, err
	}
	servers := inventoryServers(raw)
	if a.Dataset != nil {
		for i := range servers {
			inspector.HydrateServer(a.Dataset, v.Log, &servers[i])
		}
	}
	return servers, nil
}

// regionsByLocation groups the vendor's already-discovered regions by their
// Hetzner location alias (the single entry in Aliases), so server type
// pricing rows — which the API reports per location, not per datacenter —
// can be fanned out to every datacenter/region sharing that location.
func regionsByLocation(regions []schema.Region) map[string][]schema.Region {
	out := map[string][]schema.Region{}
	for _, r := range regions {
		if len(r.Aliases) == 0 {
			continue
		}
		loc := r.Aliases[0]
		out[loc] = append(out[loc], r)
	}
	return out
}

func (a *Adapter) InventoryServerPrices(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	raw, err := a.Fetcher.ServerTypes(context.Background())
	if err != nil {
		return nil, err
	}
	return inventoryServerPrices(raw, regionsByLocation(v.Regions)), nil
}

// InventoryServerPricesSpot is always empty: Hetzner Cloud has no spot
// market (ported verbatim from original_source/src/sc_crawler/vendors/hcloud.py's inventory_server_prices_spot).
func (a *Adapter) InventoryServerPricesSpot(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	return nil, nil
}

func (a *Adapter) InventoryStorages(v *runtime.Vendor) ([]schema.Storage, error) {
	return inventoryStorages(), nil
}

func (a *Adapter) InventoryStoragePrices(v *runtime.Vendor) ([]schema.StoragePrice, error) {
	return inventoryStoragePrices(v.Regions), nil
}

func (a *Adapter) InventoryTrafficPrices(v *runtime.Vendor) ([]schema.TrafficPrice, error) {
	return inventoryTrafficPrices(v.Regions), nil
}

func (a *Adapter) InventoryIpv4Prices(v *runtime.Vendor) ([]schema.Ipv4Price, error) {
	return inventoryIpv4Prices(v.Regions), nil
}

var _ runtime.Adapter = (*Adapter)(nil)
