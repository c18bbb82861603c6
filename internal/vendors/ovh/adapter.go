package ovh

import (
	"context"

	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

// Adapter implements runtime.Adapter for OVHcloud Public Cloud.
type Adapter struct {
	Fetcher Fetcher
	Dataset *inspector.Dataset
}

// New builds an OVH adapter on top of the given Fetcher. Pass nil for
// dataset to skip inspector hardware enrichment.
func New(fetcher Fetcher, dataset *inspector.Dataset) *Adapter {
	return &Adapter{Fetcher: fetcher, Dataset: dataset}
}

// BenchmarkDataset exposes the inspector dataset to the pipeline's server
// stage, which harvests BenchmarkScore rows after upserting servers.
func (a *Adapter) BenchmarkDataset() *inspector.Dataset { return a.Dataset }

// InventoryComplianceFrameworks is a manual list, verified against OVH's
// published compliance pages (ported from original_source/src/sc_crawler/vendors/ovh.py's inventory_compliance_frameworks).
func (a *Adapter) InventoryComplianceFrameworks(v *runtime.Vendor) ([]schema.VendorComplianceLink, error) {
	ids := lookup.VendorCompliance[vendorID]
	out := make([]schema.VendorComplianceLink, 0, len(ids))
	for _, id := range ids {
		out = append(out, schema.VendorComplianceLink{VendorID: vendorID, ComplianceFrameworkID: id})
	}
	return out, nil
}

func (a *Adapter) InventoryRegions(v *runtime.Vendor) ([]schema.Region, error) {
	codes, err := a.Fetcher.Regions(context.Background())
	if err != nil {
		return nil, err
	}
	return inventoryRegions(codes), nil
}

func (a *Adapter) InventoryZones(v *runtime.Vendor) ([]schema.Zone, error) {
	var out []schema.Zone
	for _, region := range v.Regions {
		info, err := a.Fetcher.Region(context.Background(), region.RegionID)
		if err != nil {
			return nil, err
		}
		out = append(out, inventoryZones(region.RegionID, info.AvailabilityZone)...)
	}
	return out, nil
}

func (a *Adapter) InventoryServers(v *runtime.Vendor) ([]schema.Server, error) {
	cat, err := a.Fetcher.Catalog(context.Background())
	if err != nil {
		return nil, err
	}
	servers := inventoryServers(cat.Addons)
	if a.Dataset != nil {
		for i := range servers {
			inspector.HydrateServer(a.Dataset, v.Log, &servers[i])
		}
	}
	return servers, nil
}

func (a *Adapter) InventoryServerPrices(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	cat, err := a.Fetcher.Catalog(context.Background())
	if err != nil {
		return nil, err
	}
	return inventoryServerPrices(cat.Addons), nil
}

// InventoryServerPricesSpot is always empty: OVHcloud Public Cloud has no
// spot market (ported from original_source/src/sc_crawler/vendors/ovh.py's one-line
// inventory_server_prices_spot).
func (a *Adapter) InventoryServerPricesSpot(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	return nil, nil
}

func (a *Adapter) InventoryStorages(v *runtime.Vendor) ([]schema.Storage, error) {
	cat, err := a.Fetcher.Catalog(context.Background())
	if err != nil {
		return nil, err
	}
	return inventoryStorages(cat.Addons), nil
}

func (a *Adapter) InventoryStoragePrices(v *runtime.Vendor) ([]schema.StoragePrice, error) {
	cat, err := a.Fetcher.Catalog(context.Background())
	if err != nil {
		return nil, err
	}
	return inventoryStoragePrices(cat.Addons), nil
}

func (a *Adapter) InventoryTrafficPrices(v *runtime.Vendor) ([]schema.TrafficPrice, error) {
	return inventoryTrafficPrices(v.Regions), nil
}

func (a *Adapter) InventoryIpv4Prices(v *runtime.Vendor) ([]schema.Ipv4Price, error) {
	return inventoryIpv4Prices(v.Regions), nil
}

var _ runtime.Adapter = (*Adapter)(nil)
