package azure

import (
	"context"

	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/internal/vendors/common"
	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scfields"
)

// Adapter implements runtime.Adapter for Azure.
type Adapter struct {
	Fetcher Fetcher
	Dataset *inspector.Dataset
}

// New builds an Azure adapter on top of the given Fetcher. Pass nil for
// dataset to skip inspector hardware enrichment.
func New(fetcher Fetcher, dataset *inspector.Dataset) *Adapter {
	return &Adapter{Fetcher: fetcher, Dataset: dataset}
}

// BenchmarkDataset exposes the inspector dataset to the pipeline's server
// stage, which harvests BenchmarkScore rows after upserting servers.
func (a *Adapter) BenchmarkDataset() *inspector.Dataset { return a.Dataset }

func (a *Adapter) InventoryComplianceFrameworks(v *runtime.Vendor) ([]schema.VendorComplianceLink, error) {
	ids := lookup.VendorCompliance[vendorID]
	out := make([]schema.VendorComplianceLink, 0, len(ids))
	for _, id := range ids {
		out = append(out, schema.VendorComplianceLink{VendorID: vendorID, ComplianceFrameworkID: id})
	}
	return out, nil
}

func (a *Adapter) InventoryRegions(v *runtime.Vendor) ([]schema.Region, error) {
	return inventoryRegions(), nil
}

// InventoryZones fetches every region's VM size SKUs once (the same data
// InventoryServers will re-fetch) to extract which zones the region
// supports. A region with no reported zones still gets one synthetic zone
// from common.SingleZone so later pricing stages always have a zone to
// attach a price row to.
func (a *Adapter) InventoryZones(v *runtime.Vendor) ([]schema.Zone, error) {
	var out []schema.Zone
	for _, region := range v.Regions {
		skus, err := a.Fetcher.VMSizes(context.Background(), region.RegionID)
		if err != nil {
			return nil, err
		}
		zones := inventoryZones(skus, region.RegionID)
		if len(zones) == 0 {
			zones = []schema.Zone{common.SingleZone(vendorID, region)}
		}
		out = append(out, zones...)
	}
	return out, nil
}

func (a *Adapter) InventoryServers(v *runtime.Vendor) ([]schema.Server, error) {
	seen := map[string]bool{}
	var out []schema.Server
	for _, region := range v.Regions {
		skus, err := a.Fetcher.VMSizes(context.Background(), region.RegionID)
		if err != nil {
			return nil, err
		}
		for _, s := range inventoryServers(skus) {
			if seen[s.ServerID] {
				continue
			}
			seen[s.ServerID] = true
			if a.Dataset != nil {
				inspector.HydrateServer(a.Dataset, v.Log, &s)
			}
			out = append(out, s)
		}
	}
	return out, nil
}

func (a *Adapter) zonesByRegion(v *runtime.Vendor) map[string][]string {
	byRegion := map[string][]string{}
	for _, z := range v.Zones {
		byRegion[z.RegionID] = append(byRegion[z.RegionID], z.ZoneID)
	}
	return byRegion
}

func (a *Adapter) InventoryServerPrices(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	byRegion := a.zonesByRegion(v)
	var out []schema.ServerPrice
	for _, region := range v.Regions {
		prices, err := a.Fetcher.OnDemandPrices(context.Background(), region.RegionID)
		if err != nil {
			return nil, err
		}
		out = append(out, inventoryServerPrices(region.RegionID, byRegion[region.RegionID], prices, scfields.AllocationOnDemand)...)
	}
	return out, nil
}

func (a *Adapter) InventoryServerPricesSpot(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	byRegion := a.zonesByRegion(v)
	var out []schema.ServerPrice
	for _, region := range v.Regions {
		prices, err := a.Fetcher.SpotPrices(context.Background(), region.RegionID)
		if err != nil {
			return nil, err
		}
		out = append(out, inventoryServerPrices(region.RegionID, byRegion[region.RegionID], prices, scfields.AllocationSpot)...)
	}
	return out, nil
}

// InventoryStorages, InventoryStoragePrices, InventoryTrafficPrices, and
// InventoryIpv4Prices are empty for Azure: managed disk and bandwidth
// pricing requires the Azure Retail Prices API's "Storage"/"Bandwidth"
// service names, which original_source's azure.py adapter never queries
// either (spec.md §9 decision 4: an upstream gap, not a Go-side omission).
func (a *Adapter) InventoryStorages(v *runtime.Vendor) ([]schema.Storage, error) {
	return nil, nil
}

func (a *Adapter) InventoryStoragePrices(v *runtime.Vendor) ([]schema.StoragePrice, error) {
	return nil, nil
}

func (a *Adapter) InventoryTrafficPrices(v *runtime.Vendor) ([]schema.TrafficPrice, error) {
	return nil, nil
}

func (a *Adapter) InventoryIpv4Prices(v *runtime.Vendor) ([]schema.Ipv4Price, error) {
	return nil, nil
}

var _ runtime.Adapter = (*Adapter)(nil)
