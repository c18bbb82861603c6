package upcloud

import (
	"context"

	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

// Adapter implements runtime.Adapter for UpCloud.
type Adapter struct {
	Fetcher Fetcher
	Dataset *inspector.Dataset
}

// New builds an UpCloud adapter on top of the given Fetcher. Pass nil for
// dataset to skip inspector hardware enrichment.
func New(fetcher Fetcher, dataset *inspector.Dataset) *Adapter {
	return &Adapter{Fetcher: fetcher, Dataset: dataset}
}

// BenchmarkDataset exposes the inspector dataset to the pipeline's server
// stage, which harvests BenchmarkScore rows after upserting servers.
func (a *Adapter) BenchmarkDataset() *inspector.Dataset { return a.Dataset }

// InventoryComplianceFrameworks is a manual list, collected from UpCloud's
// Security and Standards docs (ported from original_source/src/sc_crawler/vendors/upcloud.py's inventory_compliance_frameworks).
func (a *Adapter) InventoryComplianceFrameworks(v *runtime.Vendor) ([]schema.VendorComplianceLink, error) {
	return inventoryComplianceFrameworks(), nil
}

func (a *Adapter) InventoryRegions(v *runtime.Vendor) ([]schema.Region, error) {
	zones, err := a.Fetcher.Zones(context.Background())
	if err != nil {
		return nil, err
	}
	return inventoryRegions(zones)
}

func (a *Adapter) InventoryZones(v *runtime.Vendor) ([]schema.Zone, error) {
	return inventoryZones(v.Regions), nil
}

// InventoryServers returns no rows: UpCloud's public API exposes no machine
// catalog and the upstream crawler this module was ported from has never
// implemented this endpoint either (its inventory_servers is a commented-out
// stub). This is an upstream gap, not a Go-side omission.
func (a *Adapter) InventoryServers(v *runtime.Vendor) ([]schema.Server, error) {
	return nil, nil
}

// InventoryServerPrices mirrors the upstream gap noted on InventoryServers.
func (a *Adapter) InventoryServerPrices(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	return nil, nil
}

// InventoryServerPricesSpot: UpCloud has no spot market.
func (a *Adapter) InventoryServerPricesSpot(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	return nil, nil
}

// InventoryStorages mirrors the upstream gap noted on InventoryServers.
func (a *Adapter) InventoryStorages(v *runtime.Vendor) ([]schema.Storage, error) {
	return nil, nil
}

// InventoryStoragePrices mirrors the upstream gap noted on InventoryServers.
func (a *Adapter) InventoryStoragePrices(v *runtime.Vendor) ([]schema.StoragePrice, error) {
	return nil, nil
}

// InventoryTrafficPrices mirrors the upstream gap noted on InventoryServers.
func (a *Adapter) InventoryTrafficPrices(v *runtime.Vendor) ([]schema.TrafficPrice, error) {
	return nil, nil
}

// InventoryIpv4Prices mirrors the upstream gap noted on InventoryServers.
func (a *Adapter) InventoryIpv4Prices(v *runtime.Vendor) ([]schema.Ipv4Price, error) {
	return nil, nil
}

var _ runtime.Adapter = (*Adapter)(nil)
