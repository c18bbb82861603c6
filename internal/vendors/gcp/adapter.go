package gcp

import (
	"context"

	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/internal/vendors/common"
	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scfields"
)

// Adapter implements runtime.Adapter for GCP Compute Engine.
type Adapter struct {
	Fetcher Fetcher
	Dataset *inspector.Dataset
}

// New builds a GCP adapter on top of the given Fetcher. Pass nil for
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
	out := make([]schema.Region, 0, len(gcpRegions))
	for id, meta := range gcpRegions {
		lat, lon, year, green := meta.lat, meta.lon, meta.foundingYear, meta.greenEnergy
		out = append(out, schema.Region{
			VendorID:     vendorID,
			RegionID:     id,
			Name:         id,
			APIReference: id,
			DisplayName:  "GCP " + id,
			CountryID:    meta.countryID,
			Lat:          &lat,
			Lon:          &lon,
			FoundingYear: &year,
			GreenEnergy:  &green,
		})
	}
	return out, nil
}

func (a *Adapter) InventoryZones(v *runtime.Vendor) ([]schema.Zone, error) {
	var out []schema.Zone
	for _, region := range v.Regions {
		raw, err := a.Fetcher.Zones(context.Background(), region.RegionID)
		if err != nil {
			return nil, err
		}
		zones := inventoryZones(raw, region.RegionID)
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
	for _, zone := range v.Zones {
		raw, err := a.Fetcher.MachineTypes(context.Background(), zone.ZoneID)
		if err != nil {
			return nil, err
		}
		for _, s := range inventoryServers(raw) {
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

// regionServers re-fetches one zone's machine types per region to learn
// which server ids and specs are actually offered there, rather than
// pricing every known server (from every region) into every region — a
// region's catalog of machine types is not uniform across GCP.
func (a *Adapter) regionServers(zoneIDs []string) ([]schema.Server, error) {
	if len(zoneIDs) == 0 {
		return nil, nil
	}
	raw, err := a.Fetcher.MachineTypes(context.Background(), zoneIDs[0])
	if err != nil {
		return nil, err
	}
	return inventoryServers(raw), nil
}

func (a *Adapter) InventoryServerPrices(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	byRegion := a.zonesByRegion(v)
	var out []schema.ServerPrice
	for _, region := range v.Regions {
		servers, err := a.regionServers(byRegion[region.RegionID])
		if err != nil {
			return nil, err
		}
		out = append(out, inventoryServerPrices(region.RegionID, byRegion[region.RegionID], servers, scfields.AllocationOnDemand)...)
	}
	return out, nil
}

func (a *Adapter) InventoryServerPricesSpot(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	byRegion := a.zonesByRegion(v)
	var out []schema.ServerPrice
	for _, region := range v.Regions {
		servers, err := a.regionServers(byRegion[region.RegionID])
		if err != nil {
			return nil, err
		}
		out = append(out, inventoryServerPrices(region.RegionID, byRegion[region.RegionID], servers, scfields.AllocationSpot)...)
	}
	return out, nil
}

// InventoryStorages, InventoryStoragePrices, InventoryTrafficPrices, and
// InventoryIpv4Prices are empty for GCP: persistent disk and egress pricing
// requires the Cloud Billing Catalog API, which this adapter doesn't wire a
// client for (see DESIGN.md) — the same upstream-gap reasoning as AWS/Azure
// (Open Question decision 4).
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
