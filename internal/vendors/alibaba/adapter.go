package alibaba

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

// Adapter implements runtime.Adapter for Alibaba Cloud ECS.
type Adapter struct {
	Fetcher Fetcher
	Dataset *inspector.Dataset
}

// New builds an Alibaba Cloud adapter on top of the given Fetcher. Pass nil
// for dataset to skip inspector hardware enrichment.
func New(fetcher Fetcher, dataset *inspector.Dataset) *Adapter {
	return &Adapter{Fetcher: fetcher, Dataset: dataset}
}

// BenchmarkDataset exposes the inspector dataset to the pipeline's server
// stage, which harvests BenchmarkScore rows after upserting servers.
func (a *Adapter) BenchmarkDataset() *inspector.Dataset { return a.Dataset }

// InventoryComplianceFrameworks is a manual list sourced from Alibaba
// Cloud's Trust Center (ported from original_source/src/sc_crawler/vendors/alicloud.py's inventory_compliance_frameworks).
func (a *Adapter) InventoryComplianceFrameworks(v *runtime.Vendor) ([]schema.VendorComplianceLink, error) {
	return inventoryComplianceFrameworks(), nil
}

func (a *Adapter) InventoryRegions(v *runtime.Vendor) ([]schema.Region, error) {
	raw, err := a.Fetcher.Regions(context.Background())
	if err != nil {
		return nil, err
	}
	return inventoryRegions(raw), nil
}

// InventoryZones queries zones per region, skipping (and logging) any
// region whose Fetcher call errors rather than failing the whole pull,
// mirroring the original's per-region try/except ClientException.
func (a *Adapter) InventoryZones(v *runtime.Vendor) ([]schema.Zone, error) {
	var out []schema.Zone
	for _, region := range v.Regions {
		raw, err := a.Fetcher.Zones(context.Background(), region.RegionID)
		if err != nil {
			if v.Log != nil {
				v.Log.Warn("alibaba: skipping zones for region", slog.String("region", region.RegionID), slog.Any("error", err))
			}
			continue
		}
		out = append(out, inventoryZones(region.RegionID, raw)...)
	}
	return out, nil
}

func (a *Adapter) InventoryServers(v *runtime.Vendor) ([]schema.Server, error) {
	var out []schema.Server
	seen := map[string]bool{}
	for _, region := range v.Regions {
		raw, err := a.Fetcher.InstanceTypes(context.Background(), region.RegionID)
		if err != nil {
			if v.Log != nil {
				v.Log.Warn("alibaba: skipping instance types for region", slog.String("region", region.RegionID), slog.Any("error", err))
			}
			continue
		}
		for _, s := range inventoryServers(raw) {
			if seen[s.ServerID] {
				continue
			}
			seen[s.ServerID] = true
			out = append(out, s)
		}
	}
	if a.Dataset != nil {
		for i := range out {
			inspector.HydrateServer(a.Dataset, v.Log, &out[i])
		}
	}
	return out, nil
}

// InventoryServerPrices prices every known server in every region
// individually. See inventory.go's serverPrice doc comment for why this
// adapter trades the original's bulk SKU-price endpoint for N+1 calls.
func (a *Adapter) InventoryServerPrices(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	var out []schema.ServerPrice
	for _, region := range v.Regions {
		for _, server := range v.Servers {
			price, currency, err := a.Fetcher.InstancePrice(context.Background(), region.RegionID, server.ServerID)
			if err != nil {
				if v.Log != nil {
					v.Log.Warn("alibaba: skipping price", slog.String("region", region.RegionID), slog.String("server", server.ServerID), slog.Any("error", err))
				}
				continue
			}
			out = append(out, serverPrice(region.RegionID, server.ServerID, price, currency))
		}
	}
	return out, nil
}

// InventoryServerPricesSpot is unimplemented upstream too (the original's
// inventory_server_prices_spot is a literal "TODO: implement later" stub).
func (a *Adapter) InventoryServerPricesSpot(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	return nil, nil
}

func (a *Adapter) InventoryStorages(v *runtime.Vendor) ([]schema.Storage, error) {
	return inventoryStorages(), nil
}

// InventoryStoragePrices prices every disk category (and, for cloud_essd,
// every performance level) in every region.
func (a *Adapter) InventoryStoragePrices(v *runtime.Vendor) ([]schema.StoragePrice, error) {
	var out []schema.StoragePrice
	for _, region := range v.Regions {
		for _, id := range diskCatalogOrder {
			category, level := id, ""
			if idx := indexOfDash(id); idx >= 0 {
				category, level = id[:idx], strings.ToUpper(id[idx+1:])
			}
			price, currency, err := a.Fetcher.DiskPrice(context.Background(), region.RegionID, category, level)
			if err != nil {
				if v.Log != nil {
					v.Log.Debug("alibaba: disk not available in region", slog.String("region", region.RegionID), slog.String("disk", id), slog.Any("error", err))
				}
				continue
			}
			out = append(out, storagePrice(region.RegionID, id, price, currency))
		}
	}
	return out, nil
}

func indexOfDash(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return i
		}
	}
	return -1
}

// InventoryTrafficPrices is unimplemented upstream (the original's
// inventory_traffic_prices is a "TODO: implement later" stub).
func (a *Adapter) InventoryTrafficPrices(v *runtime.Vendor) ([]schema.TrafficPrice, error) {
	return nil, nil
}

// InventoryIpv4Prices is unimplemented upstream (the original's
// inventory_ipv4_prices is a "TODO: implement later" stub).
func (a *Adapter) InventoryIpv4Prices(v *runtime.Vendor) ([]schema.Ipv4Price, error) {
	return nil, nil
}

var _ runtime.Adapter = (*Adapter)(nil)
