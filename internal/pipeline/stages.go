package pipeline

import (
	"context"

	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/store"
)

// benchmarkSource is implemented by every vendor adapter that was built
// with an inspector dataset (internal/vendors/*/adapter.go's
// BenchmarkDataset method), letting stageServers harvest BenchmarkScore
// rows without widening runtime.Adapter's required surface.
type benchmarkSource interface {
	BenchmarkDataset() *inspector.Dataset
}

// stageComplianceFrameworks is stage 1 of spec.md §4.5.
func (d *Driver) stageComplianceFrameworks(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.VendorComplianceLink, error) { return store.MarkInactive(sess, schema.VendorComplianceLink{}, vendorScope(v)) },
		func() ([]schema.VendorComplianceLink, error) { return v.Adapter.InventoryComplianceFrameworks(v) },
		nil,
		d.Opts.SCD,
		func(r schema.VendorComplianceLink) schema.Record { return schema.VendorComplianceLinkScd{VendorComplianceLink: r} },
	)
	if err != nil {
		return err
	}
	logVendor(v, "compliance frameworks synced", "count", len(rows))
	return nil
}

// stageRegions is stage 2.
func (d *Driver) stageRegions(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.Region, error) { return store.MarkInactive(sess, schema.Region{}, vendorScope(v)) },
		func() ([]schema.Region, error) { return v.Adapter.InventoryRegions(v) },
		nil,
		d.Opts.SCD,
		func(r schema.Region) schema.Record { return schema.RegionScd{Region: r} },
	)
	if err != nil {
		return err
	}
	v.Regions = rows
	logVendor(v, "regions synced", "count", len(rows))
	return nil
}

// stageZones is stage 3; requires Regions from stage 2.
func (d *Driver) stageZones(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	knownRegions := make(map[string]bool, len(v.Regions))
	for _, r := range v.Regions {
		knownRegions[r.VendorID+"/"+r.RegionID] = true
	}

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.Zone, error) { return store.MarkInactive(sess, schema.Zone{}, vendorScope(v)) },
		func() ([]schema.Zone, error) { return v.Adapter.InventoryZones(v) },
		func(z schema.Zone) error {
			if !knownRegions[z.VendorID+"/"+z.RegionID] {
				return &ReferentialError{Table: "zone", Field: "region_id", Value: z.VendorID + "/" + z.RegionID}
			}
			return nil
		},
		d.Opts.SCD,
		func(r schema.Zone) schema.Record { return schema.ZoneScd{Zone: r} },
	)
	if err != nil {
		return err
	}
	v.Zones = rows
	logVendor(v, "zones synced", "count", len(rows))
	return nil
}

// stageServers is stage 4. Inspector enrichment (spec.md §4.6) runs
// inside InventoryServers via the adapter, which is handed the inspector
// dataset at construction time.
func (d *Driver) stageServers(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.Server, error) { return store.MarkInactive(sess, schema.Server{}, vendorScope(v)) },
		func() ([]schema.Server, error) { return v.Adapter.InventoryServers(v) },
		nil,
		d.Opts.SCD,
		func(r schema.Server) schema.Record { return schema.ServerScd{Server: r} },
	)
	if err != nil {
		return err
	}
	v.Servers = rows
	logVendor(v, "servers synced", "count", len(rows))

	if bs, ok := v.Adapter.(benchmarkSource); ok {
		if dataset := bs.BenchmarkDataset(); dataset != nil {
			var scores []schema.BenchmarkScore
			for _, s := range rows {
				scores = append(scores, inspector.HarvestBenchmarks(dataset, v.Log, s)...)
			}
			scoreRows, err := runUpsertStage(
				sess,
				func() ([]schema.BenchmarkScore, error) {
					return store.MarkInactive(sess, schema.BenchmarkScore{}, vendorScope(v))
				},
				func() ([]schema.BenchmarkScore, error) { return scores, nil },
				nil,
				false, // BenchmarkScore has no SCD companion (spec.md §3.3)
				nil,
			)
			if err != nil {
				return err
			}
			logVendor(v, "benchmark scores synced", "count", len(scoreRows))
		}
	}

	return nil
}

func (d *Driver) serverPriceReferentialCheck(v *runtime.Vendor) func(schema.ServerPrice) error {
	knownRegions := make(map[string]bool, len(v.Regions))
	for _, r := range v.Regions {
		knownRegions[r.VendorID+"/"+r.RegionID] = true
	}
	knownZones := make(map[string]bool, len(v.Zones))
	for _, z := range v.Zones {
		knownZones[z.VendorID+"/"+z.RegionID+"/"+z.ZoneID] = true
	}
	knownServers := make(map[string]bool, len(v.Servers))
	for _, s := range v.Servers {
		knownServers[s.VendorID+"/"+s.ServerID] = true
	}
	return func(p schema.ServerPrice) error {
		if !knownRegions[p.VendorID+"/"+p.RegionID] {
			return &ReferentialError{Table: "server_price", Field: "region_id", Value: p.VendorID + "/" + p.RegionID}
		}
		if !knownZones[p.VendorID+"/"+p.RegionID+"/"+p.ZoneID] {
			return &ReferentialError{Table: "server_price", Field: "zone_id", Value: p.VendorID + "/" + p.RegionID + "/" + p.ZoneID}
		}
		if !knownServers[p.VendorID+"/"+p.ServerID] {
			return &ReferentialError{Table: "server_price", Field: "server_id", Value: p.VendorID + "/" + p.ServerID}
		}
		return nil
	}
}

// stageServerPrices is stage 5: ondemand/reserved. Scoped invalidation
// excludes SPOT rows, which stage 6 owns exclusively (spec.md §4.5 stage
// 5/6, invariant 3).
func (d *Driver) stageServerPrices(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.ServerPrice, error) {
			return store.MarkInactiveExcept(sess, schema.ServerPrice{}, vendorScope(v), "allocation", string(scfields.AllocationSpot))
		},
		func() ([]schema.ServerPrice, error) { return v.Adapter.InventoryServerPrices(v) },
		d.serverPriceReferentialCheck(v),
		d.Opts.SCD,
		func(r schema.ServerPrice) schema.Record { return schema.ServerPriceScd{ServerPrice: r} },
	)
	if err != nil {
		return err
	}
	logVendor(v, "ondemand/reserved server prices synced", "count", len(rows))
	return nil
}

// stageServerPricesSpot is stage 6, run independently so it can be
// re-pulled more frequently than the rest of the pipeline.
func (d *Driver) stageServerPricesSpot(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	scope := vendorScope(v)
	scope["allocation"] = string(scfields.AllocationSpot)

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.ServerPrice, error) { return store.MarkInactive(sess, schema.ServerPrice{}, scope) },
		func() ([]schema.ServerPrice, error) { return v.Adapter.InventoryServerPricesSpot(v) },
		d.serverPriceReferentialCheck(v),
		d.Opts.SCD,
		func(r schema.ServerPrice) schema.Record { return schema.ServerPriceScd{ServerPrice: r} },
	)
	if err != nil {
		return err
	}
	logVendor(v, "spot server prices synced", "count", len(rows))
	return nil
}

// stageStorages is stage 7.
func (d *Driver) stageStorages(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	var storages []schema.Storage
	rows, err := runUpsertStage(
		sess,
		func() ([]schema.Storage, error) { return store.MarkInactive(sess, schema.Storage{}, vendorScope(v)) },
		func() ([]schema.Storage, error) { return v.Adapter.InventoryStorages(v) },
		nil,
		d.Opts.SCD,
		func(r schema.Storage) schema.Record { return schema.StorageScd{Storage: r} },
	)
	if err != nil {
		return err
	}
	storages = rows
	v.Storages = storages
	logVendor(v, "storages synced", "count", len(rows))
	return nil
}

// stageStoragePrices is stage 8; requires Regions and Storages.
func (d *Driver) stageStoragePrices(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	knownRegions := make(map[string]bool, len(v.Regions))
	for _, r := range v.Regions {
		knownRegions[r.VendorID+"/"+r.RegionID] = true
	}
	knownStorages := make(map[string]bool, len(v.Storages))
	for _, s := range v.Storages {
		knownStorages[s.VendorID+"/"+s.StorageID] = true
	}

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.StoragePrice, error) { return store.MarkInactive(sess, schema.StoragePrice{}, vendorScope(v)) },
		func() ([]schema.StoragePrice, error) { return v.Adapter.InventoryStoragePrices(v) },
		func(p schema.StoragePrice) error {
			if !knownRegions[p.VendorID+"/"+p.RegionID] {
				return &ReferentialError{Table: "storage_price", Field: "region_id", Value: p.VendorID + "/" + p.RegionID}
			}
			if !knownStorages[p.VendorID+"/"+p.StorageID] {
				return &ReferentialError{Table: "storage_price", Field: "storage_id", Value: p.VendorID + "/" + p.StorageID}
			}
			return nil
		},
		d.Opts.SCD,
		func(r schema.StoragePrice) schema.Record { return schema.StoragePriceScd{StoragePrice: r} },
	)
	if err != nil {
		return err
	}
	logVendor(v, "storage prices synced", "count", len(rows))
	return nil
}

// stageTrafficPrices is stage 9; requires Regions.
func (d *Driver) stageTrafficPrices(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	knownRegions := make(map[string]bool, len(v.Regions))
	for _, r := range v.Regions {
		knownRegions[r.VendorID+"/"+r.RegionID] = true
	}

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.TrafficPrice, error) { return store.MarkInactive(sess, schema.TrafficPrice{}, vendorScope(v)) },
		func() ([]schema.TrafficPrice, error) { return v.Adapter.InventoryTrafficPrices(v) },
		func(p schema.TrafficPrice) error {
			if !knownRegions[p.VendorID+"/"+p.RegionID] {
				return &ReferentialError{Table: "traffic_price", Field: "region_id", Value: p.VendorID + "/" + p.RegionID}
			}
			return nil
		},
		d.Opts.SCD,
		func(r schema.TrafficPrice) schema.Record { return schema.TrafficPriceScd{TrafficPrice: r} },
	)
	if err != nil {
		return err
	}
	logVendor(v, "traffic prices synced", "count", len(rows))
	return nil
}

// stageIpv4Prices is stage 10; requires Regions.
func (d *Driver) stageIpv4Prices(ctx context.Context, v *runtime.Vendor) (err error) {
	sess, err := begin(ctx, d.Engine)
	if err != nil {
		return err
	}
	defer finish(sess, &err)

	knownRegions := make(map[string]bool, len(v.Regions))
	for _, r := range v.Regions {
		knownRegions[r.VendorID+"/"+r.RegionID] = true
	}

	rows, err := runUpsertStage(
		sess,
		func() ([]schema.Ipv4Price, error) { return store.MarkInactive(sess, schema.Ipv4Price{}, vendorScope(v)) },
		func() ([]schema.Ipv4Price, error) { return v.Adapter.InventoryIpv4Prices(v) },
		func(p schema.Ipv4Price) error {
			if !knownRegions[p.VendorID+"/"+p.RegionID] {
				return &ReferentialError{Table: "ipv4_price", Field: "region_id", Value: p.VendorID + "/" + p.RegionID}
			}
			return nil
		},
		d.Opts.SCD,
		func(r schema.Ipv4Price) schema.Record { return schema.Ipv4PriceScd{Ipv4Price: r} },
	)
	if err != nil {
		return err
	}
	logVendor(v, "ipv4 prices synced", "count", len(rows))
	return nil
}
