package alibaba

import (
	"context"
	"errors"
	"testing"

	ecs "github.com/alibabacloud-go/ecs-20140526/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

type stubFetcher struct {
	regions   []*ecs.DescribeRegionsResponseBodyRegionsRegion
	zones     map[string][]*ecs.DescribeZonesResponseBodyZonesZone
	instances map[string][]*ecs.DescribeInstanceTypesResponseBodyInstanceTypesInstanceType
	err       error
}

func (s *stubFetcher) Regions(ctx context.Context) ([]*ecs.DescribeRegionsResponseBodyRegionsRegion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.regions, nil
}

func (s *stubFetcher) Zones(ctx context.Context, regionID string) ([]*ecs.DescribeZonesResponseBodyZonesZone, error) {
	if s.err != nil {
		return nil, s.err
	}
	zones, ok := s.zones[regionID]
	if !ok {
		return nil, errors.New("unknown region " + regionID)
	}
	return zones, nil
}

func (s *stubFetcher) InstanceTypes(ctx context.Context, regionID string) ([]*ecs.DescribeInstanceTypesResponseBodyInstanceTypesInstanceType, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.instances[regionID], nil
}

func (s *stubFetcher) InstancePrice(ctx context.Context, regionID, instanceType string) (float32, string, error) {
	if s.err != nil {
		return 0, "", s.err
	}
	return 0.50, "USD", nil
}

func (s *stubFetcher) DiskPrice(ctx context.Context, regionID, diskCategory, performanceLevel string) (float32, string, error) {
	if s.err != nil {
		return 0, "", s.err
	}
	return 0.10, "USD", nil
}

func newTestFetcher() *stubFetcher {
	return &stubFetcher{
		regions: []*ecs.DescribeRegionsResponseBodyRegionsRegion{
			{RegionId: tea.String("eu-central-1"), LocalName: tea.String("Frankfurt")},
		},
		zones: map[string][]*ecs.DescribeZonesResponseBodyZonesZone{
			"eu-central-1": {{ZoneId: tea.String("eu-central-1a")}},
		},
		instances: map[string][]*ecs.DescribeInstanceTypesResponseBodyInstanceTypesInstanceType{
			"eu-central-1": {{
				InstanceTypeId: tea.String("ecs.c6.large"), InstanceTypeFamily: tea.String("ecs.c6"),
				CpuArchitecture: tea.String("X86"), CpuCoreCount: tea.Int32(2), MemorySize: tea.Float32(4),
			}},
		},
	}
}

func TestAdapter_FullFlow(t *testing.T) {
	a := New(newTestFetcher(), nil)
	v := &runtime.Vendor{}

	regions, err := a.InventoryRegions(v)
	if err != nil || len(regions) != 1 {
		t.Fatalf("InventoryRegions: %v, %v", regions, err)
	}
	v.Regions = regions

	zones, err := a.InventoryZones(v)
	if err != nil || len(zones) != 1 {
		t.Fatalf("InventoryZones: %v, %v", zones, err)
	}
	v.Zones = zones

	servers, err := a.InventoryServers(v)
	if err != nil || len(servers) != 1 {
		t.Fatalf("InventoryServers: %v, %v", servers, err)
	}
	v.Servers = servers

	prices, err := a.InventoryServerPrices(v)
	if err != nil || len(prices) != 1 {
		t.Fatalf("InventoryServerPrices: %v, %v", prices, err)
	}

	spot, err := a.InventoryServerPricesSpot(v)
	if err != nil || spot != nil {
		t.Fatalf("expected nil, nil spot prices (unimplemented upstream), got %v, %v", spot, err)
	}

	traffic, err := a.InventoryTrafficPrices(v)
	if err != nil || traffic != nil {
		t.Fatalf("expected nil, nil traffic prices (unimplemented upstream), got %v, %v", traffic, err)
	}

	storages, err := a.InventoryStorages(v)
	if err != nil || len(storages) != len(diskCatalogOrder) {
		t.Fatalf("InventoryStorages: %v, %v", storages, err)
	}

	storagePrices, err := a.InventoryStoragePrices(v)
	if err != nil || len(storagePrices) != len(diskCatalogOrder) {
		t.Fatalf("InventoryStoragePrices: %v, %v", storagePrices, err)
	}
}

func TestAdapter_ZonesSkipsFailingRegionInsteadOfAborting(t *testing.T) {
	f := newTestFetcher()
	a := New(f, nil)
	v := &runtime.Vendor{Regions: []schema.Region{
		{VendorID: vendorID, RegionID: "eu-central-1"},
		{VendorID: vendorID, RegionID: "cn-beijing"},
	}}
	zones, err := a.InventoryZones(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 1 {
		t.Fatalf("expected only eu-central-1's zone (cn-beijing's Zones call fails), got %+v", zones)
	}
}

func TestAdapter_PropagatesFetcherError(t *testing.T) {
	a := New(&stubFetcher{err: errors.New("boom")}, nil)
	if _, err := a.InventoryRegions(&runtime.Vendor{}); err == nil {
		t.Fatal("expected error to propagate")
	}
}

var _ runtime.Adapter = (*Adapter)(nil)
