package hetzner

import (
	"context"
	"errors"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

type stubFetcher struct {
	datacenters []*hcloud.Datacenter
	serverTypes []*hcloud.ServerType
	err         error
}

func (s *stubFetcher) Datacenters(ctx context.Context) ([]*hcloud.Datacenter, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.datacenters, nil
}

func (s *stubFetcher) ServerTypes(ctx context.Context) ([]*hcloud.ServerType, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.serverTypes, nil
}

func newTestFetcher() *stubFetcher {
	return &stubFetcher{
		datacenters: []*hcloud.Datacenter{
			testDatacenter(2, "nbg1-dc3", "nbg1", "DE", "Nuremberg"),
		},
		serverTypes: []*hcloud.ServerType{
			{
				ID: 22, Name: "cpx21", Cores: 3, Memory: 4, Disk: 80,
				CPUType: hcloud.CPUTypeShared, Architecture: hcloud.ArchitectureX86,
				StorageType: hcloud.StorageTypeLocal, IncludedTraffic: 20 * 1024 * 1024 * 1024,
				Pricings: []hcloud.ServerTypeLocationPricing{
					{
						Location: &hcloud.Location{Name: "nbg1"},
						Pricing:  hcloud.ServerTypePricing{Hourly: hcloud.Price{Net: "0.0071"}},
					},
				},
			},
		},
	}
}

func TestAdapter_InventoryComplianceFrameworks(t *testing.T) {
	a := New(newTestFetcher(), nil)
	out, err := a.InventoryComplianceFrameworks(&runtime.Vendor{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, link := range out {
		if link.VendorID != vendorID {
			t.Errorf("unexpected vendor id: %s", link.VendorID)
		}
	}
}

func TestAdapter_FullFlow(t *testing.T) {
	a := New(newTestFetcher(), nil)
	v := &runtime.Vendor{}

	regions, err := a.InventoryRegions(v)
	if err != nil {
		t.Fatalf("InventoryRegions: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	v.Regions = regions

	zones, err := a.InventoryZones(v)
	if err != nil {
		t.Fatalf("InventoryZones: %v", err)
	}
	if len(zones) != 1 || zones[0].ZoneID != regions[0].RegionID {
		t.Fatalf("expected 1 dummy zone matching region id, got %+v", zones)
	}
	v.Zones = zones

	servers, err := a.InventoryServers(v)
	if err != nil {
		t.Fatalf("InventoryServers: %v", err)
	}
	if len(servers) != 1 {
		t.Fatalf("expected 1 server, got %d", len(servers))
	}
	v.Servers = servers

	prices, err := a.InventoryServerPrices(v)
	if err != nil {
		t.Fatalf("InventoryServerPrices: %v", err)
	}
	if len(prices) != 1 || prices[0].RegionID != regions[0].RegionID {
		t.Fatalf("unexpected server prices: %+v", prices)
	}

	spot, err := a.InventoryServerPricesSpot(v)
	if err != nil || spot != nil {
		t.Fatalf("expected nil, nil spot prices (no spot market at Hetzner), got %v, %v", spot, err)
	}
}

func TestAdapter_ManualCatalogs(t *testing.T) {
	a := New(newTestFetcher(), nil)
	v := &runtime.Vendor{Regions: []schema.Region{{VendorID: vendorID, RegionID: "2"}}}

	storages, err := a.InventoryStorages(v)
	if err != nil || len(storages) != 1 {
		t.Fatalf("expected 1 manual storage entry, got %v, err=%v", storages, err)
	}

	storagePrices, err := a.InventoryStoragePrices(v)
	if err != nil || len(storagePrices) != 1 {
		t.Fatalf("expected 1 storage price row, got %v, err=%v", storagePrices, err)
	}

	trafficPrices, err := a.InventoryTrafficPrices(v)
	if err != nil || len(trafficPrices) != 2 {
		t.Fatalf("expected 2 traffic price rows, got %v, err=%v", trafficPrices, err)
	}

	ipv4Prices, err := a.InventoryIpv4Prices(v)
	if err != nil || len(ipv4Prices) != 1 {
		t.Fatalf("expected 1 ipv4 price row, got %v, err=%v", ipv4Prices, err)
	}
}

func TestAdapter_PropagatesFetcherError(t *testing.T) {
	a := New(&stubFetcher{err: errors.New("boom")}, nil)
	if _, err := a.InventoryRegions(&runtime.Vendor{}); err == nil {
		t.Fatal("expected error to propagate")
	}
}

var _ runtime.Adapter = (*Adapter)(nil)
