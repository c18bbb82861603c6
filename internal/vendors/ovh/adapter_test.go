package ovh

import (
	"context"
	"errors"
	"testing"

	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

type stubFetcher struct {
	regions     []string
	regionInfos map[string]regionInfo
	cat         catalog
	err         error
}

func (s *stubFetcher) Regions(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.regions, nil
}

func (s *stubFetcher) Region(ctx context.Context, name string) (regionInfo, error) {
	if s.err != nil {
		return regionInfo{}, s.err
	}
	return s.regionInfos[name], nil
}

func (s *stubFetcher) Catalog(ctx context.Context) (catalog, error) {
	if s.err != nil {
		return catalog{}, s.err
	}
	return s.cat, nil
}

func newTestFetcher() *stubFetcher {
	return &stubFetcher{
		regions: []string{"GRA7"},
		regionInfos: map[string]regionInfo{
			"GRA7": {Name: "GRA7", Datacenter: "GRA", AvailabilityZone: nil},
		},
		cat: catalog{Addons: []catalogAddon{linuxInstanceAddon("b2-7", "b2-7.consumption", 7, 0)}},
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
	if len(zones) != 1 || zones[0].ZoneID != "gra7" {
		t.Fatalf("expected dummy lowercase zone fallback, got %+v", zones)
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
	if len(prices) != 2 {
		t.Fatalf("expected 2 price rows (server configured for 2 regions), got %d", len(prices))
	}

	spot, err := a.InventoryServerPricesSpot(v)
	if err != nil || spot != nil {
		t.Fatalf("expected nil, nil spot prices (no spot market at OVH), got %v, %v", spot, err)
	}
}

func TestAdapter_ManualTrafficAndIpv4(t *testing.T) {
	a := New(newTestFetcher(), nil)
	v := &runtime.Vendor{Regions: []schema.Region{
		{VendorID: vendorID, RegionID: "GRA7"},
		{VendorID: vendorID, RegionID: "SGP1"},
	}}

	traffic, err := a.InventoryTrafficPrices(v)
	if err != nil || len(traffic) != 4 {
		t.Fatalf("expected 4 traffic price rows (in+out x 2 regions), got %v, err=%v", traffic, err)
	}
	var sgpOut schema.TrafficPrice
	for _, tp := range traffic {
		if tp.RegionID == "SGP1" && tp.Direction == "OUT" {
			sgpOut = tp
		}
	}
	if len(sgpOut.PriceTiered) != 2 {
		t.Errorf("expected tiered pricing for APAC outbound, got %+v", sgpOut)
	}

	ipv4, err := a.InventoryIpv4Prices(v)
	if err != nil || len(ipv4) != 2 {
		t.Fatalf("expected 2 ipv4 price rows, got %v, err=%v", ipv4, err)
	}
	for _, p := range ipv4 {
		if p.Price != 0 {
			t.Errorf("expected free ipv4, got %+v", p)
		}
	}
}

func TestAdapter_PropagatesFetcherError(t *testing.T) {
	a := New(&stubFetcher{err: errors.New("boom")}, nil)
	if _, err := a.InventoryRegions(&runtime.Vendor{}); err == nil {
		t.Fatal("expected error to propagate")
	}
}

var _ runtime.Adapter = (*Adapter)(nil)
