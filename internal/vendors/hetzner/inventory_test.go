package hetzner

import (
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

func testDatacenter(id int64, name, location, country, city string) *hcloud.Datacenter {
	return &hcloud.Datacenter{
		ID:   id,
		Name: name,
		Location: &hcloud.Location{
			Name:    location,
			Country: country,
			City:    city,
		},
	}
}

func TestInventoryRegions(t *testing.T) {
	raw := []*hcloud.Datacenter{
		testDatacenter(2, "nbg1-dc3", "nbg1", "DE", "Nuremberg"),
		testDatacenter(5, "ash-dc1", "ash", "US", "Ashburn, VA"),
	}
	got := inventoryRegions(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(got))
	}
	nbg := got[0]
	if nbg.RegionID != "2" || nbg.CountryID != "DE" || nbg.Lat == nil {
		t.Errorf("unexpected nbg1 region: %+v", nbg)
	}
	if len(nbg.Aliases) != 1 || nbg.Aliases[0] != "nbg1" {
		t.Errorf("expected alias nbg1, got %v", nbg.Aliases)
	}
}

func TestInventoryZones(t *testing.T) {
	regions := []schema.Region{{VendorID: vendorID, RegionID: "2", Name: "nbg1-dc3"}}
	got := inventoryZones(regions)
	if len(got) != 1 || got[0].ZoneID != "2" {
		t.Fatalf("expected dummy zone mirroring region id, got %+v", got)
	}
}

func TestFamilyOf(t *testing.T) {
	if got := familyOf("CPX31"); got != "CPX" {
		t.Errorf("familyOf(CPX31) = %q, want CPX", got)
	}
}

func TestServerCPU(t *testing.T) {
	manufacturer, family := serverCPU("cax21")
	if manufacturer != "AMD" || family != "Ampere Altra" {
		t.Errorf("unexpected cpu meta for cax21: %s/%s", manufacturer, family)
	}
	manufacturer, family = serverCPU("unknown-type")
	if manufacturer != "" || family != "" {
		t.Errorf("expected empty cpu meta for unknown type, got %s/%s", manufacturer, family)
	}
}

func TestInventoryServers(t *testing.T) {
	raw := []*hcloud.ServerType{
		{
			ID: 22, Name: "cpx21", Cores: 3, Memory: 4, Disk: 80,
			CPUType: hcloud.CPUTypeShared, Architecture: hcloud.ArchitectureX86,
			StorageType: hcloud.StorageTypeLocal, IncludedTraffic: 20 * 1024 * 1024 * 1024,
		},
		{
			ID: 45, Name: "cax31", Cores: 8, Memory: 16, Disk: 160,
			CPUType: hcloud.CPUTypeDedicated, Architecture: hcloud.ArchitectureARM,
			StorageType: hcloud.StorageTypeLocal, IncludedTraffic: 20 * 1024 * 1024 * 1024,
		},
	}
	got := inventoryServers(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(got))
	}
	cpx21 := got[0]
	if cpx21.CpuAllocation != scfields.CPUShared {
		t.Errorf("expected shared allocation for cpx21, got %s", cpx21.CpuAllocation)
	}
	if cpx21.MemoryAmount != 4096 {
		t.Errorf("expected memory amount 4096, got %d", cpx21.MemoryAmount)
	}
	if cpx21.CpuManufacturer == nil || *cpx21.CpuManufacturer != "AMD" {
		t.Errorf("unexpected cpu manufacturer: %+v", cpx21.CpuManufacturer)
	}

	cax31 := got[1]
	if cax31.CpuArchitecture != scfields.ArchARM64 {
		t.Errorf("expected arm64 for cax31, got %s", cax31.CpuArchitecture)
	}
	if cax31.CpuAllocation != scfields.CPUDedicated {
		t.Errorf("expected dedicated allocation for cax31, got %s", cax31.CpuAllocation)
	}
}

func TestInventoryServerPrices_FansOutAcrossSharedLocation(t *testing.T) {
	serverTypes := []*hcloud.ServerType{
		{
			ID: 22, Name: "cpx21",
			Pricings: []hcloud.ServerTypeLocationPricing{
				{
					Location: &hcloud.Location{Name: "nbg1"},
					Pricing:  hcloud.ServerTypePricing{Hourly: hcloud.Price{Net: "0.0071"}},
				},
			},
		},
	}
	regionsByLocation := map[string][]schema.Region{
		"nbg1": {
			{VendorID: vendorID, RegionID: "2", Name: "nbg1-dc3"},
			{VendorID: vendorID, RegionID: "3", Name: "nbg1-dc4"},
		},
	}
	got := inventoryServerPrices(serverTypes, regionsByLocation)
	if len(got) != 2 {
		t.Fatalf("expected 2 price rows (one per datacenter sharing nbg1), got %d", len(got))
	}
	for _, p := range got {
		if p.Price != 0.0071 || p.Currency != "EUR" {
			t.Errorf("unexpected price row: %+v", p)
		}
	}
}

func TestInventoryTrafficPrices(t *testing.T) {
	regions := []schema.Region{{VendorID: vendorID, RegionID: "2"}}
	got := inventoryTrafficPrices(regions)
	if len(got) != 2 {
		t.Fatalf("expected in+out rows, got %d", len(got))
	}
	if got[0].Direction != scfields.TrafficIn || got[0].Price != 0 {
		t.Errorf("expected free inbound traffic, got %+v", got[0])
	}
	if got[1].Direction != scfields.TrafficOut || got[1].Price <= 0 {
		t.Errorf("expected priced outbound traffic, got %+v", got[1])
	}
}
