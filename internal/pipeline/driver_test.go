package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/store"
)

// stubAdapter returns exactly what the test configures it to, call by
// call, mirroring the S1-S6 stub adapters of spec.md §8.
type stubAdapter struct {
	complianceFrameworks []schema.VendorComplianceLink
	regions              []schema.Region
	zones                []schema.Zone
	servers              []schema.Server
	serverPrices         []schema.ServerPrice
	serverPricesSpot     []schema.ServerPrice
	storages             []schema.Storage
	storagePrices        []schema.StoragePrice
	trafficPrices        []schema.TrafficPrice
	ipv4Prices           []schema.Ipv4Price
}

func (s *stubAdapter) InventoryComplianceFrameworks(v *runtime.Vendor) ([]schema.VendorComplianceLink, error) {
	return s.complianceFrameworks, nil
}
func (s *stubAdapter) InventoryRegions(v *runtime.Vendor) ([]schema.Region, error) { return s.regions, nil }
func (s *stubAdapter) InventoryZones(v *runtime.Vendor) ([]schema.Zone, error)     { return s.zones, nil }
func (s *stubAdapter) InventoryServers(v *runtime.Vendor) ([]schema.Server, error) { return s.servers, nil }
func (s *stubAdapter) InventoryServerPrices(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	return s.serverPrices, nil
}
func (s *stubAdapter) InventoryServerPricesSpot(v *runtime.Vendor) ([]schema.ServerPrice, error) {
	return s.serverPricesSpot, nil
}
func (s *stubAdapter) InventoryStorages(v *runtime.Vendor) ([]schema.Storage, error) {
	return s.storages, nil
}
func (s *stubAdapter) InventoryStoragePrices(v *runtime.Vendor) ([]schema.StoragePrice, error) {
	return s.storagePrices, nil
}
func (s *stubAdapter) InventoryTrafficPrices(v *runtime.Vendor) ([]schema.TrafficPrice, error) {
	return s.trafficPrices, nil
}
func (s *stubAdapter) InventoryIpv4Prices(v *runtime.Vendor) ([]schema.Ipv4Price, error) {
	return s.ipv4Prices, nil
}

func openTestEngine(t *testing.T) *store.Engine {
	t.Helper()
	e, err := store.Open(store.Config{Dialect: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func hetznerS1Adapter() *stubAdapter {
	return &stubAdapter{
		regions: []schema.Region{{VendorID: "hcloud", RegionID: "fsn1", Name: "Falkenstein", CountryID: "DE"}},
		zones:   []schema.Zone{{VendorID: "hcloud", RegionID: "fsn1", ZoneID: "fsn1", Name: "fsn1"}},
		servers: []schema.Server{{
			VendorID: "hcloud", ServerID: "cx11", Name: "cx11", APIReference: "cx11", DisplayName: "CX11",
			Vcpus: 1, CpuAllocation: scfields.CPUShared, CpuArchitecture: scfields.ArchX86_64,
			MemoryAmount: 4096,
		}},
		serverPrices: []schema.ServerPrice{{
			VendorID: "hcloud", RegionID: "fsn1", ZoneID: "fsn1", ServerID: "cx11",
			Allocation: scfields.AllocationOnDemand, OperatingSystem: "Linux",
			PriceFields: schema.PriceFields{Unit: scfields.UnitHour, Price: 0.005, Currency: "USD"},
		}},
	}
}

func s1Vendor(t *testing.T, adapter runtime.Adapter) *runtime.Vendor {
	t.Helper()
	return &runtime.Vendor{
		Vendor:  schema.Vendor{VendorID: "hcloud", Name: "Hetzner"},
		Adapter: adapter,
	}
}

func TestS1_HetznerFreshPull(t *testing.T) {
	e := openTestEngine(t)
	d := &Driver{Engine: e}
	v := s1Vendor(t, hetznerS1Adapter())

	results, err := d.Run(context.Background(), []*runtime.Vendor{v})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("vendor pull failed: %v", results[0].Err)
	}

	var count int
	e.RawDB().QueryRow(`SELECT COUNT(*) FROM server_price WHERE status = 'ACTIVE'`).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 active server_price row, got %d", count)
	}
	e.RawDB().QueryRow(`SELECT COUNT(*) FROM server WHERE status = 'ACTIVE'`).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 active server row, got %d", count)
	}
}

func TestS2_Deprovisioning(t *testing.T) {
	e := openTestEngine(t)
	d := &Driver{Engine: e}

	adapter := hetznerS1Adapter()
	v := s1Vendor(t, adapter)
	if _, err := d.Run(context.Background(), []*runtime.Vendor{v}); err != nil {
		t.Fatalf("first pull: %v", err)
	}

	adapter.servers = nil
	adapter.serverPrices = nil
	v2 := s1Vendor(t, adapter)
	if _, err := d.Run(context.Background(), []*runtime.Vendor{v2}); err != nil {
		t.Fatalf("second pull: %v", err)
	}

	var status string
	e.RawDB().QueryRow(`SELECT status FROM server WHERE vendor_id = 'hcloud' AND server_id = 'cx11'`).Scan(&status)
	if status != "INACTIVE" {
		t.Errorf("expected server cx11 to be INACTIVE after deprovisioning, got %q", status)
	}
	var count int
	e.RawDB().QueryRow(`SELECT COUNT(*) FROM server`).Scan(&count)
	if count != 1 {
		t.Errorf("expected the row to persist (no delete), got %d rows", count)
	}
}

func TestS3_SpotScopedInvalidation(t *testing.T) {
	e := openTestEngine(t)
	d := &Driver{Engine: e}

	adapter := hetznerS1Adapter()
	v := s1Vendor(t, adapter)
	if _, err := d.Run(context.Background(), []*runtime.Vendor{v}); err != nil {
		t.Fatalf("first pull: %v", err)
	}

	var before string
	e.RawDB().QueryRow(`SELECT observed_at FROM server_price WHERE allocation = 'ONDEMAND'`).Scan(&before)

	adapter.serverPricesSpot = nil
	v2 := s1Vendor(t, adapter)
	if err := d.stageServerPricesSpot(context.Background(), v2); err != nil {
		t.Fatalf("stageServerPricesSpot error = %v", err)
	}

	var after string
	var spotCount int
	e.RawDB().QueryRow(`SELECT observed_at FROM server_price WHERE allocation = 'ONDEMAND'`).Scan(&after)
	e.RawDB().QueryRow(`SELECT COUNT(*) FROM server_price WHERE allocation = 'SPOT'`).Scan(&spotCount)
	if before != after {
		t.Errorf("expected ONDEMAND observed_at untouched by a spot-only stage: %q != %q", before, after)
	}
	if spotCount != 0 {
		t.Errorf("expected no SPOT rows, got %d", spotCount)
	}
}

// TestS4_ScdRecordsDeprovisioningTransition covers spec.md §8 scenario S4:
// a server that disappears from a vendor's API must leave behind an
// ACTIVE->INACTIVE transition in server_scd, not just a silent gap.
func TestS4_ScdRecordsDeprovisioningTransition(t *testing.T) {
	e := openTestEngine(t)
	d := &Driver{Engine: e, Opts: Options{SCD: true}}

	adapter := hetznerS1Adapter()
	v := s1Vendor(t, adapter)
	if _, err := d.Run(context.Background(), []*runtime.Vendor{v}); err != nil {
		t.Fatalf("first pull: %v", err)
	}

	adapter.servers = nil
	adapter.serverPrices = nil
	v2 := s1Vendor(t, adapter)
	if _, err := d.Run(context.Background(), []*runtime.Vendor{v2}); err != nil {
		t.Fatalf("second pull: %v", err)
	}

	rows, err := e.RawDB().Query(`SELECT status FROM server_scd WHERE vendor_id = 'hcloud' AND server_id = 'cx11' ORDER BY observed_at ASC`)
	if err != nil {
		t.Fatalf("query server_scd: %v", err)
	}
	defer rows.Close()

	var statuses []string
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			t.Fatalf("scan: %v", err)
		}
		statuses = append(statuses, status)
	}

	if len(statuses) != 2 {
		t.Fatalf("expected 2 server_scd rows (ACTIVE then INACTIVE), got %v", statuses)
	}
	if statuses[0] != "ACTIVE" || statuses[1] != "INACTIVE" {
		t.Errorf("expected [ACTIVE INACTIVE] in observed_at order, got %v", statuses)
	}
}

func TestS6_ReferentialGuard(t *testing.T) {
	e := openTestEngine(t)
	d := &Driver{Engine: e}

	adapter := hetznerS1Adapter()
	adapter.serverPrices = append(adapter.serverPrices, schema.ServerPrice{
		VendorID: "hcloud", RegionID: "fsn1", ZoneID: "fsn1", ServerID: "cx99-does-not-exist",
		Allocation: scfields.AllocationOnDemand, OperatingSystem: "Linux",
		PriceFields: schema.PriceFields{Unit: scfields.UnitHour, Price: 0.01, Currency: "USD"},
	})
	v := s1Vendor(t, adapter)

	results, err := d.Run(context.Background(), []*runtime.Vendor{v})
	if err == nil {
		t.Fatal("expected Run() to report that its only vendor failed")
	}
	if results[0].Err == nil {
		t.Fatal("expected the stage to abort with a referential error")
	}

	var count int
	e.RawDB().QueryRow(`SELECT COUNT(*) FROM server_price WHERE server_id = 'cx99-does-not-exist'`).Scan(&count)
	if count != 0 {
		t.Errorf("expected the bad row never committed, got %d", count)
	}
}
