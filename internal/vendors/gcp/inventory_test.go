package gcp

import (
	"testing"

	"cloud.google.com/go/compute/apiv1/computepb"

	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

func strPtr(s string) *string { return &s }
func int32Ptr(i int32) *int32 { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestInventoryZones(t *testing.T) {
	raw := []*computepb.Zone{
		{Name: strPtr("us-central1-a")},
		{Name: nil},
	}
	got := inventoryZones(raw, "us-central1")
	if len(got) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(got))
	}
	if got[0].ZoneID != "us-central1-a" {
		t.Errorf("unexpected zone id: %s", got[0].ZoneID)
	}
}

func TestInventoryServers(t *testing.T) {
	raw := []*computepb.MachineType{
		{
			Name:      strPtr("n2-standard-4"),
			GuestCpus: int32Ptr(4),
			MemoryMb:  int32Ptr(16384),
		},
		{
			Name:        strPtr("e2-micro"),
			GuestCpus:   int32Ptr(2),
			MemoryMb:    int32Ptr(1024),
			IsSharedCpu: boolPtr(true),
		},
		{
			Name:      strPtr("a2-highgpu-1g"),
			GuestCpus: int32Ptr(12),
			MemoryMb:  int32Ptr(87040),
			Accelerators: []*computepb.Accelerators{
				{GuestAcceleratorCount: int32Ptr(1), GuestAcceleratorType: strPtr("nvidia-tesla-a100")},
			},
		},
		{
			Name:      strPtr("t2a-standard-4"),
			GuestCpus: int32Ptr(4),
			MemoryMb:  int32Ptr(16384),
		},
	}
	got := inventoryServers(raw)
	if len(got) != 4 {
		t.Fatalf("expected 4 servers, got %d", len(got))
	}

	byID := map[string]int{}
	for i, s := range got {
		byID[s.ServerID] = i
	}

	n2 := got[byID["n2-standard-4"]]
	if n2.Family == nil || *n2.Family != "n2" || n2.Vcpus != 4 || n2.MemoryAmount != 16384 {
		t.Errorf("unexpected n2-standard-4: %+v", n2)
	}
	if n2.CpuAllocation != scfields.CPUDedicated {
		t.Errorf("expected dedicated allocation for n2-standard-4, got %s", n2.CpuAllocation)
	}

	e2 := got[byID["e2-micro"]]
	if e2.CpuAllocation != scfields.CPUBurstable {
		t.Errorf("expected burstable allocation for e2-micro, got %s", e2.CpuAllocation)
	}

	a2 := got[byID["a2-highgpu-1g"]]
	if a2.GpuCount != 1 || a2.GpuModel == nil || *a2.GpuModel != "nvidia-tesla-a100" {
		t.Errorf("unexpected a2-highgpu-1g gpu fields: %+v", a2)
	}

	t2a := got[byID["t2a-standard-4"]]
	if t2a.CpuArchitecture != scfields.ArchARM64 {
		t.Errorf("expected arm64 for t2a-standard-4, got %s", t2a.CpuArchitecture)
	}
}

func TestFamilyOf(t *testing.T) {
	if got := familyOf("n2-standard-4"); got == nil || *got != "n2" {
		t.Errorf("familyOf(n2-standard-4) = %v, want n2", got)
	}
	if got := familyOf("noseparator"); got != nil {
		t.Errorf("familyOf(noseparator) = %v, want nil", got)
	}
}

func TestEstimatePrice(t *testing.T) {
	price := estimatePrice("n2", 4, 16384, 0, "", "us-central1")
	if price <= 0 {
		t.Errorf("expected positive price, got %v", price)
	}
	withGPU := estimatePrice("a2", 12, 87040, 1, "nvidia-tesla-a100", "us-central1")
	if withGPU <= price {
		t.Errorf("expected GPU machine to cost more than non-GPU baseline")
	}
}

func TestInventoryServerPrices_SpotIsCheaperThanOnDemand(t *testing.T) {
	family := "n2"
	servers := []schema.Server{
		{VendorID: vendorID, ServerID: "n2-standard-4", Family: &family, Vcpus: 4, MemoryAmount: 16384},
	}
	ondemand := inventoryServerPrices("us-central1", []string{"us-central1-a"}, servers, scfields.AllocationOnDemand)
	spot := inventoryServerPrices("us-central1", []string{"us-central1-a"}, servers, scfields.AllocationSpot)
	if len(ondemand) != 1 || len(spot) != 1 {
		t.Fatalf("expected 1 price row each, got %d/%d", len(ondemand), len(spot))
	}
	if spot[0].Price >= ondemand[0].Price {
		t.Errorf("expected spot price %v to be cheaper than ondemand %v", spot[0].Price, ondemand[0].Price)
	}
}

func TestInventoryServerPrices_FansOutAcrossZones(t *testing.T) {
	family := "n2"
	servers := []schema.Server{
		{VendorID: vendorID, ServerID: "n2-standard-4", Family: &family, Vcpus: 4, MemoryAmount: 16384},
	}
	got := inventoryServerPrices("us-central1", []string{"us-central1-a", "us-central1-b"}, servers, scfields.AllocationOnDemand)
	if len(got) != 2 {
		t.Fatalf("expected 2 price rows (one per zone), got %d", len(got))
	}
}
