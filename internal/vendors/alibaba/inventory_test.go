package alibaba

import (
	"testing"

	ecs "github.com/alibabacloud-go/ecs-20140526/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/sparecores/sc-crawler/pkg/scfields"
)

func TestInventoryRegions_EnrichesFromManualTable(t *testing.T) {
	raw := []*ecs.DescribeRegionsResponseBodyRegionsRegion{
		{RegionId: tea.String("eu-central-1"), LocalName: tea.String("Germany (Frankfurt)")},
	}
	got := inventoryRegions(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 region, got %d", len(got))
	}
	r := got[0]
	if r.CountryID != "DE" || r.City == nil || *r.City != "Frankfurt" {
		t.Errorf("unexpected region: %+v", r)
	}
}

func TestInventoryZones(t *testing.T) {
	raw := []*ecs.DescribeZonesResponseBodyZonesZone{{ZoneId: tea.String("eu-central-1a")}}
	got := inventoryZones("eu-central-1", raw)
	if len(got) != 1 || got[0].ZoneID != "eu-central-1a" || got[0].RegionID != "eu-central-1" {
		t.Fatalf("unexpected zones: %+v", got)
	}
}

func TestInventoryServers_ArchAndAllocation(t *testing.T) {
	raw := []*ecs.DescribeInstanceTypesResponseBodyInstanceTypesInstanceType{
		{
			InstanceTypeId:     tea.String("ecs.c6.large"),
			InstanceTypeFamily: tea.String("ecs.c6"),
			CpuArchitecture:    tea.String("X86"),
			CpuCoreCount:       tea.Int32(2),
			MemorySize:         tea.Float32(4),
			GPUAmount:          tea.Int32(0),
		},
	}
	got := inventoryServers(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 server, got %d", len(got))
	}
	s := got[0]
	if s.CpuArchitecture != scfields.ArchX86_64 {
		t.Errorf("expected x86_64, got %s", s.CpuArchitecture)
	}
	if s.CpuAllocation != scfields.CPUDedicated {
		t.Errorf("expected dedicated allocation, got %s", s.CpuAllocation)
	}
	if s.MemoryAmount != 4096 {
		t.Errorf("expected memory amount 4096, got %d", s.MemoryAmount)
	}
}

func TestInventoryStorages_HDDOnlyForCloud(t *testing.T) {
	got := inventoryStorages()
	if len(got) != len(diskCatalogOrder) {
		t.Fatalf("expected %d disk types, got %d", len(diskCatalogOrder), len(got))
	}
	for _, s := range got {
		if s.StorageID == "cloud" && s.StorageType != scfields.StorageHDD {
			t.Errorf("expected cloud disk to be HDD, got %s", s.StorageType)
		}
		if s.StorageID == "cloud_ssd" && s.StorageType != scfields.StorageSSD {
			t.Errorf("expected cloud_ssd disk to be SSD, got %s", s.StorageType)
		}
	}
}

func TestCpuArch(t *testing.T) {
	if cpuArch("x86") != scfields.ArchX86_64 {
		t.Error("expected x86_64 for lowercase x86")
	}
	if cpuArch("ARM") != scfields.ArchARM64 {
		t.Error("expected arm64 for ARM")
	}
	if cpuArch("unknown") != "" {
		t.Error("expected empty string for unknown arch")
	}
}
