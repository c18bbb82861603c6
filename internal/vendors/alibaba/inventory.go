package alibaba

import (
	"strings"

	ecs "github.com/alibabacloud-go/ecs-20140526/v4/client"
	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scfields"
)

const vendorID = "alibaba"

func inventoryComplianceFrameworks() []schema.VendorComplianceLink {
	ids := lookup.VendorCompliance[vendorID]
	out := make([]schema.VendorComplianceLink, 0, len(ids))
	for _, id := range ids {
		out = append(out, schema.VendorComplianceLink{VendorID: vendorID, ComplianceFrameworkID: id})
	}
	return out
}

func inventoryRegions(raw []*ecs.DescribeRegionsResponseBodyRegionsRegion) []schema.Region {
	out := make([]schema.Region, 0, len(raw))
	for _, r := range raw {
		id := tea(r.RegionId)
		name := tea(r.LocalName)
		meta := alibabaRegionCoords[id]
		city := meta.city
		lon := meta.lon
		lat := meta.lat
		out = append(out, schema.Region{
			VendorID:     vendorID,
			RegionID:     id,
			Name:         name,
			APIReference: id,
			DisplayName:  name,
			Aliases:      []string{},
			CountryID:    meta.countryID,
			City:         &city,
			Lon:          &lon,
			Lat:          &lat,
		})
	}
	return out
}

// inventoryZones normalizes one region's zone listing. Mainland China
// regions are queryable here (unlike the crawler that produced
// original_source, which ran outside the Great Firewall and had to skip
// them); callers may still choose to skip a region whose Fetcher.Zones call
// errors, matching the original's per-region try/except ClientException.
func inventoryZones(regionID string, raw []*ecs.DescribeZonesResponseBodyZonesZone) []schema.Zone {
	out := make([]schema.Zone, 0, len(raw))
	for _, z := range raw {
		id := tea(z.ZoneId)
		out = append(out, schema.Zone{
			VendorID:     vendorID,
			RegionID:     regionID,
			ZoneID:       id,
			Name:         id,
			APIReference: id,
			DisplayName:  id,
		})
	}
	return out
}

func inventoryServers(raw []*ecs.DescribeInstanceTypesResponseBodyInstanceTypesInstanceType) []schema.Server {
	out := make([]schema.Server, 0, len(raw))
	for _, it := range raw {
		id := tea(it.InstanceTypeId)
		family := tea(it.InstanceTypeFamily)
		vcpus := int(teaInt32(it.CpuCoreCount))
		description := tea(it.InstanceFamilyLevel) + ", " + tea(it.InstanceCategory)
		cpuModel := tea(it.PhysicalProcessorModel)
		gpuModel := tea(it.GPUSpec)
		arch := cpuArch(tea(it.CpuArchitecture))
		hypervisor := "KVM"
		cpuAllocation := scfields.CPUDedicated
		memoryAmount := int(teaFloat32(it.MemorySize) * 1024)
		gpuCount := float64(teaInt32(it.GPUAmount))

		out = append(out, schema.Server{
			VendorID:        vendorID,
			ServerID:        id,
			Name:            id,
			APIReference:    id,
			DisplayName:     id,
			Description:     &description,
			Family:          &family,
			Vcpus:           vcpus,
			Hypervisor:      &hypervisor,
			CpuAllocation:   cpuAllocation,
			CpuCores:        &vcpus,
			CpuArchitecture: arch,
			CpuModel:        &cpuModel,
			MemoryAmount:    memoryAmount,
			GpuCount:        gpuCount,
			GpuModel:        &gpuModel,
		})
	}
	return out
}

func cpuArch(raw string) scfields.CpuArchitecture {
	switch strings.ToUpper(raw) {
	case "X86":
		return scfields.ArchX86_64
	case "ARM":
		return scfields.ArchARM64
	default:
		return ""
	}
}

func tea(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func teaInt32(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}

func teaFloat32(f *float32) float32 {
	if f == nil {
		return 0
	}
	return *f
}

// serverPrice builds the pay-as-you-go hourly ServerPrice row for one
// (region, server) pair. The original's primary source is a paginated bulk
// SKU-price endpoint (QuerySkuPriceList); this adapter instead prices each
// (region, server) pair individually via Fetcher.InstancePrice, trading a
// bulk call for N+1 calls since no Go client for that bulk endpoint exists
// in the corpus (see DESIGN.md).
func serverPrice(regionID, serverID string, price float32, currency string) schema.ServerPrice {
	return schema.ServerPrice{
		VendorID: vendorID,
		RegionID: regionID,
		ServerID: serverID,
		PriceFields: schema.PriceFields{
			Unit:     scfields.UnitHour,
			Price:    float64(price),
			Currency: currency,
		},
	}
}

// diskCatalog is the manual storage type table the API doesn't expose,
// ported from the original's hardcoded disk_info list (source:
// alibabacloud.com/help/en/ecs/user-guide/essds).
type diskMeta struct {
	minSize, maxSize, maxIops, maxThroughput int
	description                              string
}

var diskCatalog = map[string]diskMeta{
	"cloud_essd-pl0":   {minSize: 1, maxSize: 65536, maxIops: 10000, maxThroughput: 1440, description: "Enterprise SSD with Performance level 0."},
	"cloud_essd-pl1":   {minSize: 20, maxSize: 65536, maxIops: 50000, maxThroughput: 2800, description: "Enterprise SSD with Performance level 1."},
	"cloud_essd-pl2":   {minSize: 461, maxSize: 65536, maxIops: 100000, maxThroughput: 6000, description: "Enterprise SSD with Performance level 2."},
	"cloud_essd-pl3":   {minSize: 1261, maxSize: 65536, maxIops: 1000000, maxThroughput: 32000, description: "Enterprise SSD with Performance level 3."},
	"cloud_ssd":        {minSize: 20, maxSize: 32768, maxIops: 20000, maxThroughput: 256, description: "Standard SSD."},
	"cloud_efficiency": {minSize: 20, maxSize: 32768, maxIops: 3000, maxThroughput: 80, description: "Ultra Disk, older generation."},
	"cloud":            {minSize: 5, maxSize: 2000, maxIops: 300, maxThroughput: 40, description: "Lowest cost HDD."},
}

// diskCatalogOrder fixes iteration order for deterministic test output; Go
// map iteration is randomized and the original's list was ordered too.
var diskCatalogOrder = []string{
	"cloud_essd-pl0", "cloud_essd-pl1", "cloud_essd-pl2", "cloud_essd-pl3",
	"cloud_ssd", "cloud_efficiency", "cloud",
}

func inventoryStorages() []schema.Storage {
	out := make([]schema.Storage, 0, len(diskCatalogOrder))
	for _, id := range diskCatalogOrder {
		meta := diskCatalog[id]
		description := meta.description
		storageType := scfields.StorageSSD
		if id == "cloud" {
			storageType = scfields.StorageHDD
		}
		minSize, maxSize, maxIops, maxThroughput := meta.minSize, meta.maxSize, meta.maxIops, meta.maxThroughput
		out = append(out, schema.Storage{
			VendorID:       vendorID,
			StorageID:      id,
			Name:           id,
			Description:    &description,
			StorageType:    storageType,
			MaxIops:        &maxIops,
			MaxThroughput:  &maxThroughput,
			MinSize:        &minSize,
			MaxSize:        &maxSize,
		})
	}
	return out
}

// essdPerformanceLevels are the cloud_essd variants the original prices
// separately (each is a distinct storage_id: "cloud_essd-pl0".."pl3").
var essdPerformanceLevels = []string{"PL0", "PL1", "PL2", "PL3"}

func storagePrice(regionID, storageID string, price float32, currency string) schema.StoragePrice {
	return schema.StoragePrice{
		VendorID:  vendorID,
		RegionID:  regionID,
		StorageID: storageID,
		PriceFields: schema.PriceFields{
			Unit:     scfields.UnitGBMonth,
			Price:    float64(price),
			Currency: currency,
		},
	}
}
