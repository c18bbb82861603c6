package aws

import (
	"strings"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scfields"
)

const vendorID = "aws"

// inventoryRegions is the pure normalize step for raw ec2types.Region rows,
// kept separate from Fetcher.Regions so it can be tested without network
// I/O (spec.md "adapter functions are pure").
func inventoryRegions(raw []ec2types.Region) []schema.Region {
	out := make([]schema.Region, 0, len(raw))
	for _, r := range raw {
		if r.RegionName == nil {
			continue
		}
		id := *r.RegionName
		region := schema.Region{
			VendorID:     vendorID,
			RegionID:     id,
			Name:         id,
			APIReference: id,
			DisplayName:  "AWS " + id,
			CountryID:    countryForRegion(id),
		}
		if meta, ok := awsRegionMeta[id]; ok {
			lat, lon, year, green := meta.lat, meta.lon, meta.foundingYear, meta.greenEnergy
			region.Lat = &lat
			region.Lon = &lon
			region.FoundingYear = &year
			region.GreenEnergy = &green
		}
		out = append(out, region)
	}
	return out
}

// countryForRegion derives a country id from an AWS region's geography
// prefix. Only the handful of countries lookup.Countries actually carries
// are mapped; everything else defaults to "US" (AWS's primary jurisdiction)
// rather than leaving the required field empty.
func countryForRegion(regionID string) string {
	switch {
	case strings.HasPrefix(regionID, "eu-west-2"), strings.HasPrefix(regionID, "eu-west-1"):
		if regionID == "eu-west-2" {
			return "GB"
		}
		return "IE"
	case strings.HasPrefix(regionID, "eu-central"):
		return "DE"
	case strings.HasPrefix(regionID, "ap-southeast-1"):
		return "SG"
	case strings.HasPrefix(regionID, "ap-southeast-2"):
		return "AU"
	case strings.HasPrefix(regionID, "ap-northeast-1"):
		return "JP"
	case strings.HasPrefix(regionID, "sa-east-1"):
		return "BR"
	case strings.HasPrefix(regionID, "ca-"):
		return "CA"
	default:
		return "US"
	}
}

func inventoryZones(raw []ec2types.AvailabilityZone, regionID string) []schema.Zone {
	out := make([]schema.Zone, 0, len(raw))
	for _, z := range raw {
		if z.ZoneName == nil || z.ZoneId == nil {
			continue
		}
		out = append(out, schema.Zone{
			VendorID:     vendorID,
			RegionID:     regionID,
			ZoneID:       *z.ZoneId,
			Name:         *z.ZoneName,
			APIReference: *z.ZoneId,
			DisplayName:  *z.ZoneName,
		})
	}
	return out
}

func inventoryServers(raw []ec2types.InstanceTypeInfo) []schema.Server {
	out := make([]schema.Server, 0, len(raw))
	for _, it := range raw {
		name := string(it.InstanceType)
		if name == "" {
			continue
		}
		s := schema.Server{
			VendorID:        vendorID,
			ServerID:        name,
			Name:            name,
			APIReference:    name,
			DisplayName:     name,
			Family:          familyOf(name),
			CpuAllocation:   scfields.CPUDedicated,
			CpuArchitecture: archOf(it.ProcessorInfo),
			InboundTraffic:  0,
			OutboundTraffic: 0,
			Ipv4:            1,
		}
		if it.BurstablePerformanceSupported != nil && *it.BurstablePerformanceSupported {
			s.CpuAllocation = scfields.CPUBurstable
		}
		if it.VCpuInfo != nil && it.VCpuInfo.DefaultVCpus != nil {
			s.Vcpus = int(*it.VCpuInfo.DefaultVCpus)
		}
		if it.MemoryInfo != nil && it.MemoryInfo.SizeInMiB != nil {
			s.MemoryAmount = int(*it.MemoryInfo.SizeInMiB)
		}
		if it.Hypervisor != "" {
			h := string(it.Hypervisor)
			s.Hypervisor = &h
		}
		gpuCount, gpuMemory := gpusOf(it.GpuInfo)
		s.GpuCount = float64(gpuCount)
		if gpuMemory > 0 {
			s.GpuMemoryTotal = &gpuMemory
		}
		s.StorageSize, s.StorageType = storageOf(it.InstanceStorageInfo)
		out = append(out, s)
	}
	return out
}

func familyOf(instanceType string) *string {
	idx := strings.IndexByte(instanceType, '.')
	if idx < 0 {
		return nil
	}
	family := instanceType[:idx]
	return &family
}

func archOf(info *ec2types.ProcessorInfo) scfields.CpuArchitecture {
	if info == nil {
		return scfields.ArchX86_64
	}
	for _, a := range info.SupportedArchitectures {
		if a == ec2types.ArchitectureTypeArm64 {
			return scfields.ArchARM64
		}
	}
	return scfields.ArchX86_64
}

func gpusOf(info *ec2types.GpuInfo) (count int, memoryMiB int) {
	if info == nil {
		return 0, 0
	}
	for _, g := range info.Gpus {
		if g.Count != nil {
			count += int(*g.Count)
		}
	}
	if info.TotalGpuMemoryInMiB != nil {
		memoryMiB = int(*info.TotalGpuMemoryInMiB)
	}
	return count, memoryMiB
}

func storageOf(info *ec2types.InstanceStorageInfo) (size int, typ scfields.StorageType) {
	if info == nil || info.TotalSizeInGB == nil {
		return 0, scfields.StorageNetwork
	}
	size = int(*info.TotalSizeInGB)
	typ = scfields.StorageSSD
	for _, d := range info.Disks {
		if d.Type == ec2types.DiskTypeHdd {
			typ = scfields.StorageHDD
		}
	}
	return size, typ
}

// inventoryServerPrices builds one ServerPrice of the given allocation per
// (region, zone, server) triple from the region's flat rate table, fanned
// out across every zone in the region (the rate table has no zone
// dimension). regionID/zoneIDs come from the already-fetched Region/Zone
// rows for this pull (spec.md §4.5 stage ordering); server ids are the rate
// table's keys.
func inventoryServerPrices(regionID string, zoneIDs []string, prices map[string]float64, allocation scfields.Allocation) []schema.ServerPrice {
	out := make([]schema.ServerPrice, 0, len(prices)*len(zoneIDs))
	for _, zoneID := range zoneIDs {
		for serverID, price := range prices {
			out = append(out, schema.ServerPrice{
				VendorID:        vendorID,
				RegionID:        regionID,
				ZoneID:          zoneID,
				ServerID:        serverID,
				Allocation:      allocation,
				OperatingSystem: "Linux",
				PriceFields: schema.PriceFields{
					Unit:     scfields.UnitHour,
					Price:    price,
					Currency: "USD",
				},
			})
		}
	}
	return out
}
