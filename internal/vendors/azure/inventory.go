package azure

import (
	"strconv"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v4"

	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

const vendorID = "azure"

// inventoryRegions builds one schema.Region per known Azure region, applying
// the manual metadata table since ResourceSKUs has no region-description
// endpoint of its own.
func inventoryRegions() []schema.Region {
	out := make([]schema.Region, 0, len(azureRegions))
	for id, meta := range azureRegions {
		lat, lon, year, green := meta.lat, meta.lon, meta.foundingYear, meta.greenEnergy
		out = append(out, schema.Region{
			VendorID:     vendorID,
			RegionID:     id,
			Name:         id,
			APIReference: id,
			DisplayName:  "Azure " + id,
			CountryID:    meta.countryID,
			Lat:          &lat,
			Lon:          &lon,
			FoundingYear: &year,
			GreenEnergy:  &green,
		})
	}
	return out
}

// inventoryZones synthesizes zone rows from a region's LocationInfo entries,
// which is where armcompute reports which of "1"/"2"/"3" a region supports.
func inventoryZones(skus []*armcompute.ResourceSKU, regionID string) []schema.Zone {
	seen := map[string]bool{}
	var out []schema.Zone
	for _, sku := range skus {
		for _, li := range sku.LocationInfo {
			if li == nil {
				continue
			}
			for _, z := range li.Zones {
				if z == nil || *z == "" || seen[*z] {
					continue
				}
				seen[*z] = true
				zoneID := regionID + "-" + *z
				out = append(out, schema.Zone{
					VendorID:     vendorID,
					RegionID:     regionID,
					ZoneID:       zoneID,
					Name:         zoneID,
					APIReference: *z,
					DisplayName:  "Availability Zone " + *z,
				})
			}
		}
	}
	return out
}

func capability(sku *armcompute.ResourceSKU, name string) (string, bool) {
	for _, c := range sku.Capabilities {
		if c == nil || c.Name == nil || c.Value == nil {
			continue
		}
		if *c.Name == name {
			return *c.Value, true
		}
	}
	return "", false
}

func capabilityInt(sku *armcompute.ResourceSKU, name string) (int, bool) {
	v, ok := capability(sku, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func capabilityFloat(sku *armcompute.ResourceSKU, name string) (float64, bool) {
	v, ok := capability(sku, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// inventoryServers normalizes one schema.Server per VM size SKU, deduped by
// name since the same size is often listed once per zone.
func inventoryServers(skus []*armcompute.ResourceSKU) []schema.Server {
	seen := map[string]bool{}
	out := make([]schema.Server, 0, len(skus))
	for _, sku := range skus {
		if sku.Name == nil || *sku.Name == "" || seen[*sku.Name] {
			continue
		}
		seen[*sku.Name] = true
		name := *sku.Name

		s := schema.Server{
			VendorID:        vendorID,
			ServerID:        name,
			Name:            name,
			APIReference:    name,
			DisplayName:     name,
			Family:          familyOf(sku),
			CpuAllocation:   scfields.CPUDedicated,
			CpuArchitecture: archOf(name),
			StorageType:     scfields.StorageNetwork,
			InboundTraffic:  0,
			OutboundTraffic: 0,
			Ipv4:            1,
		}
		if strings.Contains(strings.ToLower(name), "_b") {
			s.CpuAllocation = scfields.CPUBurstable
		}
		if vcpus, ok := capabilityInt(sku, "vCPUs"); ok {
			s.Vcpus = vcpus
		}
		if memGB, ok := capabilityFloat(sku, "MemoryGB"); ok {
			s.MemoryAmount = int(memGB * 1024)
		}
		gpuCount, gpuMemory := gpusOf(name)
		s.GpuCount = float64(gpuCount)
		if gpuMemory > 0 {
			m := gpuMemory
			s.GpuMemoryTotal = &m
		}
		if gpuCount > 0 {
			gt := gpuTypeOf(name)
			s.GpuModel = &gt
		}
		out = append(out, s)
	}
	return out
}

// familyOf returns the ARM SKU's Family field (e.g. "standardDSv5Family")
// unchanged, or nil when it is empty.
func familyOf(sku *armcompute.ResourceSKU) *string {
	if sku.Family != nil && *sku.Family != "" {
		f := *sku.Family
		return &f
	}
	return nil
}

// archOf detects ARM64 VMs by the 'p' series-letter convention
// (Dpsv5/Epsv5/...), ported from original_source/src/sc_crawler/vendors/azure.py's ARM64 detection in inventory_servers.
func archOf(name string) scfields.CpuArchitecture {
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return scfields.ArchX86_64
	}
	var letters strings.Builder
	for _, ch := range parts[1] {
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' {
			letters.WriteRune(ch)
		}
	}
	if strings.Contains(strings.ToLower(letters.String()), "p") {
		return scfields.ArchARM64
	}
	return scfields.ArchX86_64
}

// gpusOf detects GPU count and total memory by VM name pattern, ported from
// original_source/src/sc_crawler/vendors/azure.py's GPU detection in inventory_servers (collapsed to the count/memory facts this schema
// actually stores; the GPU model string comes from gpuTypeOf).
func gpusOf(name string) (count int, memoryMiB int) {
	lower := strings.ToLower(name)
	if !strings.Contains(lower, "standard_n") {
		return 0, 0
	}
	switch {
	case strings.Contains(lower, "nc24ads_a100") || strings.Contains(lower, "nc48ads_a100") || strings.Contains(lower, "nc96ads_a100"):
		switch {
		case strings.Contains(lower, "nc96"):
			return 4, 4 * 81920
		case strings.Contains(lower, "nc48"):
			return 2, 2 * 81920
		default:
			return 1, 81920
		}
	case strings.Contains(lower, "nd96asr_a100"):
		return 8, 8 * 40960
	case strings.Contains(lower, "nd96isr_h100"):
		return 8, 8 * 81920
	case strings.Contains(lower, "standard_nc6"):
		return 1, 16384
	case strings.Contains(lower, "standard_nc12"):
		return 2, 32768
	case strings.Contains(lower, "standard_nc24"):
		return 4, 65536
	case strings.Contains(lower, "standard_nv"):
		return 1, 8192
	default:
		return 1, 0
	}
}

func gpuTypeOf(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "a100"):
		return "NVIDIA A100"
	case strings.Contains(lower, "h100"):
		return "NVIDIA H100"
	case strings.Contains(lower, "t4"):
		return "NVIDIA T4"
	case strings.Contains(lower, "a10"):
		return "NVIDIA A10"
	case strings.Contains(lower, "v100") || strings.Contains(lower, "nc") && strings.Contains(lower, "v3"):
		return "NVIDIA Tesla V100"
	case strings.Contains(lower, "standard_nv"):
		return "NVIDIA Tesla M60"
	default:
		return "NVIDIA Tesla K80"
	}
}

// inventoryServerPrices builds one ServerPrice per (region, zone, server)
// from the retail price rate table, fanned out across zones the same way
// EC2 on-demand pricing is (Azure retail pricing has no zone dimension
// either).
func inventoryServerPrices(regionID string, zoneIDs []string, prices map[string]float64, allocation scfields.Allocation) []schema.ServerPrice {
	fanout := zoneIDs
	if len(fanout) == 0 {
		fanout = []string{""}
	}
	out := make([]schema.ServerPrice, 0, len(prices)*len(fanout))
	for _, zoneID := range fanout {
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
