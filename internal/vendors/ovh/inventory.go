package ovh

import (
	"strconv"
	"strings"

	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

const vendorID = "ovh"

// windowsPrefix filters out Windows instance flavors (spec.md's Linux-only
// scope for this adapter), matching original_source/src/sc_crawler/vendors/ovh.py's WINDOWS_PREFIX.
const windowsPrefix = "win-"

// localZoneSuffixes mark Local Zone/Multi-AZ plan variants this adapter
// doesn't yet model, ported from original_source/src/sc_crawler/vendors/ovh.py's LOCAL_ZONE_SUFFIXES.
var localZoneSuffixes = []string{".LZ", ".LZ.AF", ".LZ.EU", ".LZ.EUROZONE", ".3AZ"}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// datacenterPrefix extracts the datacenter code from a region code (e.g.
// "GRA7" -> "GRA", "UK1" -> "UK"), avoiding a per-region API round trip the
// original_source/src/sc_crawler/vendors/ovh.py's `_get_datacenter_and_city` makes — OVH region codes are always
// a datacenter prefix followed by a numeric suffix.
func datacenterPrefix(regionCode string) string {
	return strings.TrimRight(regionCode, "0123456789")
}

// inventoryRegions normalizes one schema.Region per region code, enriched
// from the manual ovhDatacenters table. Ported from original_source/src/sc_crawler/vendors/ovh.py's
// inventory_regions.
func inventoryRegions(regionCodes []string) []schema.Region {
	out := make([]schema.Region, 0, len(regionCodes))
	for _, code := range regionCodes {
		dc := datacenterPrefix(code)
		meta, known := ovhDatacenters[dc]
		region := schema.Region{
			VendorID:     vendorID,
			RegionID:     code,
			Name:         code,
			APIReference: code,
			DisplayName:  code,
			Aliases:      []string{},
		}
		if known {
			region.CountryID = meta.countryID
			city := meta.city
			region.City = &city
			lat, lon := meta.lat, meta.lon
			region.Lat = &lat
			region.Lon = &lon
			region.DisplayName = city + " (" + code + ")"
		}
		if dc == "LIM" || dc == "WAW" || dc == "UK" {
			year := 2016
			region.FoundingYear = &year
		}
		out = append(out, region)
	}
	return out
}

// inventoryZones returns the zones for one region, falling back to a single
// dummy zone (the region code, lowercased) when the API reports none,
// matching original_source/src/sc_crawler/vendors/ovh.py's `_get_zones` fallback.
func inventoryZones(regionID string, rawZones []string) []schema.Zone {
	zoneIDs := rawZones
	if len(zoneIDs) == 0 {
		zoneIDs = []string{strings.ToLower(regionID)}
	}
	out := make([]schema.Zone, 0, len(zoneIDs))
	for _, z := range zoneIDs {
		out = append(out, schema.Zone{
			VendorID:     vendorID,
			RegionID:     regionID,
			ZoneID:       z,
			Name:         z,
			APIReference: z,
			DisplayName:  z,
		})
	}
	return out
}

func mapAt(m map[string]any, keys ...string) map[string]any {
	cur := m
	for _, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

func stringAt(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func floatAt(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	f, ok := m[key].(float64)
	return f, ok
}

// gpuSpec describes one GPU flavor name prefix as (size units per GPU,
// memory GB per GPU, manufacturer, family, model), ported and trimmed from the
// original_source/src/sc_crawler/vendors/ovh.py's _get_gpu_info (the full model carries ~8 GPU families;
// ovhGPUPrefixes keeps the 6 most common on OVH's current GPU line).
type gpuSpec struct {
	sizePerGPU                   int
	memGBPerGPU                  int
	manufacturer, family, model string
}

var ovhGPUPrefixes = map[string]gpuSpec{
	"h100":    {380, 80, "NVIDIA", "Hopper", "H100"},
	"a100":    {180, 80, "NVIDIA", "Ampere", "A100"},
	"a10":     {45, 24, "NVIDIA", "Ampere", "A10"},
	"l40s":    {90, 48, "NVIDIA", "Ada Lovelace", "L40S"},
	"l4":      {90, 24, "NVIDIA", "Ada Lovelace", "L4"},
	"rtx5000": {28, 16, "NVIDIA", "Turing", "Quadro RTX 5000"},
}

// gpuInfoFor matches original_source/src/sc_crawler/vendors/ovh.py's `<model>-<size>` GPU flavor naming
// pattern, returning zero values for non-GPU flavors.
func gpuInfoFor(flavorName string) (count int, memTotalGB int, manufacturer, family, model string) {
	name := strings.ToLower(flavorName)
	for prefix, spec := range ovhGPUPrefixes {
		if !strings.HasPrefix(name, prefix+"-") {
			continue
		}
		rest := strings.TrimPrefix(name, prefix+"-")
		size, err := strconv.Atoi(rest)
		if err != nil || spec.sizePerGPU == 0 {
			return 0, 0, "", "", ""
		}
		count = size / spec.sizePerGPU
		if count == 0 {
			return 0, 0, "", "", ""
		}
		return count, count * spec.memGBPerGPU, spec.manufacturer, spec.family, spec.model
	}
	return 0, 0, "", "", ""
}

var ovhServerFamilies = map[string]string{
	"t1": "Cloud GPU", "t2": "Cloud GPU", "a10": "Cloud GPU", "a100": "Cloud GPU",
	"l4": "Cloud GPU", "l40s": "Cloud GPU", "h100": "Cloud GPU", "rtx5000": "Cloud GPU",
	"bm": "Metal",
	"b2": "General Purpose", "b3": "General Purpose",
	"c2": "Compute Optimized", "c3": "Compute Optimized",
	"r2": "Memory Optimized", "r3": "Memory Optimized",
	"d2": "Discovery",
	"i1": "Storage Optimized",
}

func serverFamily(flavorName string) *string {
	prefix := strings.SplitN(strings.ToLower(flavorName), "-", 2)[0]
	if family, ok := ovhServerFamilies[prefix]; ok {
		return &family
	}
	return nil
}

// instancePlans filters the raw catalog to Linux, hourly ("consumption"),
// non-Local-Zone, non-Windows public-cloud-instance addons, ported from the
// original_source/src/sc_crawler/vendors/ovh.py's server_plans comprehension in inventory_servers.
func instancePlans(addons []catalogAddon) []catalogAddon {
	var out []catalogAddon
	for _, a := range addons {
		if a.Product != "publiccloud-instance" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(a.InvoiceName), windowsPrefix) {
			continue
		}
		if !strings.HasSuffix(a.PlanCode, ".consumption") {
			continue
		}
		if hasAnySuffix(a.PlanCode, localZoneSuffixes) {
			continue
		}
		technical := mapAt(a.Blobs, "technical")
		if stringAt(mapAt(technical, "os"), "family") != "linux" {
			continue
		}
		out = append(out, a)
	}
	return out
}

// inventoryServers normalizes one schema.Server per deduplicated instance
// flavor, ported from original_source/src/sc_crawler/vendors/ovh.py's inventory_servers.
func inventoryServers(addons []catalogAddon) []schema.Server {
	seen := map[string]bool{}
	var out []schema.Server
	for _, a := range instancePlans(addons) {
		id := a.InvoiceName
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		blobs := a.Blobs
		commercial := mapAt(blobs, "commercial")
		technical := mapAt(blobs, "technical")
		cpu := mapAt(technical, "cpu")
		gpu := mapAt(technical, "gpu")
		memory := mapAt(technical, "memory")
		bandwidth := mapAt(technical, "bandwidth")

		brickSubtype := stringAt(commercial, "brickSubtype")
		allocation := scfields.CPUDedicated
		if brickSubtype == "discovery" {
			allocation = scfields.CPUShared
		}

		memSizeGB, _ := floatAt(memory, "size")
		memSize := int(memSizeGB * 1024)

		apiGPUCount, _ := floatAt(gpu, "number")
		count, memTotalGB, manufacturer, family, model := gpuInfoFor(id)
		if int(apiGPUCount) > 0 {
			count = int(apiGPUCount)
		}

		s := schema.Server{
			VendorID:        vendorID,
			ServerID:        id,
			Name:            id,
			APIReference:    id,
			DisplayName:     id,
			Family:          serverFamily(id),
			CpuAllocation:   allocation,
			CpuArchitecture: scfields.ArchX86_64,
			MemoryAmount:    memSize,
			StorageType:     scfields.StorageSSD,
			InboundTraffic:  0,
			OutboundTraffic: 0,
			Ipv4:            1,
			Status:          scfields.StatusActive,
		}
		if brickSubtype == "discovery" {
			hv := "KVM"
			s.Hypervisor = &hv
		}
		if speed, ok := floatAt(cpu, "frequency"); ok {
			s.CpuSpeed = &speed
		}
		if level, ok := floatAt(bandwidth, "level"); ok {
			s.NetworkSpeed = &level
		}
		if count > 0 {
			s.GpuCount = float64(count)
			gpuModel := model
			s.GpuModel = &gpuModel
			gpuManufacturer := manufacturer
			s.GpuManufacturer = &gpuManufacturer
			gpuFamily := family
			s.GpuFamily = &gpuFamily
			gpuMemTotal := memTotalGB * 1024
			s.GpuMemoryTotal = &gpuMemTotal
		}
		out = append(out, s)
	}
	return out
}

// inventoryServerPrices builds one ServerPrice per (server, region) from
// each flavor's merged region availability across all its catalog pricing
// variants, ported (simplified to the hourly-consumption path only,
// matching spec.md's ServerPrice unit scope) from original_source/src/sc_crawler/vendors/ovh.py's
// inventory_server_prices.
func inventoryServerPrices(addons []catalogAddon) []schema.ServerPrice {
	var out []schema.ServerPrice
	for _, a := range instancePlans(addons) {
		if len(a.Pricings) == 0 {
			continue
		}
		regions := map[string]bool{}
		for _, cfg := range a.Configurations {
			if cfg.Name != "region" {
				continue
			}
			for _, r := range cfg.Values {
				regions[r] = true
			}
		}
		unit := scfields.UnitMonth
		if a.Pricings[0].IntervalUnit == "hour" {
			unit = scfields.UnitHour
		}
		for region := range regions {
			out = append(out, schema.ServerPrice{
				VendorID:        vendorID,
				RegionID:        region,
				ZoneID:          region,
				ServerID:        a.InvoiceName,
				OperatingSystem: "linux",
				Allocation:      scfields.AllocationOnDemand,
				PriceFields: schema.PriceFields{
					Unit:     unit,
					Price:    a.Pricings[0].Price / 100_000_000,
					Currency: "USD",
				},
			})
		}
	}
	return out
}

// inventoryTrafficPrices is mostly manual (outbound traffic is bundled
// everywhere except the three Asia-Pacific regions, where it's tiered past
// a 1TB/month quota), ported from original_source/src/sc_crawler/vendors/ovh.py's inventory_traffic_prices.
func inventoryTrafficPrices(regions []schema.Region) []schema.TrafficPrice {
	out := make([]schema.TrafficPrice, 0, len(regions)*2)
	for _, r := range regions {
		out = append(out, schema.TrafficPrice{
			VendorID:  vendorID,
			RegionID:  r.RegionID,
			Direction: scfields.TrafficIn,
			PriceFields: schema.PriceFields{
				Unit:     scfields.UnitGBMonth,
				Price:    0,
				Currency: "USD",
			},
		})
		isAPAC := strings.HasPrefix(r.RegionID, "SGP") || strings.HasPrefix(r.RegionID, "SYD") || strings.HasPrefix(r.RegionID, "MUM")
		out = append(out, schema.TrafficPrice{
			VendorID:  vendorID,
			RegionID:  r.RegionID,
			Direction: scfields.TrafficOut,
			PriceFields: schema.PriceFields{
				Unit:     scfields.UnitGBMonth,
				Price:    apacOutboundPrice(isAPAC),
				Currency: "USD",
				PriceTiered: apacOutboundTiers(isAPAC),
			},
		})
	}
	return out
}

func apacOutboundPrice(isAPAC bool) float64 {
	if isAPAC {
		return 0.0109
	}
	return 0
}

func apacOutboundTiers(isAPAC bool) []scfields.PriceTier {
	if !isAPAC {
		return nil
	}
	return []scfields.PriceTier{
		{Lower: 1.0, Upper: 1024.0, Price: 0},
		{Lower: 1024.0, Upper: scfields.PosInfinity, Price: 0.0109},
	}
}

// inventoryIpv4Prices is free everywhere for standard (non-Local-Zone)
// instances, ported from original_source/src/sc_crawler/vendors/ovh.py's inventory_ipv4_prices.
func inventoryIpv4Prices(regions []schema.Region) []schema.Ipv4Price {
	out := make([]schema.Ipv4Price, 0, len(regions))
	for _, r := range regions {
		out = append(out, schema.Ipv4Price{
			VendorID: vendorID,
			RegionID: r.RegionID,
			PriceFields: schema.PriceFields{
				Unit:     scfields.UnitMonth,
				Price:    0,
				Currency: "USD",
			},
		})
	}
	return out
}

// inventoryStorages/inventoryStoragePrices port original_source/src/sc_crawler/vendors/ovh.py's catalog-
// derived block storage offerings.
func inventoryStorages(addons []catalogAddon) []schema.Storage {
	seen := map[string]bool{}
	var out []schema.Storage
	for _, a := range addons {
		if a.Product != "publiccloud-storage" && a.Product != "publiccloud-block-storage" {
			continue
		}
		id := strings.ReplaceAll(a.InvoiceName, " ", "_")
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		technical := mapAt(a.Blobs, "technical")
		volume := mapAt(technical, "volume")
		capacity := mapAt(volume, "capacity")
		s := schema.Storage{
			VendorID:    vendorID,
			StorageID:   id,
			Name:        a.InvoiceName,
			StorageType: scfields.StorageNetwork,
		}
		if max, ok := floatAt(capacity, "max"); ok {
			maxInt := int(max)
			s.MaxSize = &maxInt
		}
		out = append(out, s)
	}
	return out
}

func inventoryStoragePrices(addons []catalogAddon) []schema.StoragePrice {
	var out []schema.StoragePrice
	for _, a := range addons {
		if a.Product != "publiccloud-storage" && a.Product != "publiccloud-block-storage" {
			continue
		}
		if len(a.Pricings) == 0 {
			continue
		}
		id := strings.ReplaceAll(a.InvoiceName, " ", "_")
		price := a.Pricings[0].Price / 100_000_000
		if a.Pricings[0].IntervalUnit == "hour" {
			price *= 730
		}
		regions := map[string]bool{}
		for _, cfg := range a.Configurations {
			if cfg.Name != "region" {
				continue
			}
			for _, r := range cfg.Values {
				regions[r] = true
			}
		}
		for region := range regions {
			out = append(out, schema.StoragePrice{
				VendorID:  vendorID,
				RegionID:  region,
				StorageID: id,
				PriceFields: schema.PriceFields{
					Unit:     scfields.UnitGBMonth,
					Price:    price,
					Currency: "USD",
				},
			})
		}
	}
	return out
}
