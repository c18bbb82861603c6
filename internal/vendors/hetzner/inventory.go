package hetzner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

const vendorID = "hetzner"

// inventoryRegions normalizes one schema.Region per hcloud.Datacenter.
// Unlike AWS/Azure/GCP, Hetzner's primary geographic unit maps straight
// onto Region (decision 1: use Region everywhere) rather than needing a
// region/zone split of its own.
func inventoryRegions(raw []*hcloud.Datacenter) []schema.Region {
	out := make([]schema.Region, 0, len(raw))
	for _, dc := range raw {
		if dc == nil || dc.Location == nil {
			continue
		}
		id := strconv.FormatInt(dc.ID, 10)
		displayName := fmt.Sprintf("%s (%s)", dc.Location.City, dc.Location.Country)
		green := true
		region := schema.Region{
			VendorID:     vendorID,
			RegionID:     id,
			Name:         dc.Name,
			APIReference: dc.Name,
			DisplayName:  displayName,
			Aliases:      []string{dc.Location.Name},
			CountryID:    dc.Location.Country,
			City:         &dc.Location.City,
			GreenEnergy:  &green,
		}
		if meta, ok := hetznerLocations[dc.Location.Name]; ok {
			lat, lon := meta.lat, meta.lon
			region.Lat = &lat
			region.Lon = &lon
		}
		out = append(out, region)
	}
	return out
}

// inventoryZones creates one dummy Zone per Region, reusing the region's
// own id and name: Hetzner Cloud has no concept of multiple availability
// zones within a datacenter.
func inventoryZones(regions []schema.Region) []schema.Zone {
	out := make([]schema.Zone, 0, len(regions))
	for _, r := range regions {
		out = append(out, schema.Zone{
			VendorID:     vendorID,
			RegionID:     r.RegionID,
			ZoneID:       r.RegionID,
			Name:         r.Name,
			APIReference: r.Name,
			DisplayName:  r.Name,
		})
	}
	return out
}

// cpuMeta is the manual (manufacturer, family) pair the Hetzner API
// doesn't expose, ported from original_source/src/sc_crawler/vendors/hcloud.py's _server_cpu lookup.
type cpuMeta struct {
	manufacturer string
	family       string
}

var hetznerServerCPUs = map[string]cpuMeta{
	"CX11": {"Intel", "Xeon Gold"}, "CX21": {"Intel", "Xeon Gold"},
	"CX31": {"Intel", "Xeon Gold"}, "CX41": {"Intel", "Xeon Gold"}, "CX51": {"Intel", "Xeon Gold"},
	"CPX11": {"AMD", "EPYC 7002"}, "CPX21": {"AMD", "EPYC 7002"}, "CPX31": {"AMD", "EPYC 7002"},
	"CPX41": {"AMD", "EPYC 7002"}, "CPX51": {"AMD", "EPYC 7002"},
	"CAX11": {"AMD", "Ampere Altra"}, "CAX21": {"AMD", "Ampere Altra"},
	"CAX31": {"AMD", "Ampere Altra"}, "CAX41": {"AMD", "Ampere Altra"},
	"CCX13": {"AMD", ""}, "CCX23": {"AMD", ""}, "CCX33": {"AMD", ""},
	"CCX43": {"AMD", ""}, "CCX53": {"AMD", ""}, "CCX63": {"AMD", ""},
}

// serverCPU looks up manufacturer/family for a server type name; unknown
// names (a new product line the table hasn't caught up with yet) fall back
// to an empty, non-fatal result rather than original_source/src/sc_crawler/vendors/hcloud.py's hard error, since
// a partial inventory is better than none for a crawler that runs
// unattended.
func serverCPU(name string) (manufacturer, family string) {
	meta, ok := hetznerServerCPUs[strings.ToUpper(name)]
	if !ok {
		return "", ""
	}
	return meta.manufacturer, meta.family
}

// familyOf strips trailing digits from the server type name, matching the
// original_source/src/sc_crawler/vendors/hcloud.py's `server.name.rstrip("0123456789")`.
func familyOf(name string) string {
	return strings.TrimRight(name, "0123456789")
}

// inventoryServers normalizes one schema.Server per hcloud.ServerType.
func inventoryServers(raw []*hcloud.ServerType) []schema.Server {
	out := make([]schema.Server, 0, len(raw))
	for _, st := range raw {
		if st == nil {
			continue
		}
		id := strconv.FormatInt(st.ID, 10)
		manufacturer, family := serverCPU(st.Name)
		allocation := scfields.CPUDedicated
		if st.CPUType == hcloud.CPUTypeShared {
			allocation = scfields.CPUShared
		}
		arch := scfields.ArchX86_64
		if st.Architecture == hcloud.ArchitectureARM {
			arch = scfields.ArchARM64
		}
		storageType := scfields.StorageNetwork
		if st.StorageType == hcloud.StorageTypeLocal {
			storageType = scfields.StorageSSD
		}
		familyName := familyOf(st.Name)
		s := schema.Server{
			VendorID:        vendorID,
			ServerID:        id,
			Name:            st.Name,
			APIReference:    st.Name,
			DisplayName:     st.Name,
			Family:          &familyName,
			Vcpus:           st.Cores,
			CpuAllocation:   allocation,
			CpuArchitecture: arch,
			StorageSize:     st.Disk,
			StorageType:     storageType,
			MemoryAmount:    int(st.Memory * 1024),
			InboundTraffic:  0,
			OutboundTraffic: float64(st.IncludedTraffic) / (1024 * 1024 * 1024),
			Ipv4:            0,
		}
		if st.Description != "" {
			desc := st.Description
			s.Description = &desc
		}
		if manufacturer != "" {
			m := manufacturer
			s.CpuManufacturer = &m
		}
		if family != "" {
			f := family
			s.CpuFamily = &f
		}
		if st.Deprecation != nil {
			s.Status = scfields.StatusInactive
		} else {
			s.Status = scfields.StatusActive
		}
		out = append(out, s)
	}
	return out
}

// inventoryServerPrices builds one ServerPrice per (server type, location)
// pricing row the API reports, matching each pricing row's Location to the
// Region built from its matching datacenter. A location can host more than
// one datacenter (e.g. nbg1-dc3 and nbg1-dc4 both live in nbg1), so every
// matching region gets a price row — the API itself doesn't distinguish
// pricing at the datacenter level, only at the location level.
func inventoryServerPrices(serverTypes []*hcloud.ServerType, regionsByLocation map[string][]schema.Region) []schema.ServerPrice {
	var out []schema.ServerPrice
	for _, st := range serverTypes {
		if st == nil {
			continue
		}
		id := strconv.FormatInt(st.ID, 10)
		for _, pricing := range st.Pricings {
			if pricing.Location == nil {
				continue
			}
			price, err := strconv.ParseFloat(pricing.Hourly.Net, 64)
			if err != nil {
				continue
			}
			for _, region := range regionsByLocation[pricing.Location.Name] {
				out = append(out, schema.ServerPrice{
					VendorID:        vendorID,
					RegionID:        region.RegionID,
					ZoneID:          region.RegionID,
					ServerID:        id,
					OperatingSystem: "Linux",
					Allocation:      scfields.AllocationOnDemand,
					PriceFields: schema.PriceFields{
						Unit:     scfields.UnitHour,
						Price:    price,
						Currency: "EUR",
					},
				})
			}
		}
	}
	return out
}

// blockStorageID is the one manually-catalogued volume product Hetzner
// Cloud sells (spec.md §5.G; no storage-listing API endpoint exists).
const blockStorageID = "block"

func inventoryStorages() []schema.Storage {
	minSize, maxSize := 10, 10240
	return []schema.Storage{{
		VendorID:    vendorID,
		StorageID:   blockStorageID,
		Name:        "Block storage volume",
		StorageType: scfields.StorageNetwork,
		MinSize:     &minSize,
		MaxSize:     &maxSize,
	}}
}

func inventoryStoragePrices(regions []schema.Region) []schema.StoragePrice {
	out := make([]schema.StoragePrice, 0, len(regions))
	for _, r := range regions {
		out = append(out, schema.StoragePrice{
			VendorID:  vendorID,
			RegionID:  r.RegionID,
			StorageID: blockStorageID,
			PriceFields: schema.PriceFields{
				Unit:     scfields.UnitGBMonth,
				Price:    0.0440,
				Currency: "EUR",
			},
		})
	}
	return out
}

func inventoryTrafficPrices(regions []schema.Region) []schema.TrafficPrice {
	out := make([]schema.TrafficPrice, 0, len(regions)*2)
	for _, r := range regions {
		out = append(out,
			schema.TrafficPrice{
				VendorID:  vendorID,
				RegionID:  r.RegionID,
				Direction: scfields.TrafficIn,
				PriceFields: schema.PriceFields{
					Unit:     scfields.UnitGBMonth,
					Price:    0,
					Currency: "EUR",
				},
			},
			schema.TrafficPrice{
				VendorID:  vendorID,
				RegionID:  r.RegionID,
				Direction: scfields.TrafficOut,
				PriceFields: schema.PriceFields{
					Unit:     scfields.UnitGBMonth,
					Price:    1.0 / 1024,
					Currency: "EUR",
				},
			},
		)
	}
	return out
}

func inventoryIpv4Prices(regions []schema.Region) []schema.Ipv4Price {
	out := make([]schema.Ipv4Price, 0, len(regions))
	for _, r := range regions {
		out = append(out, schema.Ipv4Price{
			VendorID: vendorID,
			RegionID: r.RegionID,
			PriceFields: schema.PriceFields{
				Unit:     scfields.UnitMonth,
				Price:    0.50,
				Currency: "EUR",
			},
		})
	}
	return out
}
