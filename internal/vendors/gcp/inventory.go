package gcp

import (
	"strings"

	"cloud.google.com/go/compute/apiv1/computepb"

	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

const vendorID = "gcp"

// inventoryZones normalizes one schema.Zone per computepb.Zone, ported
// straight across since GCP's zone naming is already region-prefixed
// (us-central1-a belongs to us-central1).
func inventoryZones(raw []*computepb.Zone, regionID string) []schema.Zone {
	out := make([]schema.Zone, 0, len(raw))
	for _, z := range raw {
		if z.Name == nil {
			continue
		}
		out = append(out, schema.Zone{
			VendorID:     vendorID,
			RegionID:     regionID,
			ZoneID:       *z.Name,
			Name:         *z.Name,
			APIReference: *z.Name,
			DisplayName:  *z.Name,
		})
	}
	return out
}

// inventoryServers normalizes one schema.Server per machine type passed in,
// without deduplicating; machine types are listed per zone, and the adapter
// dedups the combined result by name across zones.
func inventoryServers(raw []*computepb.MachineType) []schema.Server {
	out := make([]schema.Server, 0, len(raw))
	for _, mt := range raw {
		if mt.Name == nil || *mt.Name == "" {
			continue
		}
		name := *mt.Name
		s := schema.Server{
			VendorID:        vendorID,
			ServerID:        name,
			Name:            name,
			APIReference:    name,
			DisplayName:     name,
			Family:          familyOf(name),
			CpuAllocation:   scfields.CPUDedicated,
			CpuArchitecture: archOf(name),
			StorageType:     scfields.StorageNetwork,
			InboundTraffic:  0,
			OutboundTraffic: 0,
			Ipv4:            1,
		}
		if mt.IsSharedCpu != nil && *mt.IsSharedCpu {
			s.CpuAllocation = scfields.CPUBurstable
		}
		if mt.GuestCpus != nil {
			s.Vcpus = int(*mt.GuestCpus)
		}
		if mt.MemoryMb != nil {
			s.MemoryAmount = int(*mt.MemoryMb)
		}
		gpuCount, gpuModel := gpusOf(mt)
		s.GpuCount = float64(gpuCount)
		if gpuCount > 0 {
			model := gpuModel
			s.GpuModel = &model
		}
		out = append(out, s)
	}
	return out
}

// familyOf extracts the machine family prefix (e.g. "n2" from
// "n2-standard-4"), matching original_source/src/sc_crawler/vendors/gcp.py's family-extraction logic in inventory_servers.
func familyOf(name string) *string {
	idx := strings.IndexByte(name, '-')
	if idx < 0 {
		return nil
	}
	family := name[:idx]
	return &family
}

// archOf detects GCP's ARM64 family (t2a) and x86_64 otherwise; GCP has no
// other ARM machine family as of this adapter.
func archOf(name string) scfields.CpuArchitecture {
	if strings.HasPrefix(name, "t2a-") {
		return scfields.ArchARM64
	}
	return scfields.ArchX86_64
}

// gpusOf reads GPU count/model straight from the Accelerators field the
// Compute API reports per machine type, rather than original_source/src/sc_crawler/vendors/gcp.py's static
// gpuMachineTypes name-pattern table (the real API carries this data
// directly for machine types, unlike AWS/Azure where it doesn't).
func gpusOf(mt *computepb.MachineType) (count int, model string) {
	for _, acc := range mt.Accelerators {
		if acc == nil {
			continue
		}
		if acc.GuestAcceleratorCount != nil {
			count += int(*acc.GuestAcceleratorCount)
		}
		if acc.GuestAcceleratorType != nil && model == "" {
			model = *acc.GuestAcceleratorType
		}
	}
	return count, model
}

// inventoryServerPrices builds one ServerPrice per (region, zone, server)
// from the component-rate estimate, fanned out across every zone the same
// way the AWS/Azure adapters fan flat regional rates across zones.
func inventoryServerPrices(regionID string, zoneIDs []string, servers []schema.Server, allocation scfields.Allocation) []schema.ServerPrice {
	out := make([]schema.ServerPrice, 0, len(servers)*len(zoneIDs))
	for _, zoneID := range zoneIDs {
		for _, s := range servers {
			family := ""
			if s.Family != nil {
				family = *s.Family
			}
			gpuModel := ""
			if s.GpuModel != nil {
				gpuModel = *s.GpuModel
			}
			price := estimatePrice(family, s.Vcpus, s.MemoryAmount, int(s.GpuCount), gpuModel, regionID)
			if allocation == scfields.AllocationSpot {
				price *= 1 - spotDiscount
			}
			out = append(out, schema.ServerPrice{
				VendorID:        vendorID,
				RegionID:        regionID,
				ZoneID:          zoneID,
				ServerID:        s.ServerID,
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
