package upcloud

import (
	"fmt"

	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

const vendorID = "upcloud"

func inventoryComplianceFrameworks() []schema.VendorComplianceLink {
	ids := lookup.VendorCompliance[vendorID]
	out := make([]schema.VendorComplianceLink, 0, len(ids))
	for _, id := range ids {
		out = append(out, schema.VendorComplianceLink{VendorID: vendorID, ComplianceFrameworkID: id})
	}
	return out
}

// inventoryRegions normalizes only zones flagged public by the API, erroring
// on any region the manual geography table doesn't yet cover (matching the
// original_source/src/sc_crawler/vendors/upcloud.py's hard ValueError rather than silently dropping an unknown zone).
func inventoryRegions(zones []zone) ([]schema.Region, error) {
	var out []schema.Region
	for _, z := range zones {
		if z.Public != "yes" {
			continue
		}
		meta, ok := upcloudRegions[z.ID]
		if !ok {
			return nil, fmt.Errorf("upcloud: missing manual region data for %s", z.ID)
		}
		state := meta.state
		city := meta.city
		foundingYear := meta.foundingYear
		greenEnergy := meta.greenEnergy
		lon := meta.lon
		lat := meta.lat
		out = append(out, schema.Region{
			VendorID:      vendorID,
			RegionID:      z.ID,
			Name:          z.Description,
			APIReference:  z.ID,
			DisplayName:   fmt.Sprintf("%s (%s)", z.Description, meta.countryID),
			Aliases:       []string{},
			CountryID:     meta.countryID,
			State:         &state,
			City:          &city,
			Lon:           &lon,
			Lat:           &lat,
			FoundingYear:  &foundingYear,
			GreenEnergy:   &greenEnergy,
		})
	}
	return out, nil
}

// inventoryZones builds a 1-1 dummy Zone per Region: UpCloud has no concept
// of multiple availability zones within one region (virtual datacenter).
func inventoryZones(regions []schema.Region) []schema.Zone {
	out := make([]schema.Zone, 0, len(regions))
	for _, r := range regions {
		out = append(out, schema.Zone{
			VendorID:     vendorID,
			RegionID:     r.RegionID,
			ZoneID:       r.RegionID,
			Name:         r.Name,
			APIReference: r.RegionID,
			DisplayName:  r.Name,
		})
	}
	return out
}
