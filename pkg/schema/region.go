package schema

// Region is a Vendor's geographic deployment location. Historically named
// Datacenter; renamed per the schema's later evolution (see DESIGN.md).
type Region struct {
	Meta
	VendorID     string   `json:"vendor_id"`
	RegionID     string   `json:"region_id"`
	Name         string   `json:"name"`
	APIReference string   `json:"api_reference"`
	DisplayName  string   `json:"display_name"`
	Aliases      []string `json:"aliases"`
	CountryID    string   `json:"country_id"`
	State        *string  `json:"state,omitempty"`
	City         *string  `json:"city,omitempty"`
	AddressLine  *string  `json:"address_line,omitempty"`
	ZipCode      *string  `json:"zip_code,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	FoundingYear *int     `json:"founding_year,omitempty"`
	GreenEnergy  *bool    `json:"green_energy,omitempty"`
}

func (r Region) TableName() string { return "region" }

func (r Region) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"vendor_id": r.VendorID, "region_id": r.RegionID}
}

func (r Region) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"name":          r.Name,
		"api_reference": r.APIReference,
		"display_name":  r.DisplayName,
		"aliases":       r.Aliases,
		"country_id":    r.CountryID,
		"state":         r.State,
		"city":          r.City,
		"address_line":  r.AddressLine,
		"zip_code":      r.ZipCode,
		"lon":           r.Lon,
		"lat":           r.Lat,
		"founding_year": r.FoundingYear,
		"green_energy":  r.GreenEnergy,
		"status":        r.Status,
		"observed_at":   r.ObservedAt,
	}
}

func (r Region) Validate() error {
	verr := &ValidationError{Entity: "Region"}
	if r.VendorID == "" {
		verr.Add("vendor_id is required")
	}
	if r.RegionID == "" {
		verr.Add("region_id is required")
	}
	if r.Name == "" {
		verr.Add("name is required")
	}
	if r.CountryID == "" {
		verr.Add("country_id is required")
	}
	if r.Lat != nil && (*r.Lat < -90 || *r.Lat > 90) {
		verr.Add("lat %v out of range", *r.Lat)
	}
	if r.Lon != nil && (*r.Lon < -180 || *r.Lon > 180) {
		verr.Add("lon %v out of range", *r.Lon)
	}
	return verr.AsError()
}

// RegionScd is the SCD Type 2 companion of Region: observed_at is part of
// the primary key, and rows are append-only.
type RegionScd struct {
	Region
}

func (r RegionScd) TableName() string { return "region_scd" }

func (r RegionScd) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id":   r.VendorID,
		"region_id":   r.RegionID,
		"observed_at": r.ObservedAt,
	}
}

// Zone is an availability zone within a Region. Providers without a zone
// concept get a synthesized 1:1 dummy zone (see internal/vendors adapters).
type Zone struct {
	Meta
	VendorID     string `json:"vendor_id"`
	RegionID     string `json:"region_id"`
	ZoneID       string `json:"zone_id"`
	Name         string `json:"name"`
	APIReference string `json:"api_reference"`
	DisplayName  string `json:"display_name"`
}

func (z Zone) TableName() string { return "zone" }

func (z Zone) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"vendor_id": z.VendorID, "region_id": z.RegionID, "zone_id": z.ZoneID}
}

func (z Zone) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"name":          z.Name,
		"api_reference": z.APIReference,
		"display_name":  z.DisplayName,
		"status":        z.Status,
		"observed_at":   z.ObservedAt,
	}
}

func (z Zone) Validate() error {
	verr := &ValidationError{Entity: "Zone"}
	if z.VendorID == "" || z.RegionID == "" || z.ZoneID == "" {
		verr.Add("vendor_id, region_id and zone_id are all required")
	}
	if z.Name == "" {
		verr.Add("name is required")
	}
	return verr.AsError()
}

// ZoneScd is the SCD Type 2 companion of Zone.
type ZoneScd struct {
	Zone
}

func (z ZoneScd) TableName() string { return "zone_scd" }

func (z ZoneScd) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id":   z.VendorID,
		"region_id":   z.RegionID,
		"zone_id":     z.ZoneID,
		"observed_at": z.ObservedAt,
	}
}
