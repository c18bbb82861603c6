package schema

// Country maps an ISO-3166 alpha-2 code to its continent. Seeded once from
// a static registry (internal/lookup), never discovered by a vendor pull.
type Country struct {
	Meta
	CountryID string `json:"country_id"`
	Continent string `json:"continent"`
}

func (c Country) TableName() string { return "country" }

func (c Country) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"country_id": c.CountryID}
}

func (c Country) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"continent":   c.Continent,
		"status":      c.Status,
		"observed_at": c.ObservedAt,
	}
}

func (c Country) Validate() error {
	verr := &ValidationError{Entity: "Country"}
	if len(c.CountryID) != 2 {
		verr.Add("country_id %q must be a 2-letter ISO-3166 alpha-2 code", c.CountryID)
	}
	if c.Continent == "" {
		verr.Add("continent is required")
	}
	return verr.AsError()
}

// ComplianceFramework is a certification/standard a Vendor can be linked
// to (HIPAA, SOC2 Type II, ISO 27001, ...). Seeded once from a static
// registry.
type ComplianceFramework struct {
	Meta
	ComplianceFrameworkID string  `json:"compliance_framework_id"`
	Name                  string  `json:"name"`
	Abbreviation          *string `json:"abbreviation,omitempty"`
	Description           *string `json:"description,omitempty"`
	Logo                  *string `json:"logo,omitempty"`
	Homepage              *string `json:"homepage,omitempty"`
}

func (f ComplianceFramework) TableName() string { return "compliance_framework" }

func (f ComplianceFramework) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"compliance_framework_id": f.ComplianceFrameworkID}
}

func (f ComplianceFramework) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"name":         f.Name,
		"abbreviation": f.Abbreviation,
		"description":  f.Description,
		"logo":         f.Logo,
		"homepage":     f.Homepage,
		"status":       f.Status,
		"observed_at":  f.ObservedAt,
	}
}

func (f ComplianceFramework) Validate() error {
	verr := &ValidationError{Entity: "ComplianceFramework"}
	if f.ComplianceFrameworkID == "" {
		verr.Add("compliance_framework_id is required")
	}
	if f.Name == "" {
		verr.Add("name is required")
	}
	return verr.AsError()
}

// Vendor is one of the curated cloud providers this crawler supports.
// Declared statically, one record per provider (internal/lookup); never
// discovered.
type Vendor struct {
	Meta
	VendorID     string  `json:"vendor_id"`
	Name         string  `json:"name"`
	Logo         *string `json:"logo,omitempty"`
	Homepage     string  `json:"homepage"`
	CountryID    string  `json:"country_id"`
	State        *string `json:"state,omitempty"`
	City         *string `json:"city,omitempty"`
	AddressLine  *string `json:"address_line,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
	FoundingYear int     `json:"founding_year"`
	StatusPage   *string `json:"status_page,omitempty"`
}

func (v Vendor) TableName() string { return "vendor" }

func (v Vendor) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"vendor_id": v.VendorID}
}

func (v Vendor) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"name":          v.Name,
		"logo":          v.Logo,
		"homepage":      v.Homepage,
		"country_id":    v.CountryID,
		"state":         v.State,
		"city":          v.City,
		"address_line":  v.AddressLine,
		"zip_code":      v.ZipCode,
		"founding_year": v.FoundingYear,
		"status_page":   v.StatusPage,
		"status":        v.Status,
		"observed_at":   v.ObservedAt,
	}
}

func (v Vendor) Validate() error {
	verr := &ValidationError{Entity: "Vendor"}
	if v.VendorID == "" {
		verr.Add("vendor_id is required")
	}
	if v.Name == "" {
		verr.Add("name is required")
	}
	if v.Homepage == "" {
		verr.Add("homepage is required")
	}
	if v.CountryID == "" {
		verr.Add("country_id is required")
	}
	if v.FoundingYear < 1900 || v.FoundingYear > 2100 {
		verr.Add("founding_year %d out of plausible range", v.FoundingYear)
	}
	return verr.AsError()
}

// VendorComplianceLink asserts that Vendor holds a given
// ComplianceFramework certification.
type VendorComplianceLink struct {
	Meta
	VendorID              string  `json:"vendor_id"`
	ComplianceFrameworkID string  `json:"compliance_framework_id"`
	Comment               *string `json:"comment,omitempty"`
}

func (l VendorComplianceLink) TableName() string { return "vendor_compliance_link" }

func (l VendorComplianceLink) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id":               l.VendorID,
		"compliance_framework_id": l.ComplianceFrameworkID,
	}
}

func (l VendorComplianceLink) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"comment":     l.Comment,
		"status":      l.Status,
		"observed_at": l.ObservedAt,
	}
}

func (l VendorComplianceLink) Validate() error {
	verr := &ValidationError{Entity: "VendorComplianceLink"}
	if l.VendorID == "" {
		verr.Add("vendor_id is required")
	}
	if l.ComplianceFrameworkID == "" {
		verr.Add("compliance_framework_id is required")
	}
	return verr.AsError()
}

// VendorComplianceLinkScd is the SCD Type 2 companion of
// VendorComplianceLink. Unlike Country/ComplianceFramework/Vendor (excluded
// from SCD duplication as pure lookups per spec.md §3.3), the link table
// itself is discovered data and keeps history.
type VendorComplianceLinkScd struct {
	VendorComplianceLink
}

func (l VendorComplianceLinkScd) TableName() string { return "vendor_compliance_link_scd" }

func (l VendorComplianceLinkScd) PrimaryKeys() map[string]interface{} {
	pk := l.VendorComplianceLink.PrimaryKeys()
	pk["observed_at"] = l.ObservedAt
	return pk
}
