package schema

import "testing"

func TestCountry_Validate(t *testing.T) {
	cases := []struct {
		name    string
		country Country
		wantErr bool
	}{
		{"valid", Country{CountryID: "DE", Continent: "Europe"}, false},
		{"bad code", Country{CountryID: "DEU", Continent: "Europe"}, true},
		{"missing continent", Country{CountryID: "DE"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.country.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestComplianceFramework_Validate(t *testing.T) {
	valid := ComplianceFramework{ComplianceFrameworkID: "hipaa", Name: "HIPAA"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	missingName := ComplianceFramework{ComplianceFrameworkID: "hipaa"}
	if err := missingName.Validate(); err == nil {
		t.Error("expected an error for missing name")
	}
}

func TestVendor_Validate(t *testing.T) {
	cases := []struct {
		name    string
		vendor  Vendor
		wantErr bool
	}{
		{"valid", Vendor{VendorID: "aws", Name: "Amazon Web Services", Homepage: "https://aws.amazon.com", CountryID: "US", FoundingYear: 2006}, false},
		{"missing homepage", Vendor{VendorID: "aws", Name: "AWS", CountryID: "US", FoundingYear: 2006}, true},
		{"bad founding year", Vendor{VendorID: "aws", Name: "AWS", Homepage: "https://aws.amazon.com", CountryID: "US", FoundingYear: 1500}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.vendor.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestVendorComplianceLink_Validate(t *testing.T) {
	valid := VendorComplianceLink{VendorID: "aws", ComplianceFrameworkID: "hipaa"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	missing := VendorComplianceLink{VendorID: "aws"}
	if err := missing.Validate(); err == nil {
		t.Error("expected an error for missing compliance_framework_id")
	}
}

func TestVendorComplianceLinkScd_PrimaryKeyIncludesObservedAt(t *testing.T) {
	link := VendorComplianceLinkScd{VendorComplianceLink{VendorID: "aws", ComplianceFrameworkID: "hipaa"}}
	pk := link.PrimaryKeys()
	if _, ok := pk["observed_at"]; !ok {
		t.Error("expected observed_at to be part of the SCD primary key")
	}
}
