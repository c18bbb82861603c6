package lookup

import "testing"

func TestCountries_KnownCode(t *testing.T) {
	us, ok := Countries["US"]
	if !ok {
		t.Fatal(`Countries["US"] missing`)
	}
	if us.Continent != "North America" {
		t.Errorf("US continent = %q, want %q", us.Continent, "North America")
	}
}

func TestCountries_UnknownCodeAbsent(t *testing.T) {
	if _, ok := Countries["ZZ"]; ok {
		t.Error(`Countries["ZZ"] present, want absent`)
	}
}

func TestComplianceFrameworks_HasCoreThree(t *testing.T) {
	for _, id := range []string{"hipaa", "soc2t2", "iso27001"} {
		if _, ok := ComplianceFrameworks[id]; !ok {
			t.Errorf("ComplianceFrameworks missing %q", id)
		}
	}
}

func TestVendors_AllHaveValidCountry(t *testing.T) {
	for id, v := range Vendors {
		if v.VendorID != id {
			t.Errorf("Vendors[%q].VendorID = %q, want %q", id, v.VendorID, id)
		}
		if _, ok := Countries[v.CountryID]; !ok {
			t.Errorf("Vendors[%q].CountryID = %q not present in Countries", id, v.CountryID)
		}
		if v.Homepage == "" {
			t.Errorf("Vendors[%q].Homepage is empty", id)
		}
		if v.FoundingYear < 1900 || v.FoundingYear > 2100 {
			t.Errorf("Vendors[%q].FoundingYear = %d out of plausible range", id, v.FoundingYear)
		}
	}
}

func TestVendorCompliance_OnlyReferencesKnownVendorsAndFrameworks(t *testing.T) {
	for vendorID, frameworkIDs := range VendorCompliance {
		if _, ok := Vendors[vendorID]; !ok {
			t.Errorf("VendorCompliance references unknown vendor %q", vendorID)
		}
		for _, fID := range frameworkIDs {
			if _, ok := ComplianceFrameworks[fID]; !ok {
				t.Errorf("VendorCompliance[%q] references unknown framework %q", vendorID, fID)
			}
		}
	}
}

func TestBenchmarks_KeyMatchesBenchmarkID(t *testing.T) {
	for id, b := range Benchmarks {
		if b.BenchmarkID != id {
			t.Errorf("Benchmarks[%q].BenchmarkID = %q, want %q", id, b.BenchmarkID, id)
		}
		if b.Framework == "" {
			t.Errorf("Benchmarks[%q].Framework is empty", id)
		}
	}
}

func TestVendorIDs_MatchesMapLength(t *testing.T) {
	ids := VendorIDs()
	if len(ids) != len(Vendors) {
		t.Errorf("VendorIDs() returned %d ids, want %d", len(ids), len(Vendors))
	}
}
