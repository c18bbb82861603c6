package upcloud

import "testing"

func TestInventoryRegions_FiltersPrivateAndEnriches(t *testing.T) {
	zones := []zone{
		{ID: "fi-hel1", Description: "Helsinki #1", Public: "yes"},
		{ID: "fi-hel2", Description: "Helsinki #2", Public: "no"},
	}
	got, err := inventoryRegions(zones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 public region, got %d", len(got))
	}
	r := got[0]
	if r.CountryID != "FI" || r.City == nil || *r.City != "Helsinki" {
		t.Errorf("unexpected region: %+v", r)
	}
	if r.DisplayName != "Helsinki #1 (FI)" {
		t.Errorf("unexpected display name: %s", r.DisplayName)
	}
}

func TestInventoryRegions_UnknownZoneErrors(t *testing.T) {
	zones := []zone{{ID: "xx-nope1", Description: "Nowhere", Public: "yes"}}
	if _, err := inventoryRegions(zones); err == nil {
		t.Fatal("expected error for unmapped region")
	}
}

func TestInventoryZones_OneToOneWithRegions(t *testing.T) {
	regions, err := inventoryRegions([]zone{{ID: "de-fra1", Description: "Frankfurt", Public: "yes"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zones := inventoryZones(regions)
	if len(zones) != 1 || zones[0].ZoneID != "de-fra1" || zones[0].RegionID != "de-fra1" {
		t.Fatalf("unexpected zones: %+v", zones)
	}
}

func TestInventoryComplianceFrameworks(t *testing.T) {
	for _, l := range inventoryComplianceFrameworks() {
		if l.VendorID != vendorID {
			t.Errorf("unexpected vendor id: %s", l.VendorID)
		}
	}
}
