package schema

import (
	"testing"
	"time"

	"github.com/sparecores/sc-crawler/pkg/scfields"
)

func TestServerPrice_Validate(t *testing.T) {
	base := func() ServerPrice {
		return ServerPrice{
			Meta:     Meta{Status: scfields.StatusActive, ObservedAt: time.Unix(0, 0)},
			VendorID: "aws", RegionID: "us-east-1", ZoneID: "us-east-1a", ServerID: "m5.large",
			Allocation:      scfields.AllocationOnDemand,
			OperatingSystem: "Linux",
			PriceFields: PriceFields{
				Unit:     scfields.UnitHour,
				Price:    0.096,
				Currency: "USD",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(ServerPrice) ServerPrice
		wantErr bool
	}{
		{"valid", func(p ServerPrice) ServerPrice { return p }, false},
		{"missing server id", func(p ServerPrice) ServerPrice { p.ServerID = ""; return p }, true},
		{"invalid allocation", func(p ServerPrice) ServerPrice { p.Allocation = "WEIRD"; return p }, true},
		{"missing os", func(p ServerPrice) ServerPrice { p.OperatingSystem = ""; return p }, true},
		{"negative price", func(p ServerPrice) ServerPrice { p.Price = -1; return p }, true},
		{"invalid unit", func(p ServerPrice) ServerPrice { p.Unit = "WEEK"; return p }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(base()).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServerPrice_PriceTieredConnectedRange(t *testing.T) {
	p := ServerPrice{
		VendorID: "aws", RegionID: "us-east-1", ZoneID: "us-east-1a", ServerID: "m5.large",
		Allocation:      scfields.AllocationReserved,
		OperatingSystem: "Linux",
		PriceFields: PriceFields{
			Unit:     scfields.UnitHour,
			Currency: "USD",
			PriceTiered: []scfields.PriceTier{
				{Lower: 0.0, Upper: 100.0, Price: 0.1},
				{Lower: 100.0, Upper: scfields.PosInfinity, Price: 0.05},
			},
		},
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected connected tiers to validate, got %v", err)
	}

	p.PriceTiered[1].Lower = 200.0
	if err := p.Validate(); err == nil {
		t.Fatal("expected gap between tiers to fail validation")
	}
}

func TestServerPriceScd_PrimaryKeyIncludesObservedAt(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	scd := ServerPriceScd{ServerPrice: ServerPrice{
		Meta:     Meta{ObservedAt: now},
		VendorID: "hetzner", RegionID: "fsn1", ZoneID: "fsn1-dc14", ServerID: "cx11",
		Allocation: scfields.AllocationOnDemand,
	}}
	pk := scd.PrimaryKeys()
	if pk["observed_at"] != now {
		t.Errorf("observed_at missing from SCD primary key: %v", pk)
	}
	if len(pk) != len(scd.ServerPrice.PrimaryKeys())+1 {
		t.Errorf("expected SCD PK to add exactly one column, got %v", pk)
	}
}

func TestHash_StableAcrossMapOrdering(t *testing.T) {
	p1 := ServerPrice{VendorID: "aws", RegionID: "us-east-1", ZoneID: "a", ServerID: "m5.large",
		PriceFields: PriceFields{Unit: scfields.UnitHour, Price: 1, Currency: "USD"}}
	p2 := p1
	h1 := Hash(p1)
	h2 := Hash(p2)
	if h1 != h2 || h1 == "" {
		t.Fatalf("expected identical, non-empty hashes, got %q and %q", h1, h2)
	}

	p2.Price = 2
	if Hash(p2) == h1 {
		t.Fatal("expected hash to change when an attribute changes")
	}
}
