package runtime

import (
	"testing"

	"github.com/sparecores/sc-crawler/pkg/schema"
)

type stubAdapter struct{}

func (stubAdapter) InventoryComplianceFrameworks(v *Vendor) ([]schema.VendorComplianceLink, error) {
	return nil, nil
}
func (stubAdapter) InventoryRegions(v *Vendor) ([]schema.Region, error)           { return nil, nil }
func (stubAdapter) InventoryZones(v *Vendor) ([]schema.Zone, error)               { return nil, nil }
func (stubAdapter) InventoryServers(v *Vendor) ([]schema.Server, error)           { return nil, nil }
func (stubAdapter) InventoryServerPrices(v *Vendor) ([]schema.ServerPrice, error) { return nil, nil }
func (stubAdapter) InventoryServerPricesSpot(v *Vendor) ([]schema.ServerPrice, error) {
	return nil, nil
}
func (stubAdapter) InventoryStorages(v *Vendor) ([]schema.Storage, error) { return nil, nil }
func (stubAdapter) InventoryStoragePrices(v *Vendor) ([]schema.StoragePrice, error) {
	return nil, nil
}
func (stubAdapter) InventoryTrafficPrices(v *Vendor) ([]schema.TrafficPrice, error) {
	return nil, nil
}
func (stubAdapter) InventoryIpv4Prices(v *Vendor) ([]schema.Ipv4Price, error) { return nil, nil }

func TestRegistry_ResolveKnownVendors(t *testing.T) {
	reg := Registry{"hetzner": stubAdapter{}, "aws": stubAdapter{}}
	resolved, err := reg.Resolve([]string{"hetzner", "aws"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved adapters, got %d", len(resolved))
	}
}

func TestRegistry_ResolveMissingAdapterIsConfigError(t *testing.T) {
	reg := Registry{"hetzner": stubAdapter{}}
	_, err := reg.Resolve([]string{"hetzner", "oracle"})
	if err == nil {
		t.Fatal("expected an error for an unregistered vendor id")
	}
	cerr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cerr.Vendor != "oracle" {
		t.Errorf("expected ConfigError.Vendor = %q, got %q", "oracle", cerr.Vendor)
	}
}

func TestRegistry_KnownVendors(t *testing.T) {
	reg := Registry{"hetzner": stubAdapter{}, "aws": stubAdapter{}, "gcp": stubAdapter{}}
	known := reg.KnownVendors()
	if len(known) != 3 {
		t.Fatalf("expected 3 known vendors, got %d", len(known))
	}
}
