package upcloud

import (
	"context"
	"errors"
	"testing"

	"github.com/sparecores/sc-crawler/internal/runtime"
)

type stubFetcher struct {
	zones []zone
	err   error
}

func (s *stubFetcher) Zones(ctx context.Context) ([]zone, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.zones, nil
}

func TestAdapter_FullFlow(t *testing.T) {
	a := New(&stubFetcher{zones: []zone{{ID: "se-sto1", Description: "Stockholm", Public: "yes"}}}, nil)
	v := &runtime.Vendor{}

	regions, err := a.InventoryRegions(v)
	if err != nil {
		t.Fatalf("InventoryRegions: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	v.Regions = regions

	zones, err := a.InventoryZones(v)
	if err != nil || len(zones) != 1 {
		t.Fatalf("InventoryZones: %v, %v", zones, err)
	}

	for _, call := range []func() (int, error){
		func() (int, error) { s, err := a.InventoryServers(v); return len(s), err },
		func() (int, error) { s, err := a.InventoryServerPrices(v); return len(s), err },
		func() (int, error) { s, err := a.InventoryServerPricesSpot(v); return len(s), err },
		func() (int, error) { s, err := a.InventoryStorages(v); return len(s), err },
		func() (int, error) { s, err := a.InventoryStoragePrices(v); return len(s), err },
		func() (int, error) { s, err := a.InventoryTrafficPrices(v); return len(s), err },
		func() (int, error) { s, err := a.InventoryIpv4Prices(v); return len(s), err },
	} {
		n, err := call()
		if err != nil || n != 0 {
			t.Errorf("expected empty, nil-error upstream-gap result, got n=%d err=%v", n, err)
		}
	}
}

func TestAdapter_PropagatesFetcherError(t *testing.T) {
	a := New(&stubFetcher{err: errors.New("boom")}, nil)
	if _, err := a.InventoryRegions(&runtime.Vendor{}); err == nil {
		t.Fatal("expected error to propagate")
	}
}

var _ runtime.Adapter = (*Adapter)(nil)
