// Package pipeline drives the per-vendor inventory pull: the ten ordered
// stages of spec.md §4.5, each a single mark-inactive/fetch/validate/
// upsert/(scd) transaction, run serially per vendor with cooperative
// cancellation between stages.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/sparecores/sc-crawler/internal/metrics"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/pkg/store"
)

// Options controls cross-cutting pipeline behavior.
type Options struct {
	// SCD enables duplicating each upserted row into its SCD companion
	// table in the same transaction, per spec.md §3.3/§5 ordering
	// guarantee 3.
	SCD bool
}

// Driver owns the persistence engine and runs the inventory pipeline for
// one vendor at a time, per spec.md §5's "cooperative within a vendor"
// scheduling model.
type Driver struct {
	Engine *store.Engine
	Opts   Options
}

// VendorResult records the outcome of one vendor's pull.
type VendorResult struct {
	VendorID string
	Err      error
}

// Run pulls every vendor in order, serially. A vendor whose pipeline
// fails is logged and skipped; prior vendors' committed stages are
// untouched (spec.md §7's "driver logs and proceeds to the next vendor").
// Run returns an error only when every vendor failed.
func (d *Driver) Run(ctx context.Context, vendors []*runtime.Vendor) ([]VendorResult, error) {
	results := make([]VendorResult, 0, len(vendors))
	failures := 0

	for _, v := range vendors {
		select {
		case <-ctx.Done():
			results = append(results, VendorResult{VendorID: v.VendorID, Err: ctx.Err()})
			failures++
			continue
		default:
		}

		err := d.runVendor(ctx, v)
		if err != nil {
			failures++
			if v.Log != nil {
				v.Log.Error("vendor pull failed", "vendor", v.VendorID, "error", err)
			}
		}
		results = append(results, VendorResult{VendorID: v.VendorID, Err: err})
	}

	if len(vendors) > 0 && failures == len(vendors) {
		return results, fmt.Errorf("pipeline: every selected vendor failed")
	}
	return results, nil
}

func (d *Driver) runVendor(ctx context.Context, v *runtime.Vendor) error {
	stages := []struct {
		name string
		run  func(ctx context.Context, v *runtime.Vendor) error
	}{
		{"compliance_frameworks", d.stageComplianceFrameworks},
		{"regions", d.stageRegions},
		{"zones", d.stageZones},
		{"servers", d.stageServers},
		{"server_prices", d.stageServerPrices},
		{"server_prices_spot", d.stageServerPricesSpot},
		{"storages", d.stageStorages},
		{"storage_prices", d.stageStoragePrices},
		{"traffic_prices", d.stageTrafficPrices},
		{"ipv4_prices", d.stageIpv4Prices},
	}

	for _, stage := range stages {
		select {
		case <-ctx.Done():
			return &StageError{Vendor: v.VendorID, Stage: stage.name, Err: ctx.Err()}
		default:
		}
		if v.Log != nil {
			v.Log.Debug("starting stage", "vendor", v.VendorID, "stage", stage.name)
		}
		start := time.Now()
		err := stage.run(ctx, v)
		metrics.StageDuration.WithLabelValues(v.VendorID, stage.name).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.StageErrorsTotal.WithLabelValues(v.VendorID, stage.name).Inc()
			return &StageError{Vendor: v.VendorID, Stage: stage.name, Err: err}
		}
	}
	return nil
}

func begin(ctx context.Context, e *store.Engine) (*store.Session, error) {
	return e.Begin(ctx)
}

func finish(sess *store.Session, stageErr *error) {
	if *stageErr != nil {
		sess.Rollback()
		return
	}
	if err := sess.Commit(); err != nil {
		*stageErr = err
	}
}

func vendorScope(v *runtime.Vendor) map[string]interface{} {
	return map[string]interface{}{"vendor_id": v.VendorID}
}

func logVendor(v *runtime.Vendor, msg string, args ...interface{}) {
	if v.Log != nil {
		v.Log.Debug(msg, args...)
	}
}
