// Package seed loads the static reference data sc-crawler never discovers
// from a vendor API — countries, compliance frameworks, the curated
// vendor roster, and the benchmark framework registry (internal/lookup)
// — into the store before the pipeline's per-vendor stages run. Mirrors
// the original crawler's session.merge()-on-startup seeding
// (original_source/src/sc_crawler/session.py); the benchmark registry has
// no original_source fixtures list (supplemented per SPEC_FULL.md) since
// internal/inspector's HarvestBenchmarks needs Benchmark rows to exist
// before it can produce BenchmarkScore rows that reference them.
package seed

import (
	"context"
	"time"

	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/store"
)

// Run upserts Countries, ComplianceFrameworks, Vendors, and Benchmarks in
// a single transaction, stamping every row Active as of now since this
// static data has no "inactive" concept of its own.
func Run(ctx context.Context, e *store.Engine) error {
	sess, err := e.Begin(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	meta := schema.Meta{Status: scfields.StatusActive, ObservedAt: now}

	countries := make([]schema.Record, 0, len(lookup.Countries))
	for _, c := range lookup.Countries {
		c.Meta = meta
		countries = append(countries, c)
	}
	if err := sess.Upsert(countries); err != nil {
		sess.Rollback()
		return err
	}

	frameworks := make([]schema.Record, 0, len(lookup.ComplianceFrameworks))
	for _, f := range lookup.ComplianceFrameworks {
		f.Meta = meta
		frameworks = append(frameworks, f)
	}
	if err := sess.Upsert(frameworks); err != nil {
		sess.Rollback()
		return err
	}

	vendors := make([]schema.Record, 0, len(lookup.Vendors))
	for _, v := range lookup.Vendors {
		v.Meta = meta
		vendors = append(vendors, v)
	}
	if err := sess.Upsert(vendors); err != nil {
		sess.Rollback()
		return err
	}

	benchmarks := make([]schema.Record, 0, len(lookup.Benchmarks))
	for _, b := range lookup.Benchmarks {
		b.Meta = meta
		benchmarks = append(benchmarks, b)
	}
	if err := sess.Upsert(benchmarks); err != nil {
		sess.Rollback()
		return err
	}

	return sess.Commit()
}
