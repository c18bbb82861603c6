// Package metrics exposes the crawler's own operational counters —
// per-stage duration and failure counts, rows upserted per table — as
// Prometheus metrics, independent of the domain data the pipeline writes
// into pkg/store. Grounded on the teacher's own `prometheus/client_golang`
// dependency (pkg/metrics, internal/metrics in nitin2goyal-katalyst instrument
// controller reconcile loops the same way this instruments pipeline stages:
// a duration histogram and an error counter per unit of work, registered
// once at package init and served over HTTP for a scraper to pull).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// StageDuration records how long one pipeline stage took for one
	// vendor, mirroring the teacher's reconcile-loop duration histograms.
	StageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sc_crawler",
		Name:      "stage_duration_seconds",
		Help:      "Duration of one inventory pipeline stage run, by vendor and stage.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"vendor", "stage"})

	// StageErrorsTotal counts failed stage runs, by vendor and stage.
	StageErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sc_crawler",
		Name:      "stage_errors_total",
		Help:      "Count of inventory pipeline stage runs that returned an error, by vendor and stage.",
	}, []string{"vendor", "stage"})

	// RowsUpsertedTotal counts rows written by runUpsertStage, by table.
	RowsUpsertedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sc_crawler",
		Name:      "rows_upserted_total",
		Help:      "Count of rows upserted into the store, by table.",
	}, []string{"table"})

	// RowsDeactivatedTotal counts rows MarkInactive/MarkInactiveExcept
	// flipped to INACTIVE, by table — the ACTIVE->INACTIVE transitions
	// spec.md §8 scenario S4 expects to show up in SCD history.
	RowsDeactivatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sc_crawler",
		Name:      "rows_deactivated_total",
		Help:      "Count of rows marked INACTIVE, by table.",
	}, []string{"table"})
)

func init() {
	prometheus.MustRegister(StageDuration, StageErrorsTotal, RowsUpsertedTotal, RowsDeactivatedTotal)
}

// Handler returns the promhttp handler a caller can mount at /metrics.
// A single static path needs nothing beyond net/http's own mux — the
// teacher's go-chi/chi router exists to dispatch dozens of REST routes in
// internal/apiserver, machinery this one-endpoint exporter doesn't need.
func Handler() http.Handler {
	return promhttp.Handler()
}
