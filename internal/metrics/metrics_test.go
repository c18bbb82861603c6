package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStageDuration_ObservesByVendorAndStage(t *testing.T) {
	StageDuration.Reset()
	StageDuration.WithLabelValues("aws", "regions").Observe(0.25)

	count := testutil.CollectAndCount(StageDuration, "sc_crawler_stage_duration_seconds")
	if count != 1 {
		t.Errorf("expected 1 observed series, got %d", count)
	}
}

func TestRowsUpsertedTotal_IncrementsByTable(t *testing.T) {
	RowsUpsertedTotal.Reset()
	RowsUpsertedTotal.WithLabelValues("region").Add(3)
	RowsUpsertedTotal.WithLabelValues("region").Add(2)

	got := testutil.ToFloat64(RowsUpsertedTotal.WithLabelValues("region"))
	if got != 5 {
		t.Errorf("rows_upserted_total[region] = %v, want 5", got)
	}
}

func TestRowsDeactivatedTotal_IncrementsByTable(t *testing.T) {
	RowsDeactivatedTotal.Reset()
	RowsDeactivatedTotal.WithLabelValues("server").Add(1)

	got := testutil.ToFloat64(RowsDeactivatedTotal.WithLabelValues("server"))
	if got != 1 {
		t.Errorf("rows_deactivated_total[server] = %v, want 1", got)
	}
}

func TestHandler_NotNil(t *testing.T) {
	if Handler() == nil {
		t.Fatal("Handler() returned nil")
	}
}
