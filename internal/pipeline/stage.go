package pipeline

import (
	"github.com/sparecores/sc-crawler/internal/metrics"
	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/store"
)

// runUpsertStage implements the per-stage inventory protocol of spec.md
// §4.5: mark stale rows inactive, fetch, validate every row, run an
// optional referential check, upsert, and (if scd is on) duplicate into
// the SCD companion table — all within the caller's already-open session,
// so the whole stage is one commit.
//
// markInactive returns the rows it just flipped to INACTIVE (in their
// post-update shape, observed_at already bumped). Those deactivated rows
// are duplicated into SCD alongside the freshly fetched active rows, so a
// server that disappears from a vendor's API leaves behind an
// ACTIVE->INACTIVE transition in its SCD history (spec.md §8 scenario S4)
// instead of silently vanishing from it.
func runUpsertStage[T schema.Record](
	sess *store.Session,
	markInactive func() ([]T, error),
	fetch func() ([]T, error),
	checkReferential func(T) error,
	scd bool,
	toSCD func(T) schema.Record,
) ([]T, error) {
	var zero T
	table := zero.TableName()

	deactivated, err := markInactive()
	if err != nil {
		return nil, err
	}
	if len(deactivated) > 0 {
		metrics.RowsDeactivatedTotal.WithLabelValues(table).Add(float64(len(deactivated)))
	}

	rows, err := fetch()
	if err != nil {
		return nil, err
	}

	records := make([]schema.Record, 0, len(rows))
	for _, r := range rows {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if checkReferential != nil {
			if err := checkReferential(r); err != nil {
				return nil, err
			}
		}
		records = append(records, r)
	}

	if err := sess.Upsert(records); err != nil {
		return nil, err
	}
	if len(records) > 0 {
		metrics.RowsUpsertedTotal.WithLabelValues(table).Add(float64(len(records)))
	}

	if scd && toSCD != nil {
		scdRecords := make([]schema.Record, 0, len(deactivated)+len(rows))
		for _, r := range deactivated {
			scdRecords = append(scdRecords, toSCD(r))
		}
		for _, r := range rows {
			scdRecords = append(scdRecords, toSCD(r))
		}
		if len(scdRecords) > 0 {
			if err := sess.DuplicateToSCD(scdRecords); err != nil {
				return nil, err
			}
		}
	}

	return rows, nil
}
