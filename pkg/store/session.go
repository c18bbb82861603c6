package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scutil"
	"github.com/sparecores/sc-crawler/pkg/store/ddl"
)

// chunkSize bounds how many rows go into a single INSERT statement, to
// stay under SQLite's bound-parameter limit. Mirrors
// original_source/src/sc_crawler/insert.py's chunk_list(items, 100).
const chunkSize = 100

// Upsert inserts records, updating any row whose primary key already
// exists. All records must be the same concrete entity type (one stage
// upserts one table at a time, per spec.md §4.2). Empty input is a no-op.
func (s *Session) Upsert(records []schema.Record) error {
	if len(records) == 0 {
		return nil
	}
	table := records[0].TableName()
	cols := ddl.Columns(records[0])
	colNames := make([]string, len(cols))
	for i, c := range cols {
		colNames[i] = c.Name
	}
	pks := ddl.PKColumns(records[0])

	var updateCols []string
	for _, c := range colNames {
		if !contains(pks, c) {
			updateCols = append(updateCols, c)
		}
	}

	for _, chunk := range scutil.ChunkList(records, chunkSize) {
		if err := s.upsertChunk(table, colNames, pks, updateCols, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) upsertChunk(table string, colNames, pks, updateCols []string, chunk []schema.Record) error {
	placeholderRow := "(" + strings.TrimSuffix(strings.Repeat("?,", len(colNames)), ",") + ")"
	rowPlaceholders := make([]string, len(chunk))
	args := make([]interface{}, 0, len(chunk)*len(colNames))
	for i, rec := range chunk {
		rowPlaceholders[i] = placeholderRow
		args = append(args, ddl.Values(rec)...)
	}

	var setClauses []string
	for _, c := range updateCols {
		setClauses = append(setClauses, fmt.Sprintf("%s = excluded.%s", c, c))
	}

	var query string
	if len(setClauses) == 0 {
		// Pure-PK tables (no non-key attributes): nothing to update, just
		// skip conflicting rows.
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON CONFLICT (%s) DO NOTHING",
			table, strings.Join(colNames, ", "), strings.Join(rowPlaceholders, ", "), strings.Join(pks, ", "))
	} else {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON CONFLICT (%s) DO UPDATE SET %s",
			table, strings.Join(colNames, ", "), strings.Join(rowPlaceholders, ", "),
			strings.Join(pks, ", "), strings.Join(setClauses, ", "))
	}

	if _, err := s.tx.Exec(query, args...); err != nil {
		return fmt.Errorf("store: upserting into %s: %w", table, err)
	}
	return nil
}

// DuplicateToSCD appends each record into its SCD companion table, opt-in
// per spec.md §3.3. Callers build the SCD-shaped record themselves (e.g.
// schema.RegionScd{Region: r}) so observed_at is already promoted into
// its primary key; conflicting (duplicate) primary keys are ignored since
// SCD rows never mutate once written (invariant 5).
func (s *Session) DuplicateToSCD(records []schema.Record) error {
	if len(records) == 0 {
		return nil
	}
	table := records[0].TableName()
	cols := ddl.Columns(records[0])
	colNames := make([]string, len(cols))
	for i, c := range cols {
		colNames[i] = c.Name
	}
	pks := ddl.PKColumns(records[0])

	for _, chunk := range scutil.ChunkList(records, chunkSize) {
		placeholderRow := "(" + strings.TrimSuffix(strings.Repeat("?,", len(colNames)), ",") + ")"
		rowPlaceholders := make([]string, len(chunk))
		args := make([]interface{}, 0, len(chunk)*len(colNames))
		for i, rec := range chunk {
			rowPlaceholders[i] = placeholderRow
			args = append(args, ddl.Values(rec)...)
		}
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON CONFLICT (%s) DO NOTHING",
			table, strings.Join(colNames, ", "), strings.Join(rowPlaceholders, ", "), strings.Join(pks, ", "))
		if _, err := s.tx.Exec(query, args...); err != nil {
			return fmt.Errorf("store: duplicating into %s: %w", table, err)
		}
	}
	return nil
}

// MarkInactive sets status=INACTIVE and refreshes observed_at to now on
// every row of T's table matching the equality predicate in scope (e.g.
// {"vendor_id": "aws"}, or additionally {"allocation":
// scfields.AllocationSpot} to scope invalidation to spot prices only, per
// spec.md §4.5 stage 5 vs 6). It returns the rows it just invalidated, in
// their post-update shape, so a caller can duplicate that INACTIVE
// snapshot into an SCD companion table (spec.md §4.2, §8 scenario S4).
//
// MarkInactive is a free function rather than a *Session method because
// Go methods cannot carry their own type parameters.
func MarkInactive[T schema.Record](s *Session, rec T, scope map[string]interface{}) ([]T, error) {
	return markInactive[T](s, rec, scope, "", nil)
}

// MarkInactiveExcept is MarkInactive but additionally excludes rows whose
// excludeCol equals excludeVal, for the "everything but SPOT" predicate
// stage 5 needs (spec.md §4.5 stage 5 invalidates only non-SPOT rows,
// leaving stage 6's SPOT scan as the exact complement).
func MarkInactiveExcept[T schema.Record](s *Session, rec T, scope map[string]interface{}, excludeCol string, excludeVal interface{}) ([]T, error) {
	return markInactive[T](s, rec, scope, excludeCol, excludeVal)
}

func markInactive[T schema.Record](s *Session, rec T, scope map[string]interface{}, excludeCol string, excludeVal interface{}) ([]T, error) {
	table := rec.TableName()
	if len(scope) == 0 {
		return nil, fmt.Errorf("store: MarkInactive on %s requires a non-empty scope", table)
	}
	scopeCols := make([]string, 0, len(scope))
	for col := range scope {
		scopeCols = append(scopeCols, col)
	}
	sort.Strings(scopeCols)

	var conds []string
	args := []interface{}{time.Now().UTC()}
	for _, col := range scopeCols {
		conds = append(conds, fmt.Sprintf("%s = ?", col))
		args = append(args, scope[col])
	}
	if excludeCol != "" {
		conds = append(conds, fmt.Sprintf("%s != ?", excludeCol))
		args = append(args, excludeVal)
	}

	cols := ddl.Columns(rec)
	colNames := make([]string, len(cols))
	for i, c := range cols {
		colNames[i] = c.Name
	}

	query := fmt.Sprintf("UPDATE %s SET status = 'INACTIVE', observed_at = ? WHERE %s RETURNING %s",
		table, strings.Join(conds, " AND "), strings.Join(colNames, ", "))
	rows, err := s.tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: marking %s inactive: %w", table, err)
	}
	defer rows.Close()

	out, err := ddl.ScanRows[T](rows)
	if err != nil {
		return nil, fmt.Errorf("store: marking %s inactive: %w", table, err)
	}
	return out, nil
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
