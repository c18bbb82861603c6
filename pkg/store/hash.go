package store

import (
	"fmt"
	"strings"

	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/scutil"
	"github.com/sparecores/sc-crawler/pkg/store/ddl"
)

// HashLevel selects the granularity Engine.Hash reports at, mirroring
// original_source/src/sc_crawler/utils.py's HashLevels enum.
type HashLevel string

const (
	LevelRow      HashLevel = "ROW"
	LevelTable    HashLevel = "TABLE"
	LevelDatabase HashLevel = "DATABASE"
)

// RowHashes returns, for every live (non-SCD) table, a map of each row's
// primary-key JSON key to the SHA-1 hash of its non-PK, non-ignored
// columns. ignored defaults to {"observed_at"} when nil, matching
// hash_database's default.
func (e *Engine) RowHashes(ignored []string) (map[string]map[string]string, error) {
	if ignored == nil {
		ignored = []string{"observed_at"}
	}
	ignoreSet := make(map[string]bool, len(ignored))
	for _, c := range ignored {
		ignoreSet[c] = true
	}

	result := make(map[string]map[string]string, len(schema.Tables))
	for _, t := range schema.Tables {
		rowHashes, err := e.rowHashesForTable(t, ignoreSet)
		if err != nil {
			return nil, err
		}
		result[t.TableName()] = rowHashes
	}
	return result, nil
}

func (e *Engine) rowHashesForTable(t schema.Record, ignoreSet map[string]bool) (map[string]string, error) {
	cols := ddl.Columns(t)
	pks := ddl.PKColumns(t)
	pkSet := make(map[string]bool, len(pks))
	for _, p := range pks {
		pkSet[p] = true
	}
	colNames := make([]string, len(cols))
	for i, c := range cols {
		colNames[i] = c.Name
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(colNames, ", "), t.TableName())
	rows, err := e.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("store: hashing %s: %w", t.TableName(), err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		raw := make([]interface{}, len(colNames))
		ptrs := make([]interface{}, len(colNames))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("store: scanning %s row: %w", t.TableName(), err)
		}

		pk := map[string]interface{}{}
		attrs := map[string]interface{}{}
		for i, name := range colNames {
			switch {
			case pkSet[name]:
				pk[name] = raw[i]
			case ignoreSet[name]:
				continue
			default:
				attrs[name] = raw[i]
			}
		}
		out[scutil.CanonicalJSON(pk)] = scutil.JSONHash(attrs)
	}
	return out, rows.Err()
}

// Hash computes hashes at the requested granularity. ROW returns
// map[string]map[string]string, TABLE returns map[string]string, and
// DATABASE returns a single string — callers type-assert based on the
// level they requested, mirroring hash_database's Union[str, dict] return.
func (e *Engine) Hash(level HashLevel, ignored []string) (interface{}, error) {
	rowHashes, err := e.RowHashes(ignored)
	if err != nil {
		return nil, err
	}
	switch level {
	case LevelRow, "":
		return rowHashes, nil
	case LevelTable:
		tableHashes := make(map[string]string, len(rowHashes))
		for table, rh := range rowHashes {
			tableHashes[table] = scutil.JSONHash(rh)
		}
		return tableHashes, nil
	case LevelDatabase:
		return scutil.JSONHash(rowHashes), nil
	default:
		return nil, fmt.Errorf("store: unknown hash level %q", level)
	}
}
