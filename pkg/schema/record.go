// Package schema defines the cross-vendor relational entities: countries,
// compliance frameworks, vendors, regions, zones, storages, servers, prices,
// and benchmarks. Each entity is a plain Go struct with a colocated
// Validate() method; none of this package talks to a database directly
// (see pkg/store for that).
package schema

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sparecores/sc-crawler/pkg/scfields"
)

// Meta carries the two columns every entity has: its last known status and
// the timestamp it was last observed at. Embedded by value in every
// non-SCD entity; SCD companions promote ObservedAt into the primary key
// instead of embedding Meta directly (see the *Scd types, such as RegionScd).
type Meta struct {
	Status     scfields.Status `json:"status"`
	ObservedAt time.Time       `json:"observed_at"`
}

// Record is satisfied by every schema entity (and its SCD companion),
// letting pkg/store operate on them generically.
type Record interface {
	TableName() string
	PrimaryKeys() map[string]interface{}
	Attributes() map[string]interface{}
	Validate() error
}

// Hash returns the SHA-1 hex digest of a record's attributes (everything
// but its primary keys), matching ScModel.hash in
// original_source/src/sc_crawler/table_bases.py: the row content hash used
// for idempotence verification, keyed by the row's primary keys.
func Hash(r Record) string {
	return hashAttributes(r.Attributes())
}

func hashAttributes(attrs map[string]interface{}) string {
	b, err := json.Marshal(sortedMap(attrs))
	if err != nil {
		return ""
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}

// sortedMap re-marshals a map through JSON so its keys are emitted in
// sorted order regardless of Go's randomized map iteration, matching
// Python's json.dumps(..., sort_keys=True).
func sortedMap(m map[string]interface{}) json.RawMessage {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	buf := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, _ := json.Marshal(k)
		vb, err := json.Marshal(m[k])
		if err != nil {
			vb = []byte("null")
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, vb...)
	}
	buf = append(buf, '}')
	return buf
}

// PKKey returns a stable string key for a primary-key map, used to index
// hash results and to compare SCD rows, matching table_bases.py's
// json.dumps(keys, sort_keys=True) usage as a dict key.
func PKKey(pks map[string]interface{}) string {
	return string(sortedMap(pks))
}

// ValidationError accumulates one or more field-level validation failures
// for a single record, grounded on the teacher's
// internal/config/validation.go ValidationError{Errors []string} pattern.
type ValidationError struct {
	Entity string
	Errors []string
}

func (e *ValidationError) Add(format string, args ...interface{}) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("%s: %d validation errors: %v", e.Entity, len(e.Errors), e.Errors)
}

// AsError returns nil when the accumulator is empty, otherwise itself as
// an error, so callers can write `return verr.AsError()`.
func (e *ValidationError) AsError() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}
