package pipeline

import "fmt"

// ReferentialError reports a row whose foreign key points at an entity
// this pull never saw, per spec.md §7's "Referential" error kind: a
// stage-fatal condition, handled identically to a schema.ValidationError.
type ReferentialError struct {
	Table string
	Field string
	Value string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("pipeline: %s.%s references unknown %q", e.Table, e.Field, e.Value)
}

// StageError wraps any error raised during a named stage with the
// vendor-id/stage-name context spec.md §7 requires the stage wrapper to
// attach before re-raising to the driver.
type StageError struct {
	Vendor string
	Stage  string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: vendor %s: stage %s: %v", e.Vendor, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
