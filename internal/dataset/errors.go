package dataset

import (
	"fmt"
	"strings"
)

// DataLoadError reports a required source file that is missing or unreadable.
// It is fatal at startup; the process must not serve search traffic without a
// complete data layer.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load data file %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// SchemaError reports join-key columns that could not be resolved in the
// source tables after name normalization. Missing lists every unresolved key
// as "<table>.<key>".
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "could not resolve required columns: " + strings.Join(e.Missing, ", ")
}
