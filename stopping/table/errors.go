package table

import (
	"errors"
	"fmt"
)

// Errors returned by table construction and parsing.
var (
	ErrMalformedTable = errors.New("table: malformed stopping-power table")
	ErrParse          = errors.New("table: cannot parse stopping-power data")
)

// MalformedTableError describes why a table was rejected. Index is the
// offending sample, or -1 when the problem concerns the table as a whole.
type MalformedTableError struct {
	Index  int
	Reason string
}

func (e *MalformedTableError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedTable, e.Reason)
	}

	return fmt.Sprintf("%v: sample %d: %s", ErrMalformedTable, e.Index, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedTable.
func (e *MalformedTableError) Unwrap() error {
	return ErrMalformedTable
}

func malformed(index int, format string, args ...any) error {
	return &MalformedTableError{Index: index, Reason: fmt.Sprintf(format, args...)}
}
