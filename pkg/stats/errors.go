package stats

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumn is returned when a table lacks a column a
	// transformation needs, typically because the wrong file was uploaded.
	ErrMissingColumn = errors.New("missing column")

	// ErrNonNumeric is returned when a metric cell is neither null nor a number.
	ErrNonNumeric = errors.New("non-numeric value")

	// ErrMalformedFile is returned when a data file cannot be parsed as a table.
	ErrMalformedFile = errors.New("malformed file")

	// ErrDuplicateCode is returned when the reference table lists a country twice.
	ErrDuplicateCode = errors.New("duplicate country code")
)

// ColumnError names the missing column and what the table offered instead.
type ColumnError struct {
	Column    string
	Available []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing column %q (have: %s)", e.Column, strings.Join(e.Available, ", "))
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}
