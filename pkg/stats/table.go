package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Table is an in-memory table of string cells, as read from a data file.
// The first row of the file becomes Columns.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewTable returns an empty table with the given header.
func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of a column, or a *ColumnError.
func (t *Table) Index(column string) (int, error) {
	for i, c := range t.Columns {
		if c == column {
			return i, nil
		}
	}
	return -1, &ColumnError{Column: column, Available: t.Columns}
}

// Has reports whether the table carries every given column.
func (t *Table) Has(columns ...string) bool {
	for _, c := range columns {
		if _, err := t.Index(c); err != nil {
			return false
		}
	}
	return true
}

// Append adds a row, padding or truncating it to the header width.
func (t *Table) Append(row []string) {
	r := make([]string, len(t.Columns))
	copy(r, row)
	t.Rows = append(t.Rows, r)
}

// Cell returns the value at row i, column c. Out of range cells are null.
func (t *Table) Cell(i, c int) string {
	if c < 0 || c >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][c]
}

// Clone returns a deep copy of the table with every row padded to the
// header width.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns...)
	out.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = make([]string, len(t.Columns))
		copy(out.Rows[i], r)
	}
	return out
}

// Years returns the smallest and largest integer value of a column.
// ok is false when the column holds no parsable year.
func (t *Table) Years(column string) (min, max int, ok bool) {
	c, err := t.Index(column)
	if err != nil {
		return 0, 0, false
	}
	for i := range t.Rows {
		v := t.Cell(i, c)
		if IsNull(v) {
			continue
		}
		y, err := ParseYear(v)
		if err != nil {
			continue
		}
		if !ok || y < min {
			min = y
		}
		if !ok || y > max {
			max = y
		}
		ok = true
	}
	return min, max, ok
}

// ParseYear reads a year cell. Whole numbers written as floats, such as
// "2000.0", are accepted.
func ParseYear(v string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: year %q", ErrNonNumeric, v)
	}
	return int(f), nil
}

var nullMarkers = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"NaN":  true,
	"nan":  true,
	"-NaN": true,
	"null": true,
	"NULL": true,
	"#N/A": true,
	"<NA>": true,
	"None": true,
}

// IsNull reports whether a cell counts as a missing value.
func IsNull(v string) bool {
	return nullMarkers[strings.TrimSpace(v)]
}
