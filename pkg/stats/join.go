package stats

import "fmt"

// Others is the sentinel written into region fields of rows whose country
// code is not in the reference table.
const Others = "Others"

// RegionColumns are the columns JoinRegions appends to a subject table.
var RegionColumns = []string{AlphaColumn, RegionColumn, SubRegionColumn, IntermediateRegionColumn}

// JoinRegions left joins t to the reference on codeColumn = alpha-3.
// Every input row appears exactly once in the output. Rows without a match
// keep null region fields.
func JoinRegions(t *Table, ref *Reference, codeColumn string) (*Table, error) {
	codeIdx, err := t.Index(codeColumn)
	if err != nil {
		return nil, err
	}

	out := NewTable(append(append([]string(nil), t.Columns...), RegionColumns...)...)
	out.Rows = make([][]string, 0, t.Len())

	width := len(t.Columns)
	for i, row := range t.Rows {
		joined := make([]string, len(out.Columns))
		copy(joined[:width], row)

		if reg, found := ref.Lookup(t.Cell(i, codeIdx)); found {
			joined[width] = reg.Code
			joined[width+1] = reg.Region
			joined[width+2] = reg.SubRegion
			joined[width+3] = reg.IntermediateRegion
		}
		out.Rows = append(out.Rows, joined)
	}
	return out, nil
}

// FillMissing returns a copy of t with null cells of the given columns
// replaced by sentinel.
func FillMissing(t *Table, columns []string, sentinel string) (*Table, error) {
	idx := make([]int, 0, len(columns))
	for _, c := range columns {
		i, err := t.Index(c)
		if err != nil {
			return nil, fmt.Errorf("fill missing: %w", err)
		}
		idx = append(idx, i)
	}

	out := t.Clone()
	for _, row := range out.Rows {
		for _, i := range idx {
			if IsNull(row[i]) {
				row[i] = sentinel
			}
		}
	}
	return out, nil
}

// FilterEqual returns the rows of t whose column equals value.
func FilterEqual(t *Table, column, value string) (*Table, error) {
	c, err := t.Index(column)
	if err != nil {
		return nil, err
	}

	out := NewTable(t.Columns...)
	for i, row := range t.Rows {
		if t.Cell(i, c) == value {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
