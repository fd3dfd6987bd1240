package stats

import (
	"fmt"
	"sort"
	"strings"
)

// Reference table column names, as found in the bundled continents file.
const (
	AlphaColumn              = "alpha-3"
	CountryColumn            = "name"
	RegionColumn             = "region"
	SubRegionColumn          = "sub-region"
	IntermediateRegionColumn = "intermediate-region"
)

// Region is one row of the country reference table.
type Region struct {
	Code               string
	Name               string
	Region             string
	SubRegion          string
	IntermediateRegion string
}

// Reference maps alpha-3 country codes to their regions. It is built once
// and never modified, so it can be shared by every transformation.
type Reference struct {
	byCode map[string]Region
	codes  []string
}

// NewReference indexes regions by code. Codes must be unique.
func NewReference(regions []Region) (*Reference, error) {
	r := &Reference{byCode: make(map[string]Region, len(regions))}
	for _, reg := range regions {
		code := strings.TrimSpace(reg.Code)
		if code == "" {
			continue
		}
		if _, found := r.byCode[code]; found {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, code)
		}
		reg.Code = code
		r.byCode[code] = reg
		r.codes = append(r.codes, code)
	}
	sort.Strings(r.codes)
	return r, nil
}

// ReferenceFromTable builds a Reference from a continents table. Columns
// other than code, name and the three region levels are ignored.
func ReferenceFromTable(t *Table) (*Reference, error) {
	idx := make(map[string]int)
	for _, c := range []string{AlphaColumn, RegionColumn, SubRegionColumn, IntermediateRegionColumn} {
		i, err := t.Index(c)
		if err != nil {
			return nil, err
		}
		idx[c] = i
	}
	nameIdx, err := t.Index(CountryColumn)
	if err != nil {
		nameIdx = -1
	}

	regions := make([]Region, 0, t.Len())
	for i := range t.Rows {
		regions = append(regions, Region{
			Code:               t.Cell(i, idx[AlphaColumn]),
			Name:               t.Cell(i, nameIdx),
			Region:             t.Cell(i, idx[RegionColumn]),
			SubRegion:          t.Cell(i, idx[SubRegionColumn]),
			IntermediateRegion: t.Cell(i, idx[IntermediateRegionColumn]),
		})
	}
	return NewReference(regions)
}

// LoadReference reads the reference table from a data file.
func LoadReference(path string) (*Reference, error) {
	t, err := LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("load reference: %w", err)
	}
	return ReferenceFromTable(t)
}

func (r *Reference) Lookup(code string) (Region, bool) {
	reg, found := r.byCode[strings.TrimSpace(code)]
	return reg, found
}

func (r *Reference) Len() int {
	return len(r.codes)
}

// Codes returns the known country codes in sorted order.
func (r *Reference) Codes() []string {
	return append([]string(nil), r.codes...)
}
