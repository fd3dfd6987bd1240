package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Aggregate is the result of grouping a table and averaging one metric.
type Aggregate struct {
	Keys  []string
	Value string
	Rows  []AggregateRow
}

// AggregateRow holds one observed combination of key values. Count is the
// number of non-null metric values behind Mean; Mean is NaN when Count is 0.
type AggregateRow struct {
	Key   []string
	Mean  float64
	Count int
}

// Mean groups t by keys and averages metric within each group, storing the
// result under the column name value.
//
// Rows with a null key are left out, so a group exists only for key values
// actually observed. Key cells are trimmed. Null metric cells are skipped;
// any other cell that is not a finite number is an error.
func Mean(t *Table, keys []string, metric, value string) (*Aggregate, error) {
	keyIdx := make([]int, len(keys))
	for i, k := range keys {
		c, err := t.Index(k)
		if err != nil {
			return nil, err
		}
		keyIdx[i] = c
	}
	metricIdx, err := t.Index(metric)
	if err != nil {
		return nil, err
	}

	type group struct {
		key []string
		sum float64
		n   int
	}
	groups := make(map[string]*group)

rows:
	for i := range t.Rows {
		key := make([]string, len(keyIdx))
		for j, c := range keyIdx {
			v := t.Cell(i, c)
			if IsNull(v) {
				continue rows
			}
			key[j] = strings.TrimSpace(v)
		}

		id := strings.Join(key, "\x00")
		g, found := groups[id]
		if !found {
			g = &group{key: key}
			groups[id] = g
		}

		v := t.Cell(i, metricIdx)
		if IsNull(v) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("%w: column %q, row %d: %q", ErrNonNumeric, metric, i+1, v)
		}
		g.sum += f
		g.n++
	}

	agg := &Aggregate{
		Keys:  append([]string(nil), keys...),
		Value: value,
		Rows:  make([]AggregateRow, 0, len(groups)),
	}
	for _, g := range groups {
		mean := math.NaN()
		if g.n > 0 {
			mean = g.sum / float64(g.n)
		}
		agg.Rows = append(agg.Rows, AggregateRow{Key: g.key, Mean: mean, Count: g.n})
	}
	sort.Slice(agg.Rows, func(i, j int) bool {
		return compareKeys(agg.Rows[i].Key, agg.Rows[j].Key) < 0
	})
	return agg, nil
}

func (a *Aggregate) Len() int {
	return len(a.Rows)
}

// KeyIndex returns the position of a grouping key within AggregateRow.Key.
func (a *Aggregate) KeyIndex(key string) (int, error) {
	for i, k := range a.Keys {
		if k == key {
			return i, nil
		}
	}
	return -1, &ColumnError{Column: key, Available: a.Keys}
}

// Means returns the mean of every row, in row order.
func (a *Aggregate) Means() []float64 {
	out := make([]float64, len(a.Rows))
	for i, r := range a.Rows {
		out[i] = r.Mean
	}
	return out
}

// Above returns the rows whose mean is strictly greater than threshold.
func (a *Aggregate) Above(threshold float64) *Aggregate {
	out := &Aggregate{Keys: a.Keys, Value: a.Value}
	for _, r := range a.Rows {
		if r.Mean > threshold {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Table renders the aggregate as a table: key columns followed by the value.
func (a *Aggregate) Table() *Table {
	t := NewTable(append(append([]string(nil), a.Keys...), a.Value)...)
	for _, r := range a.Rows {
		t.Append(append(append([]string(nil), r.Key...), FormatFloat(r.Mean)))
	}
	return t
}

// FormatFloat formats a mean for a table cell. NaN becomes a null cell.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Median returns the median of the non-NaN values, or NaN if there are none.
func Median(values []float64) float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// compareKeys orders keys element by element, numerically where both
// values are numbers.
func compareKeys(a, b []string) int {
	for i := range a {
		if c := compareValues(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareValues(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
