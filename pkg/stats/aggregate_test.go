package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tbl := NewTable("Year", "sub-region", "m")
	tbl.Append([]string{"2000", "X", "10"})
	tbl.Append([]string{"2000", "X", "30"})
	tbl.Append([]string{"2000", "Y", "4"})
	tbl.Append([]string{"1999", "X", "1"})

	agg, err := Mean(tbl, []string{"Year", "sub-region"}, "m", "average")
	require.NoError(t, err)

	assert.Equal(t, []AggregateRow{
		{Key: []string{"1999", "X"}, Mean: 1, Count: 1},
		{Key: []string{"2000", "X"}, Mean: 20, Count: 2},
		{Key: []string{"2000", "Y"}, Mean: 4, Count: 1},
	}, agg.Rows)

	assert.Equal(t, &Table{
		Columns: []string{"Year", "sub-region", "average"},
		Rows: [][]string{
			{"1999", "X", "1"},
			{"2000", "X", "20"},
			{"2000", "Y", "4"},
		},
	}, agg.Table())
}

func TestMean_OrdersYearsNumerically(t *testing.T) {
	tbl := NewTable("Year", "m")
	for _, y := range []string{"2010", "990", "2000"} {
		tbl.Append([]string{y, "1"})
	}

	agg, err := Mean(tbl, []string{"Year"}, "m", "average")
	require.NoError(t, err)

	var years []string
	for _, r := range agg.Rows {
		years = append(years, r.Key[0])
	}
	assert.Equal(t, []string{"990", "2000", "2010"}, years)
}

func TestMean_NullKeysDropOut(t *testing.T) {
	tbl := NewTable("Year", "sub-region", "m")
	tbl.Append([]string{"2000", "X", "10"})
	tbl.Append([]string{"2000", "", "99"})
	tbl.Append([]string{"NA", "X", "99"})

	agg, err := Mean(tbl, []string{"Year", "sub-region"}, "m", "average")
	require.NoError(t, err)
	require.Equal(t, 1, agg.Len())
	assert.Equal(t, 10.0, agg.Rows[0].Mean)
}

func TestMean_NullMetrics(t *testing.T) {
	tbl := NewTable("k", "m")
	tbl.Append([]string{"a", "2"})
	tbl.Append([]string{"a", ""})
	tbl.Append([]string{"a", "4"})
	tbl.Append([]string{"b", "NA"})

	agg, err := Mean(tbl, []string{"k"}, "m", "average")
	require.NoError(t, err)
	require.Equal(t, 2, agg.Len())

	assert.Equal(t, 3.0, agg.Rows[0].Mean)
	assert.Equal(t, 2, agg.Rows[0].Count)

	assert.True(t, math.IsNaN(agg.Rows[1].Mean))
	assert.Equal(t, 0, agg.Rows[1].Count)
	assert.Equal(t, []string{"b", ""}, agg.Table().Rows[1])
}

func TestMean_NonNumeric(t *testing.T) {
	tbl := NewTable("k", "m")
	tbl.Append([]string{"a", "2"})
	tbl.Append([]string{"a", "lots"})

	_, err := Mean(tbl, []string{"k"}, "m", "average")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonNumeric))
	assert.Contains(t, err.Error(), `"lots"`)
	assert.Contains(t, err.Error(), "row 2")
}

func TestMean_MissingColumns(t *testing.T) {
	tbl := NewTable("k", "m")

	_, err := Mean(tbl, []string{"k", "Year"}, "m", "average")
	assert.True(t, errors.Is(err, ErrMissingColumn))

	_, err = Mean(tbl, []string{"k"}, "deaths", "average")
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestMean_Idempotent(t *testing.T) {
	tbl := NewTable("k", "m")
	tbl.Append([]string{"b", "1.5"})
	tbl.Append([]string{"a", "2"})
	tbl.Append([]string{"b", "2.5"})

	first, err := Mean(tbl, []string{"k"}, "m", "average")
	require.NoError(t, err)
	second, err := Mean(tbl, []string{"k"}, "m", "average")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_KeyIndex(t *testing.T) {
	agg := &Aggregate{Keys: []string{"Year", "sub-region"}}

	i, err := agg.KeyIndex("sub-region")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = agg.KeyIndex("region")
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestAggregate_Above(t *testing.T) {
	agg := &Aggregate{
		Keys:  []string{"k"},
		Value: "average",
		Rows: []AggregateRow{
			{Key: []string{"a"}, Mean: 1},
			{Key: []string{"b"}, Mean: 2},
			{Key: []string{"c"}, Mean: 3},
			{Key: []string{"d"}, Mean: math.NaN()},
		},
	}

	out := agg.Above(Median(agg.Means()))
	require.Equal(t, 1, out.Len())
	assert.Equal(t, []string{"c"}, out.Rows[0].Key)
	assert.Equal(t, 4, agg.Len())
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 5.0, Median([]float64{math.NaN(), 5}))
	assert.True(t, math.IsNaN(Median(nil)))
	assert.True(t, math.IsNaN(Median([]float64{math.NaN()})))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "20", FormatFloat(20))
	assert.Equal(t, "63.5", FormatFloat(63.5))
	assert.Equal(t, "", FormatFloat(math.NaN()))
}

func TestMean_RejectsNonFiniteValues(t *testing.T) {
	for _, v := range []string{"inf", "-Infinity", "NAN"} {
		tbl := NewTable("k", "m")
		tbl.Append([]string{"a", "1"})
		tbl.Append([]string{"a", v})

		_, err := Mean(tbl, []string{"k"}, "m", "average")
		assert.True(t, errors.Is(err, ErrNonNumeric), "%q", v)
	}
}

func TestMean_TrimsKeys(t *testing.T) {
	tbl := NewTable("Year", "m")
	tbl.Append([]string{"2000", "10"})
	tbl.Append([]string{" 2000 ", "30"})

	agg, err := Mean(tbl, []string{"Year"}, "m", "average")
	require.NoError(t, err)
	assert.Equal(t, []AggregateRow{{Key: []string{"2000"}, Mean: 20, Count: 2}}, agg.Rows)
}
