package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrid/malaria-stats/pkg/chart"
	"github.com/anrid/malaria-stats/pkg/stats"
	"github.com/anrid/malaria-stats/pkg/testutil"
)

func readTable(t *testing.T, name, content string) *stats.Table {
	t.Helper()
	tbl, err := stats.ReadTable(&stats.File{Name: name, Content: []byte(content)})
	require.NoError(t, err)
	return tbl
}

func fixtureReference(t *testing.T) *stats.Reference {
	t.Helper()
	ref, err := stats.ReferenceFromTable(readTable(t, "continents2.csv", testutil.Continents))
	require.NoError(t, err)
	return ref
}

func seriesNames(c *chart.Chart) []string {
	var names []string
	for _, s := range c.Series {
		names = append(names, s.Name)
	}
	return names
}

func TestDeathsBySubRegion(t *testing.T) {
	res, err := DeathsBySubRegion.Run(readTable(t, "deaths.csv", testutil.Deaths), fixtureReference(t), "")
	require.NoError(t, err)

	assert.Equal(t, "deaths-by-subregion", res.View)
	assert.Equal(t, "", res.Region)
	assert.Equal(t, []string{"Year", "sub-region", "average"}, res.Table.Columns)
	require.Equal(t, 8, res.Table.Len())
	assert.Equal(t, []string{"2000", "Latin America and the Caribbean", "2"}, res.Table.Rows[0])
	assert.Equal(t, []string{"2001", "Western Europe", "0"}, res.Table.Rows[7])
	assert.InDelta(t, 190.0/3, res.Aggregate.Rows[2].Mean, 1e-9)

	c := res.Chart
	assert.Equal(t, chart.KindLine, c.Kind)
	assert.Equal(t, "Average Malaria Deaths by Region from Years 2000 to 2001", c.Title)
	assert.Equal(t, "markers+lines", c.Mode)
	assert.True(t, c.XAxis.RangeSlider)
	assert.True(t, c.XAxis.Spikes)
	assert.True(t, c.YAxis.Spikes)
	assert.Equal(t, "Average Malaria Deaths (per 1,000 population at risk)", c.YAxis.Title)
	assert.Empty(t, c.XAxis.TickValues)
	assert.Equal(t, []string{
		"Latin America and the Caribbean",
		"Melanesia",
		"Sub-Saharan Africa",
		"Western Europe",
	}, seriesNames(c))

	ssa := c.Series[2]
	require.Len(t, ssa.Points, 2)
	assert.Equal(t, 2000.0, ssa.Points[0].X)
	assert.Equal(t, "Sub-region=Sub-Saharan Africa<br>Year=2000<br>"+
		"Average Malaria Deaths (per 1,000 population at risk)=63.33", ssa.Points[0].Hover)
}

// Rows whose code is missing from the reference keep a null sub-region and
// are not averaged into any series, not even an "Others" one.
func TestDeathsBySubRegion_UnmatchedCodesDropOut(t *testing.T) {
	res, err := DeathsBySubRegion.Run(readTable(t, "deaths.csv", testutil.Deaths), fixtureReference(t), "")
	require.NoError(t, err)

	assert.NotContains(t, seriesNames(res.Chart), stats.Others)
	for _, r := range res.Table.Rows {
		assert.NotEqual(t, stats.Others, r[1])
	}
}

func TestDeathsBySubRegion_IgnoresRegion(t *testing.T) {
	res, err := DeathsBySubRegion.Run(readTable(t, "deaths.csv", testutil.Deaths), fixtureReference(t), "Melanesia")
	require.NoError(t, err)
	assert.Equal(t, "", res.Region)
	assert.Equal(t, 8, res.Table.Len())
}

func TestIncidenceByIntermediateRegion(t *testing.T) {
	res, err := IncidenceByIntermediateRegion.Run(readTable(t, "inc.csv", testutil.Incidence), fixtureReference(t), "")
	require.NoError(t, err)

	assert.Equal(t, "Sub-Saharan Africa", res.Region)
	assert.Equal(t, &stats.Table{
		Columns: []string{"intermediate-region", "Year", "incidence"},
		Rows: [][]string{
			{"Eastern Africa", "2000", "150"},
			{"Eastern Africa", "2005", ""},
			{"Western Africa", "2000", "300"},
			{"Western Africa", "2005", "200"},
		},
	}, res.Table)

	c := res.Chart
	assert.Equal(t, "Incidence of Malaria by Region in Sub-Saharan Africa from Years 2000 to 2005", c.Title)
	assert.False(t, c.XAxis.RangeSlider)
	assert.Equal(t, []string{"Eastern Africa", "Western Africa"}, seriesNames(c))
	require.Len(t, c.Series[0].Points, 1, "a group without values has nothing to plot")
	require.Len(t, c.Series[1].Points, 2)
	assert.Equal(t, "intermediate-region=Western Africa<br>Year=2005<br>"+
		"Average Incidence of malaria (per 1,000 population at risk)=200.00", c.Series[1].Points[1].Hover)

	_, err = json.Marshal(res)
	assert.NoError(t, err)
}

func TestIncidenceByIntermediateRegion_OtherRegion(t *testing.T) {
	res, err := IncidenceByIntermediateRegion.Run(
		readTable(t, "inc.csv", testutil.Incidence), fixtureReference(t), "Latin America and the Caribbean")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"South America", "2000", "20"}}, res.Table.Rows)
	assert.Equal(t, "Incidence of Malaria by Region in Latin America and the Caribbean from Years 2000 to 2000", res.Chart.Title)
}

func TestIncidenceByIntermediateRegion_EmptyRegion(t *testing.T) {
	res, err := IncidenceByIntermediateRegion.Run(readTable(t, "inc.csv", testutil.Incidence), fixtureReference(t), "Melanesia")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Table.Len())
	assert.Equal(t, []string{"intermediate-region", "Year", "incidence"}, res.Table.Columns)
	assert.Equal(t, "Incidence of Malaria by Region in Melanesia", res.Chart.Title)
	assert.NotNil(t, res.Chart.Series)
	assert.Empty(t, res.Chart.Series)

	data, err := json.Marshal(res.Chart)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"series":[]`)
}

func TestIncidence_UnknownCodesFillOthers(t *testing.T) {
	ref, err := stats.NewReference([]stats.Region{
		{Code: "AAA", Region: "R", SubRegion: "Sub-Saharan Africa", IntermediateRegion: "X"},
	})
	require.NoError(t, err)

	tbl := stats.NewTable(stats.Incidence.NameColumn, stats.Incidence.CodeColumn, stats.Incidence.YearColumn, stats.Incidence.MetricColumn)
	tbl.Append([]string{"A", "AAA", "2000", "10"})
	tbl.Append([]string{"A", "AAA", "2000", "30"})
	tbl.Append([]string{"Z", "ZZZ", "2000", "5"})

	res, err := IncidenceByIntermediateRegion.Run(tbl, ref, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"X", "2000", "20"}}, res.Table.Rows)

	res, err = IncidenceByIntermediateRegion.Run(tbl, ref, stats.Others)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Others", "2000", "5"}}, res.Table.Rows)
}

func TestDeathsByAgeGroup(t *testing.T) {
	res, err := DeathsByAgeGroup.Run(readTable(t, "age.csv", testutil.DeathsByAge), fixtureReference(t), "")
	require.NoError(t, err)

	assert.Equal(t, "Western Africa", res.Region)
	assert.Equal(t, [][]string{
		{"2000", "5-14", "200"},
		{"2000", "Under 5", "2000"},
		{"2002", "5-14", "50"},
		{"2002", "Under 5", "2000.5"},
	}, res.Table.Rows)

	c := res.Chart
	assert.Equal(t, "array", c.XAxis.TickMode)
	assert.Equal(t, []float64{2000, 2001, 2002}, c.XAxis.TickValues)
	assert.Equal(t, []string{"2000", "2001", "2002"}, c.XAxis.TickText)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	require.NoError(t, enc.Encode(c))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "deaths_by_age_group_chart", buf.Bytes())
}

func TestDeathsByAgeGroup_Others(t *testing.T) {
	res, err := DeathsByAgeGroup.Run(readTable(t, "age.csv", testutil.DeathsByAge), fixtureReference(t), stats.Others)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"2000", "Under 5", "1"}}, res.Table.Rows)
	assert.Equal(t, []float64{2000}, res.Chart.XAxis.TickValues)
}

func TestDeathsByAgeGroup_EmptyRegionHasNoTicks(t *testing.T) {
	res, err := DeathsByAgeGroup.Run(readTable(t, "age.csv", testutil.DeathsByAge), fixtureReference(t), "Southern Africa")
	require.NoError(t, err)

	assert.Equal(t, "Average Malaria Deaths by Age Group in Southern Africa", res.Chart.Title)
	assert.Empty(t, res.Chart.XAxis.TickValues)
	assert.Empty(t, res.Chart.Series)
}

func TestRun_MissingColumn(t *testing.T) {
	deaths := readTable(t, "deaths.csv", testutil.Deaths)
	ref := fixtureReference(t)

	_, err := IncidenceByIntermediateRegion.Run(deaths, ref, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, stats.ErrMissingColumn))
	assert.Contains(t, err.Error(), "Incidence of malaria")

	_, err = DeathsByAgeGroup.Run(deaths, ref, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, stats.ErrMissingColumn))
	assert.Contains(t, err.Error(), `"code"`)
}

func TestRun_NonNumeric(t *testing.T) {
	tbl := readTable(t, "deaths.csv", testutil.Deaths)
	tbl.Rows[0][3] = "many"

	_, err := DeathsBySubRegion.Run(tbl, fixtureReference(t), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, stats.ErrNonNumeric))
}

func TestRun_DoesNotModifyInput(t *testing.T) {
	tbl := readTable(t, "inc.csv", testutil.Incidence)
	before := tbl.Clone()

	_, err := IncidenceByIntermediateRegion.Run(tbl, fixtureReference(t), "")
	require.NoError(t, err)
	assert.Equal(t, before, tbl)
}

func TestLookup(t *testing.T) {
	v, err := Lookup("deaths-by-age-group")
	require.NoError(t, err)
	assert.Equal(t, stats.DeathsByAge.Name, v.Subject.Name)

	_, err = Lookup("births")
	assert.True(t, errors.Is(err, ErrUnknownView))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"deaths-by-age-group",
		"deaths-by-subregion",
		"incidence-by-intermediate-region",
	}, Names())
}

func TestRun_FloatFormattedYears(t *testing.T) {
	tbl := readTable(t, "deaths.csv", testutil.Deaths)
	for _, r := range tbl.Rows {
		r[2] = r[2] + ".0"
	}

	res, err := DeathsBySubRegion.Run(tbl, fixtureReference(t), "")
	require.NoError(t, err)
	assert.Equal(t, "Average Malaria Deaths by Region from Years 2000 to 2001", res.Chart.Title)
	assert.Equal(t, 2000.0, res.Chart.Series[0].Points[0].X)

	tbl.Rows[0][2] = "2000.5"
	_, err = DeathsBySubRegion.Run(tbl, fixtureReference(t), "")
	assert.True(t, errors.Is(err, stats.ErrNonNumeric))
}
