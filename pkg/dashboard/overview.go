package dashboard

import (
	"fmt"

	"github.com/anrid/malaria-stats/pkg/chart"
	"github.com/anrid/malaria-stats/pkg/stats"
)

// OverviewName identifies the world overview in results and metrics.
const OverviewName = "overview"

// Overview averages the death rate per country over all years and keeps
// the countries above the median of those averages, for a world map.
// Rows whose code is not in the reference have no region and drop out.
func Overview(t *stats.Table, ref *stats.Reference) (*Result, error) {
	s := stats.Deaths

	joined, err := stats.JoinRegions(t, ref, s.CodeColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: join: %w", OverviewName, err)
	}

	keys := []string{stats.RegionColumn, s.CodeColumn, s.NameColumn}
	agg, err := stats.Mean(joined, keys, s.MetricColumn, "average")
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", OverviewName, err)
	}
	agg = agg.Above(stats.Median(agg.Means()))

	markers := make([]chart.GeoMarker, 0, agg.Len())
	for _, r := range agg.Rows {
		markers = append(markers, chart.GeoMarker{
			Location:   r.Key[1],
			Name:       r.Key[2],
			Value:      r.Mean,
			CustomData: []string{r.Key[2], r.Key[0]},
		})
	}

	title := "Overview: Average Malaria Deaths (per 1,000 population at risk)" +
		yearSpan(joined.Years(s.YearColumn))

	c := chart.Geo(chart.GeoOptions{
		Title: title,
		Value: "average",
		Labels: map[string]string{
			"average": "Average Malaria Deaths",
		},
		HoverFormat: chart.HoverTwoDecimals,
	}, markers)

	return &Result{
		View:      OverviewName,
		Chart:     c,
		Table:     agg.Table(),
		Aggregate: agg,
		Observations: "Some of the highest average malaria deaths are found in countries in Africa, " +
			"as seen by the more intensely coloured and larger circles on the map.",
	}, nil
}
