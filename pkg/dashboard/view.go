// Package dashboard turns subject tables into aggregate tables and chart
// descriptions, one View per panel of the malaria dashboard.
package dashboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/anrid/malaria-stats/pkg/chart"
	"github.com/anrid/malaria-stats/pkg/stats"
)

// ErrUnknownView is returned when a view name is not registered.
var ErrUnknownView = errors.New("unknown view")

// TickStrategy selects how x axis ticks are placed.
type TickStrategy int

const (
	// TicksAuto leaves tick placement to the renderer.
	TicksAuto TickStrategy = iota
	// TicksContiguousYears pins one tick per year from the first to the last
	// observed year, including years without data.
	TicksContiguousYears
)

// Filter restricts joined rows to one value of a region column before
// aggregating.
type Filter struct {
	Column  string   `json:"column"`
	Default string   `json:"default"`
	Choices []string `json:"choices"`
}

// View is the configuration of one dashboard panel.
type View struct {
	Name    string
	Heading string
	Subject stats.Subject
	// Keys are the grouping columns, in output column order.
	Keys []string
	// Series is the key whose values become chart series.
	Series      string
	Value       string
	FillMissing bool
	Filter      *Filter
	Ticks       TickStrategy
	RangeSlider bool
	Labels      map[string]string
	HoverFormat string
	Title       func(region string, years string) string
	// Observations describe what the bundled sample shows.
	Observations string
}

// Result is what a view hands to the presentation layer.
type Result struct {
	View         string           `json:"view"`
	Region       string           `json:"region,omitempty"`
	Chart        *chart.Chart     `json:"chart"`
	Table        *stats.Table     `json:"table"`
	Aggregate    *stats.Aggregate `json:"-"`
	Observations string           `json:"observations,omitempty"`
}

// Run joins t to the reference, optionally fills and filters it, averages
// the subject metric and describes the chart. An empty region selects the
// filter default.
func (v View) Run(t *stats.Table, ref *stats.Reference, region string) (*Result, error) {
	joined, err := stats.JoinRegions(t, ref, v.Subject.CodeColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: join: %w", v.Name, err)
	}

	if v.FillMissing {
		joined, err = stats.FillMissing(joined, stats.RegionColumns, stats.Others)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.Name, err)
		}
	}

	if v.Filter != nil {
		if region == "" {
			region = v.Filter.Default
		}
		joined, err = stats.FilterEqual(joined, v.Filter.Column, region)
		if err != nil {
			return nil, fmt.Errorf("%s: filter: %w", v.Name, err)
		}
	} else {
		region = ""
	}

	agg, err := stats.Mean(joined, v.Keys, v.Subject.MetricColumn, v.Value)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", v.Name, err)
	}

	c, err := v.chart(agg, region)
	if err != nil {
		return nil, fmt.Errorf("%s: chart: %w", v.Name, err)
	}

	return &Result{
		View:      v.Name,
		Region:    region,
		Chart:     c,
		Table:     agg.Table(),
		Aggregate: agg,
	}, nil
}

func (v View) chart(agg *stats.Aggregate, region string) (*chart.Chart, error) {
	yearIdx, err := agg.KeyIndex(v.Subject.YearColumn)
	if err != nil {
		return nil, err
	}
	seriesIdx, err := agg.KeyIndex(v.Series)
	if err != nil {
		return nil, err
	}

	points := make([]chart.Point, 0, agg.Len())
	first, last, found := 0, 0, false
	for _, r := range agg.Rows {
		year, err := stats.ParseYear(r.Key[yearIdx])
		if err != nil {
			return nil, err
		}
		if !found || year < first {
			first = year
		}
		if !found || year > last {
			last = year
		}
		found = true

		// A group whose metric was null throughout has no value to plot.
		if math.IsNaN(r.Mean) {
			continue
		}
		points = append(points, chart.Point{
			Series: r.Key[seriesIdx],
			X:      float64(year),
			Y:      r.Mean,
		})
	}

	opts := chart.LineOptions{
		X:           v.Subject.YearColumn,
		Y:           v.Value,
		Color:       v.Series,
		Labels:      v.Labels,
		HoverFormat: v.HoverFormat,
		RangeSlider: v.RangeSlider,
		Title:       v.Title(region, yearSpan(first, last, found)),
	}
	if v.Ticks == TicksContiguousYears && found {
		opts.Ticks = contiguousYears(first, last)
	}
	return chart.Line(opts, points), nil
}

// yearSpan renders the " from Years A to B" part of a title.
func yearSpan(first, last int, found bool) string {
	if !found {
		return ""
	}
	return fmt.Sprintf(" from Years %d to %d", first, last)
}

func contiguousYears(first, last int) []int {
	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years
}
