package chart

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Hover formats for the metric value.
const (
	HoverTwoDecimals  = ":.2f"
	HoverThousandsTwo = ":,.2f"
)

const modeMarkersLines = "markers+lines"

// LineOptions configures a line chart with one series per distinct value
// of the Color field.
type LineOptions struct {
	Title       string
	X           string
	Y           string
	Color       string
	Labels      map[string]string
	HoverFormat string
	RangeSlider bool
	// Ticks, when set, pins the x axis ticks to exactly these values.
	Ticks []int
}

// Line builds a line chart from points. Series are ordered by name and
// the points of each series by x.
func Line(opts LineOptions, points []Point) *Chart {
	c := &Chart{
		Kind:   KindLine,
		Title:  opts.Title,
		Mode:   modeMarkersLines,
		Color:  opts.Color,
		Labels: opts.Labels,
		Hover:  opts.HoverFormat,
		XAxis: &Axis{
			Field:       opts.X,
			Title:       label(opts.Labels, opts.X),
			Spikes:      true,
			RangeSlider: opts.RangeSlider,
		},
		YAxis: &Axis{
			Field:  opts.Y,
			Title:  label(opts.Labels, opts.Y),
			Spikes: true,
		},
		Series: []Series{},
	}

	if opts.Ticks != nil {
		c.XAxis.TickMode = "array"
		c.XAxis.TickValues = make([]float64, len(opts.Ticks))
		c.XAxis.TickText = make([]string, len(opts.Ticks))
		for i, t := range opts.Ticks {
			c.XAxis.TickValues[i] = float64(t)
			c.XAxis.TickText[i] = strconv.Itoa(t)
		}
	}

	bySeries := make(map[string][]Point)
	var names []string
	for _, p := range points {
		if _, found := bySeries[p.Series]; !found {
			names = append(names, p.Series)
		}
		p.Hover = hoverText(opts, p)
		bySeries[p.Series] = append(bySeries[p.Series], p)
	}
	sort.Strings(names)

	for _, name := range names {
		pts := bySeries[name]
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		c.Series = append(c.Series, Series{Name: name, Points: pts})
	}
	return c
}

func hoverText(opts LineOptions, p Point) string {
	lines := []string{
		label(opts.Labels, opts.Color) + "=" + p.Series,
		label(opts.Labels, opts.X) + "=" + strconv.FormatFloat(p.X, 'f', -1, 64),
		label(opts.Labels, opts.Y) + "=" + FormatValue(p.Y, opts.HoverFormat),
	}
	return strings.Join(lines, "<br>")
}

// GeoOptions configures a bubble map keyed by ISO-3 country codes.
type GeoOptions struct {
	Title       string
	Value       string
	Labels      map[string]string
	HoverFormat string
}

// Geo builds a scatter_geo chart. Bubble size and color both follow the
// marker value.
func Geo(opts GeoOptions, markers []GeoMarker) *Chart {
	c := &Chart{
		Kind:   KindScatterGeo,
		Title:  opts.Title,
		Labels: opts.Labels,
		Hover:  opts.HoverFormat,
		Series: []Series{},
		Geo: &GeoLayout{
			LocationMode: "ISO-3",
			Projection:   "natural earth",
			SizeField:    opts.Value,
			ColorField:   opts.Value,
		},
		Margin:  &Margin{Left: 0, Right: 0, Top: 70, Bottom: 0},
		Markers: make([]GeoMarker, 0, len(markers)),
	}
	for _, m := range markers {
		m.Hover = "<b>" + m.Name + "</b><br>" +
			label(opts.Labels, opts.Value) + "=" + FormatValue(m.Value, opts.HoverFormat)
		c.Markers = append(c.Markers, m)
	}
	return c
}

// FormatValue formats v the way a hover format asks for.
func FormatValue(v float64, format string) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	switch format {
	case HoverTwoDecimals:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case HoverThousandsTwo:
		return message.NewPrinter(language.English).Sprintf("%.2f", v)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

func label(labels map[string]string, field string) string {
	if l, found := labels[field]; found {
		return l
	}
	return field
}
