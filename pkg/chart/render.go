package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
)

var (
	// ErrEmptyChart is returned when there is nothing to draw.
	ErrEmptyChart = errors.New("chart has no data")

	// ErrUnsupportedKind is returned for charts the PNG renderer cannot draw.
	ErrUnsupportedKind = errors.New("unsupported chart kind")
)

// RenderPNG draws a line chart as a PNG image.
func RenderPNG(c *Chart, w io.Writer, width, height int) error {
	if c.Kind != KindLine {
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, c.Kind)
	}

	var series []gochart.Series
	xr, yr := &bounds{}, &bounds{}
	for i, s := range c.Series {
		var xs, ys []float64
		for _, p := range s.Points {
			if math.IsNaN(p.Y) {
				continue
			}
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			xr.add(p.X)
			yr.add(p.Y)
		}
		if len(xs) == 0 {
			continue
		}
		col := gochart.GetDefaultColor(i)
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    3,
			},
		})
	}
	if len(series) == 0 {
		return ErrEmptyChart
	}

	xAxis := gochart.XAxis{
		Name:  c.XAxis.Title,
		Range: xr.rangeOrNil(),
		ValueFormatter: func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return strconv.Itoa(int(f))
			}
			return ""
		},
	}
	for i, v := range c.XAxis.TickValues {
		xAxis.Ticks = append(xAxis.Ticks, gochart.Tick{Value: v, Label: c.XAxis.TickText[i]})
	}

	graph := gochart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  xAxis,
		YAxis:  gochart.YAxis{Name: c.YAxis.Title, Range: yr.rangeOrNil()},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return graph.Render(gochart.PNG, w)
}

type bounds struct {
	min, max float64
	n        int
}

func (b *bounds) add(v float64) {
	if b.n == 0 || v < b.min {
		b.min = v
	}
	if b.n == 0 || v > b.max {
		b.max = v
	}
	b.n++
}

// rangeOrNil widens a degenerate range, which go-chart refuses to draw.
// Otherwise the axis range is left to go-chart.
func (b *bounds) rangeOrNil() gochart.Range {
	if b.n == 0 || b.min != b.max {
		return nil
	}
	return &gochart.ContinuousRange{Min: b.min - 1, Max: b.max + 1}
}
