package chart

// Kinds of chart a Chart can describe.
const (
	KindLine       = "line"
	KindScatterGeo = "scatter_geo"
)

// Chart is a declarative chart description. It says what to draw, not how;
// any plotting front-end can render it.
type Chart struct {
	Kind   string            `json:"kind"`
	Title  string            `json:"title"`
	Mode   string            `json:"mode,omitempty"`
	XAxis  *Axis             `json:"xAxis,omitempty"`
	YAxis  *Axis             `json:"yAxis,omitempty"`
	Color  string            `json:"color,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
	Hover  string            `json:"hover,omitempty"`
	Series []Series          `json:"series"`

	Geo     *GeoLayout  `json:"geo,omitempty"`
	Markers []GeoMarker `json:"markers,omitempty"`
	Margin  *Margin     `json:"margin,omitempty"`
}

// Axis describes one axis. Spikes are the crosshair guides drawn from a
// hovered point to the axis.
type Axis struct {
	Field       string    `json:"field"`
	Title       string    `json:"title"`
	Spikes      bool      `json:"spikes"`
	RangeSlider bool      `json:"rangeSlider,omitempty"`
	TickMode    string    `json:"tickMode,omitempty"`
	TickValues  []float64 `json:"tickValues,omitempty"`
	TickText    []string  `json:"tickText,omitempty"`
}

// Series is one line of a line chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Point is a single observation. Series names which line it belongs to.
type Point struct {
	Series string  `json:"-"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Hover  string  `json:"hover"`
}

// GeoLayout holds the map settings of a scatter_geo chart.
type GeoLayout struct {
	LocationMode string `json:"locationMode"`
	Projection   string `json:"projection"`
	SizeField    string `json:"sizeField"`
	ColorField   string `json:"colorField"`
}

// GeoMarker is one bubble on a map.
type GeoMarker struct {
	Location   string   `json:"location"`
	Name       string   `json:"name"`
	Value      float64  `json:"value"`
	CustomData []string `json:"customData,omitempty"`
	Hover      string   `json:"hover"`
}

type Margin struct {
	Left   int `json:"l"`
	Right  int `json:"r"`
	Top    int `json:"t"`
	Bottom int `json:"b"`
}
