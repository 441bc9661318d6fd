package chart

import "encoding/json"

// Figure is a plotly.js figure: a list of traces plus a layout. It marshals
// to the {"data": [...], "layout": {...}} shape Plotly.newPlot expects.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// JSON returns the figure encoded for embedding in a page. encoding/json
// escapes <, > and & so the result is safe inside a script element.
func (f Figure) JSON() ([]byte, error) {
	return json.Marshal(f)
}

// Title returns the layout title text.
func (f Figure) Title() string {
	if f.Layout.Title == nil {
		return ""
	}
	return f.Layout.Title.Text
}

// Trace is the union of the trace attributes used by the tutorials.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	X            []any     `json:"x,omitempty"`
	Y            []any     `json:"y,omitempty"`
	R            []float64 `json:"r,omitempty"`
	Theta        []string  `json:"theta,omitempty"`
	Mode         string    `json:"mode,omitempty"`
	Fill         string    `json:"fill,omitempty"`
	Text         []string  `json:"text,omitempty"`
	TextPosition string    `json:"textposition,omitempty"`
	TextFont     *Font     `json:"textfont,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	Line         *Line     `json:"line,omitempty"`
	XAxis        string    `json:"xaxis,omitempty"`
	YAxis        string    `json:"yaxis,omitempty"`
	ShowLegend   *bool     `json:"showlegend,omitempty"`
}

// Marker styles scatter points and bars.
type Marker struct {
	Size  int `json:"size,omitempty"`
	Color any `json:"color,omitempty"`
}

// Line styles a line trace.
type Line struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

// Font styles text.
type Font struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// Text is a plotly title object.
type Text struct {
	Text string `json:"text"`
}

// Axis configures a cartesian axis.
type Axis struct {
	Title          *Text     `json:"title,omitempty"`
	ShowGrid       *bool     `json:"showgrid,omitempty"`
	ZeroLine       *bool     `json:"zeroline,omitempty"`
	ShowTickLabels *bool     `json:"showticklabels,omitempty"`
	Side           string    `json:"side,omitempty"`
	Overlaying     string    `json:"overlaying,omitempty"`
	Range          []float64 `json:"range,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Annotation is an arrow and/or text placed on the plot.
type Annotation struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	AX         float64 `json:"ax"`
	AY         float64 `json:"ay"`
	XRef       string  `json:"xref,omitempty"`
	YRef       string  `json:"yref,omitempty"`
	AXRef      string  `json:"axref,omitempty"`
	AYRef      string  `json:"ayref,omitempty"`
	XAnchor    string  `json:"xanchor,omitempty"`
	YAnchor    string  `json:"yanchor,omitempty"`
	ShowArrow  bool    `json:"showarrow"`
	ArrowHead  int     `json:"arrowhead,omitempty"`
	ArrowSize  float64 `json:"arrowsize,omitempty"`
	ArrowWidth int     `json:"arrowwidth,omitempty"`
	ArrowColor string  `json:"arrowcolor,omitempty"`
	Text       string  `json:"text,omitempty"`
	Font       *Font   `json:"font,omitempty"`
}

// Grid lays out subplots.
type Grid struct {
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Pattern string `json:"pattern"`
}

// Polar configures a radar chart.
type Polar struct {
	RadialAxis RadialAxis `json:"radialaxis"`
}

// RadialAxis is the polar value axis.
type RadialAxis struct {
	Visible bool      `json:"visible"`
	Range   []float64 `json:"range"`
}

// Layout is the figure layout.
type Layout struct {
	Title       *Text        `json:"title,omitempty"`
	Height      int          `json:"height,omitempty"`
	ShowLegend  *bool        `json:"showlegend,omitempty"`
	Margin      *Margin      `json:"margin,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	YAxis2      *Axis        `json:"yaxis2,omitempty"`
	Polar       *Polar       `json:"polar,omitempty"`
	Grid        *Grid        `json:"grid,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func boolp(b bool) *bool { return &b }

func title(s string) *Text {
	if s == "" {
		return nil
	}
	return &Text{Text: s}
}

// hiddenAxis is the bare axis used by node diagrams.
func hiddenAxis() *Axis {
	return &Axis{ShowGrid: boolp(false), ZeroLine: boolp(false), ShowTickLabels: boolp(false)}
}

// compactMargin is the margin the diagrams use.
var compactMargin = Margin{L: 20, R: 20, T: 40, B: 20}
