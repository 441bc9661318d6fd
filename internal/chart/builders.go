package chart

import (
	"fmt"
	"time"
)

// Palette colors shared by the tutorials.
const (
	Indigo  = "#667eea"
	Purple  = "#764ba2"
	Green   = "#28a745"
	Coral   = "#ff6b6b"
	Amber   = "#ffc107"
	Violet  = "#6f42c1"
	Blue    = "#3498db"
	Red     = "#e74c3c"
	Emerald = "#2ecc71"
	Orange  = "#f39c12"
	Cloud   = "#ecf0f1"
	Gray    = "#666"
)

// Node is a labelled marker in a diagram.
type Node struct {
	X, Y  float64
	Label string
	Color string
	// Size is the marker diameter; zero uses the diagram default.
	Size int
}

// Arrow connects two diagram points. Label is drawn at the head when set.
type Arrow struct {
	FromX, FromY float64
	ToX, ToY     float64
	Label        string
}

// Diagram is a box-and-arrow picture drawn with scatter markers and arrow
// annotations on hidden axes.
type Diagram struct {
	Title      string
	Height     int
	NodeSize   int
	FontSize   int
	ArrowWidth int
	Nodes      []Node
	Arrows     []Arrow
}

// Figure builds the plotly figure for the diagram.
func (d Diagram) Figure() Figure {
	size := d.NodeSize
	if size == 0 {
		size = 50
	}
	fontSize := d.FontSize
	if fontSize == 0 {
		fontSize = 12
	}

	f := Figure{
		Layout: Layout{
			Title:      title(d.Title),
			Height:     d.Height,
			ShowLegend: boolp(false),
			Margin:     &compactMargin,
			XAxis:      hiddenAxis(),
			YAxis:      hiddenAxis(),
		},
	}

	for _, n := range d.Nodes {
		s := n.Size
		if s == 0 {
			s = size
		}
		f.Data = append(f.Data, Trace{
			Type:         "scatter",
			Name:         n.Label,
			X:            []any{n.X},
			Y:            []any{n.Y},
			Mode:         "markers+text",
			Marker:       &Marker{Size: s, Color: n.Color},
			Text:         []string{n.Label},
			TextPosition: "middle center",
			TextFont:     &Font{Color: "white", Size: fontSize},
			ShowLegend:   boolp(false),
		})
	}

	for _, a := range d.Arrows {
		ann := Annotation{
			X: a.ToX, Y: a.ToY,
			AX: a.FromX, AY: a.FromY,
			XRef: "x", YRef: "y",
			AXRef: "x", AYRef: "y",
			ShowArrow:  true,
			ArrowHead:  2,
			ArrowSize:  1,
			ArrowWidth: d.ArrowWidth,
			ArrowColor: Gray,
		}
		if a.Label != "" {
			ann.Text = a.Label
			ann.Font = &Font{Color: Gray, Size: 10}
		}
		f.Layout.Annotations = append(f.Layout.Annotations, ann)
	}
	return f
}

// Series is one named set of values.
type Series struct {
	Name   string
	Labels []string
	Values []float64
	Color  string
	// Secondary plots the series against the right-hand y axis.
	Secondary bool
}

func labelsToAny(labels []string) []any {
	out := make([]any, len(labels))
	for i, l := range labels {
		out[i] = l
	}
	return out
}

func valuesToAny(values []float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// BarChart is a grouped bar chart with an optional second y axis.
type BarChart struct {
	Title   string
	XTitle  string
	YTitle  string
	Y2Title string
	Height  int
	Series  []Series
}

// Figure builds the plotly figure for the bar chart.
func (b BarChart) Figure() Figure {
	f := Figure{Layout: Layout{Title: title(b.Title), Height: b.Height}}
	if b.XTitle != "" {
		f.Layout.XAxis = &Axis{Title: title(b.XTitle)}
	}
	if b.YTitle != "" {
		f.Layout.YAxis = &Axis{Title: title(b.YTitle), Side: "left"}
	}
	for _, s := range b.Series {
		tr := Trace{
			Type:   "bar",
			Name:   s.Name,
			X:      labelsToAny(s.Labels),
			Y:      valuesToAny(s.Values),
			Marker: &Marker{Color: s.Color},
		}
		if s.Secondary {
			tr.YAxis = "y2"
			f.Layout.YAxis2 = &Axis{Title: title(b.Y2Title), Side: "right", Overlaying: "y"}
		}
		f.Data = append(f.Data, tr)
	}
	return f
}

// Radar compares several series over the same axes on a fixed scale.
type Radar struct {
	Title  string
	Axes   []string
	Max    float64
	Series []Series
}

// Figure builds the plotly figure for the radar chart.
func (r Radar) Figure() Figure {
	f := Figure{
		Layout: Layout{
			Title:      title(r.Title),
			ShowLegend: boolp(true),
			Polar:      &Polar{RadialAxis: RadialAxis{Visible: true, Range: []float64{0, r.Max}}},
		},
	}
	for _, s := range r.Series {
		f.Data = append(f.Data, Trace{
			Type:  "scatterpolar",
			Name:  s.Name,
			R:     s.Values,
			Theta: r.Axes,
			Fill:  "toself",
			Line:  &Line{Color: s.Color},
		})
	}
	return f
}

// BarPanel is one subplot of a BarGrid.
type BarPanel struct {
	Title  string
	Series Series
}

// BarGrid places single-series bar charts side by side.
type BarGrid struct {
	Title  string
	Height int
	Panels []BarPanel
}

// Figure builds the plotly figure for the grid.
func (g BarGrid) Figure() Figure {
	n := len(g.Panels)
	f := Figure{
		Layout: Layout{
			Title:      title(g.Title),
			Height:     g.Height,
			ShowLegend: boolp(false),
			Grid:       &Grid{Rows: 1, Columns: n, Pattern: "independent"},
		},
	}
	for i, p := range g.Panels {
		f.Data = append(f.Data, Trace{
			Type:   "bar",
			Name:   p.Series.Name,
			X:      labelsToAny(p.Series.Labels),
			Y:      valuesToAny(p.Series.Values),
			Marker: &Marker{Color: p.Series.Color},
			XAxis:  axisRef("x", i),
			YAxis:  axisRef("y", i),
		})
		f.Layout.Annotations = append(f.Layout.Annotations, subplotTitle(p.Title, (float64(i)+0.5)/float64(n), 1.0))
	}
	return f
}

// LinePanel is one row of a LineStack.
type LinePanel struct {
	Title  string
	Name   string
	Dates  []time.Time
	Values []float64
	Color  string
}

// LineStack stacks date series vertically, one subplot per row.
type LineStack struct {
	Title  string
	Height int
	Panels []LinePanel
}

// Figure builds the plotly figure for the stack.
func (s LineStack) Figure() Figure {
	n := len(s.Panels)
	f := Figure{
		Layout: Layout{
			Title:      title(s.Title),
			Height:     s.Height,
			ShowLegend: boolp(true),
			Grid:       &Grid{Rows: n, Columns: 1, Pattern: "independent"},
		},
	}
	for i, p := range s.Panels {
		x := make([]any, len(p.Dates))
		for j, d := range p.Dates {
			x[j] = d.Format("2006-01-02")
		}
		f.Data = append(f.Data, Trace{
			Type:  "scatter",
			Mode:  "lines",
			Name:  p.Name,
			X:     x,
			Y:     valuesToAny(p.Values),
			Line:  &Line{Color: p.Color},
			XAxis: axisRef("x", i),
			YAxis: axisRef("y", i),
		})
		f.Layout.Annotations = append(f.Layout.Annotations, subplotTitle(p.Title, 0.5, 1.0-float64(i)/float64(n)))
	}
	return f
}

// axisRef returns the plotly axis id for subplot i ("x", "x2", ...).
func axisRef(prefix string, i int) string {
	if i == 0 {
		return prefix
	}
	return fmt.Sprintf("%s%d", prefix, i+1)
}

func subplotTitle(text string, x, y float64) Annotation {
	return Annotation{
		X: x, Y: y,
		XRef: "paper", YRef: "paper",
		XAnchor: "center", YAnchor: "bottom",
		Text: text,
		Font: &Font{Size: 14},
	}
}
