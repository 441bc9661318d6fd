package chart

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDiagramFigure(t *testing.T) {
	d := Diagram{
		Title:  "MCP Communication Flow",
		Height: 300,
		Nodes: []Node{
			{X: 0, Y: 0, Label: "AI Client", Color: Indigo},
			{X: 2, Y: 0, Label: "MCP Server", Color: Purple, Size: 40},
		},
		Arrows: []Arrow{
			{FromX: 0.3, FromY: 0, ToX: 1.7, ToY: 0, Label: "initialize"},
			{FromX: 1.7, FromY: 0, ToX: 0.3, ToY: 0},
		},
	}
	f := d.Figure()

	if len(f.Data) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(f.Data))
	}
	if f.Data[0].Marker.Size != 50 {
		t.Errorf("default node size = %d, want 50", f.Data[0].Marker.Size)
	}
	if f.Data[1].Marker.Size != 40 {
		t.Errorf("explicit node size = %d, want 40", f.Data[1].Marker.Size)
	}
	if len(f.Layout.Annotations) != 2 {
		t.Fatalf("expected 2 arrows, got %d", len(f.Layout.Annotations))
	}
	a := f.Layout.Annotations[0]
	if a.X != 1.7 || a.AX != 0.3 || a.AXRef != "x" || !a.ShowArrow {
		t.Errorf("unexpected arrow %+v", a)
	}
	if a.Text != "initialize" {
		t.Errorf("arrow label = %q", a.Text)
	}
	if f.Layout.Annotations[1].Font != nil {
		t.Error("unlabelled arrow should not carry a font")
	}
	if f.Title() != "MCP Communication Flow" {
		t.Errorf("title = %q", f.Title())
	}
}

func TestDiagramJSONHidesAxes(t *testing.T) {
	f := Diagram{Title: "x", Nodes: []Node{{Label: "A", Color: Red}}}.Figure()
	data, err := f.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	layout := decoded["layout"].(map[string]any)
	xaxis := layout["xaxis"].(map[string]any)
	for _, key := range []string{"showgrid", "zeroline", "showticklabels"} {
		v, ok := xaxis[key]
		if !ok || v != false {
			t.Errorf("xaxis.%s = %v (present=%v), want false", key, v, ok)
		}
	}
	if layout["showlegend"] != false {
		t.Errorf("showlegend = %v, want false", layout["showlegend"])
	}
}

func TestFigureJSONEscapesHTML(t *testing.T) {
	f := Diagram{Nodes: []Node{{Label: "</script><b>"}}}.Figure()
	data, err := f.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if strings.Contains(string(data), "</script>") {
		t.Errorf("figure JSON must not contain a raw closing script tag: %s", data)
	}
}

func TestBarChartSecondaryAxis(t *testing.T) {
	labels := []string{"No Cache", "Memory Cache", "Redis Cache", "CDN Cache"}
	f := BarChart{
		Title:   "Cache Performance Impact",
		YTitle:  "Hit Rate (%)",
		Y2Title: "Response Time (ms)",
		Series: []Series{
			{Name: "Hit Rate (%)", Labels: labels, Values: []float64{0, 60, 85, 95}, Color: Indigo},
			{Name: "Response Time (ms)", Labels: labels, Values: []float64{200, 50, 30, 10}, Color: Green, Secondary: true},
		},
	}.Figure()

	if f.Data[0].YAxis != "" {
		t.Errorf("primary series yaxis = %q, want empty", f.Data[0].YAxis)
	}
	if f.Data[1].YAxis != "y2" {
		t.Errorf("secondary series yaxis = %q, want y2", f.Data[1].YAxis)
	}
	if f.Layout.YAxis2 == nil || f.Layout.YAxis2.Overlaying != "y" {
		t.Fatalf("expected overlaying yaxis2, got %+v", f.Layout.YAxis2)
	}
	if got := f.Data[1].Y[0]; got != 200.0 {
		t.Errorf("first value = %v, want 200", got)
	}
}

func TestRadarFigure(t *testing.T) {
	f := Radar{
		Title: "Protocol Feature Comparison (1-10 scale)",
		Axes:  []string{"A", "B", "C"},
		Max:   10,
		Series: []Series{
			{Name: "MCP", Values: []float64{9, 9, 8}, Color: Indigo},
			{Name: "REST APIs", Values: []float64{9, 6, 3}, Color: Green},
		},
	}.Figure()

	if len(f.Data) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(f.Data))
	}
	for _, tr := range f.Data {
		if tr.Type != "scatterpolar" || tr.Fill != "toself" {
			t.Errorf("unexpected trace %+v", tr)
		}
	}
	if r := f.Layout.Polar.RadialAxis.Range; r[0] != 0 || r[1] != 10 {
		t.Errorf("range = %v, want [0 10]", r)
	}
}

func TestBarGridAxes(t *testing.T) {
	labels := []string{"MCP", "REST"}
	f := BarGrid{
		Panels: []BarPanel{
			{Title: "Latency (ms)", Series: Series{Labels: labels, Values: []float64{45, 60}}},
			{Title: "Throughput (req/s)", Series: Series{Labels: labels, Values: []float64{850, 600}}},
			{Title: "Memory Usage (MB)", Series: Series{Labels: labels, Values: []float64{120, 80}}},
		},
	}.Figure()

	wantX := []string{"x", "x2", "x3"}
	for i, tr := range f.Data {
		if tr.XAxis != wantX[i] {
			t.Errorf("trace %d xaxis = %q, want %q", i, tr.XAxis, wantX[i])
		}
	}
	if f.Layout.Grid.Columns != 3 || f.Layout.Grid.Rows != 1 {
		t.Errorf("grid = %+v", f.Layout.Grid)
	}
	if len(f.Layout.Annotations) != 3 || f.Layout.Annotations[1].Text != "Throughput (req/s)" {
		t.Errorf("subplot titles = %+v", f.Layout.Annotations)
	}
}

func TestLineStackDates(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{start, start.AddDate(0, 0, 1)}
	f := LineStack{
		Panels: []LinePanel{
			{Title: "Response Time Over Time", Name: "Response Time", Dates: dates, Values: []float64{40, 50}},
			{Title: "Throughput Over Time", Name: "Throughput", Dates: dates, Values: []float64{700, 800}},
		},
	}.Figure()

	if got := f.Data[0].X[0]; got != "2024-01-01" {
		t.Errorf("first date = %v", got)
	}
	if f.Data[1].YAxis != "y2" {
		t.Errorf("second panel yaxis = %q", f.Data[1].YAxis)
	}
	if f.Layout.Grid.Rows != 2 {
		t.Errorf("grid rows = %d", f.Layout.Grid.Rows)
	}
}
