package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ziadkadry99/deepdive/internal/chart"
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/demo"
	"github.com/ziadkadry99/deepdive/internal/guides/agentguide"
	"github.com/ziadkadry99/deepdive/internal/session"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func renderSection(t *testing.T, r *Renderer, blocks ...content.Block) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Section(&buf, content.Section{Header: "Header", Blocks: blocks}); err != nil {
		t.Fatalf("Section: %v", err)
	}
	return buf.String()
}

type row struct{ Name, Value string }

func (r row) Cells() []string { return []string{r.Name, r.Value} }

func TestTableRendersRowsInOrder(t *testing.T) {
	out := renderSection(t, newRenderer(t),
		content.NewTable([]string{"Name", "Value"}, []row{{"first", "1"}, {"second", "<2>"}}))

	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	if first < 0 || second < 0 || first > second {
		t.Errorf("rows missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "&lt;2&gt;") {
		t.Error("cell text should be escaped")
	}
	if !strings.Contains(out, `<h2 class="section-header">Header</h2>`) {
		t.Error("missing section header")
	}
}

func TestHeadingStyles(t *testing.T) {
	out := renderSection(t, newRenderer(t),
		content.Heading{Text: "Step 1", Style: content.HeadingStep},
		content.Heading{Text: "Sub", Level: 4},
		content.Heading{Text: "Plain", Level: 3},
	)
	for _, want := range []string{`<h3 class="step-header">Step 1</h3>`, "<h4>Sub</h4>", "<h3>Plain</h3>"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}

func TestMarkdownAndLists(t *testing.T) {
	out := renderSection(t, newRenderer(t),
		content.Markdown{Source: "**bold** text"},
		content.List{Kind: content.Numbered, Items: []string{"`code` item"}},
		content.List{Kind: content.Checklist, Items: []string{"done"}},
	)
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Error("markdown not rendered")
	}
	if !strings.Contains(out, "<ol><li><code>code</code> item</li></ol>") {
		t.Errorf("inline markdown list not rendered:\n%s", out)
	}
	if !strings.Contains(out, `<ul class="checklist"><li>✅ done</li></ul>`) {
		t.Errorf("checklist not rendered:\n%s", out)
	}
}

func TestCodeIsHighlighted(t *testing.T) {
	out := renderSection(t, newRenderer(t),
		content.Code{Lang: "python", Caption: "Starter Code:", Source: "class A:\n    pass"})
	if !strings.Contains(out, "<strong>Starter Code:</strong>") {
		t.Error("missing caption")
	}
	if !strings.Contains(out, `class="code-block"`) || !strings.Contains(out, "<pre") {
		t.Errorf("code not rendered:\n%s", out)
	}
}

func TestChartEmbedsFigure(t *testing.T) {
	fig := chart.Diagram{Title: "Flow", Nodes: []chart.Node{{Label: "A"}}}.Figure()
	out := renderSection(t, newRenderer(t), content.Chart{Figure: fig})
	if !strings.Contains(out, `class="chart" data-figure="{`) {
		t.Errorf("chart not embedded:\n%s", out)
	}
	if !strings.Contains(out, "Flow") {
		t.Error("figure title missing")
	}
}

func TestColumnsWeights(t *testing.T) {
	out := renderSection(t, newRenderer(t), content.Columns{
		Widths: []int{2, 1},
		Cols:   [][]content.Block{{content.Markdown{Source: "left"}}, {content.Markdown{Source: "right"}}},
	})
	if !strings.Contains(out, "flex: 2 1 0") || !strings.Contains(out, "flex: 1 1 0") {
		t.Errorf("column weights missing:\n%s", out)
	}
}

func TestMetrics(t *testing.T) {
	out := renderSection(t, newRenderer(t), content.Metrics{
		Live:  true,
		Items: []content.Metric{{Label: "CPU Usage", Value: "50%", Delta: "-2%"}},
	})
	if !strings.Contains(out, `data-live="metrics"`) || !strings.Contains(out, "delta-down") {
		t.Errorf("metrics not rendered:\n%s", out)
	}
}

func TestDemoPanelStates(t *testing.T) {
	r := newRenderer(t)

	var c demo.Connection
	warn := demo.ListTools(&c)
	out := renderSection(t, r, content.DemoPanel{Connection: c, Outcome: &warn})
	if !strings.Contains(out, "Disconnected") || !strings.Contains(out, `class="warning-box">Please initialize connection first`) {
		t.Errorf("disconnected panel:\n%s", out)
	}

	demo.Initialize(&c)
	list := demo.ListTools(&c)
	out = renderSection(t, r, content.DemoPanel{Connection: c, Outcome: &list})
	last := -1
	for _, name := range demo.ToolNames() {
		i := strings.Index(out, "<li>• "+name+"</li>")
		if i < 0 || i < last {
			t.Fatalf("tool %s missing or out of order:\n%s", name, out)
		}
		last = i
	}
	for _, action := range []string{"/demo/initialize", "/demo/list-tools", "/demo/call-tool"} {
		if !strings.Contains(out, action) {
			t.Errorf("missing form for %s", action)
		}
	}
}

func TestStaticReplacesInteractiveBlocks(t *testing.T) {
	out := renderSection(t, newRenderer(t, Static()),
		content.DemoPanel{}, content.CodeEditor{Label: "Write"})
	if strings.Contains(out, "<form") {
		t.Errorf("static export should not render forms:\n%s", out)
	}
	if strings.Count(out, "info-box") != 2 {
		t.Errorf("expected two notices:\n%s", out)
	}
}

func TestPage(t *testing.T) {
	r := newRenderer(t)
	app := agentguide.New()
	st := session.New("s", app.ID)

	sec, err := app.RenderTab(agentguide.TabExercises, st)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.Page(&buf, Page{App: app, Tab: agentguide.TabExercises, Section: sec, State: st}); err != nil {
		t.Fatalf("Page: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>AI Agents Deep Dive - Step-by-Step Learning</title>",
		"📚 Learning Path",
		"Step-by-Step Learning: From Concepts to Production",
		"💪 Hands-On Exercises",
		`href="/?tab=fundamentals"`,
		"Learning progress: 1/6",
		"step-header",
		PlotlyURL,
		`action="/exercises/run"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestStaticTabLinks(t *testing.T) {
	r := newRenderer(t, Static())
	if got := r.TabHref("advanced"); got != "advanced.html" {
		t.Errorf("TabHref = %q", got)
	}
	if got := newRenderer(t).TabHref("advanced"); got != "/?tab=advanced" {
		t.Errorf("TabHref = %q", got)
	}
}
