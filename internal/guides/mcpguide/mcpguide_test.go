package mcpguide

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/demo"
	"github.com/ziadkadry99/deepdive/internal/perfsim"
	"github.com/ziadkadry99/deepdive/internal/session"
)

func newApp() *content.App {
	return New(perfsim.New(rand.New(rand.NewPCG(7, 7))))
}

func TestAppShape(t *testing.T) {
	app := newApp()
	if app.ID != ID || app.Port != 8503 {
		t.Errorf("app = %s:%d", app.ID, app.Port)
	}
	want := []string{TabFundamentals, TabArchitectures, TabAPIs, TabAlternatives, TabRealWorld, TabPerformance}
	if len(app.Tabs) != len(want) {
		t.Fatalf("got %d tabs", len(app.Tabs))
	}
	for i, id := range want {
		if app.Tabs[i].ID != id {
			t.Errorf("tab %d = %s, want %s", i, app.Tabs[i].ID, id)
		}
	}
}

func TestEveryTabRenders(t *testing.T) {
	app := newApp()
	headers := map[string]string{
		TabFundamentals:  "🏗️ MCP Fundamentals",
		TabArchitectures: "🏛️ MCP Architectures",
		TabAPIs:          "🔧 MCP APIs & Examples",
		TabAlternatives:  "⚖️ MCP vs Alternatives",
		TabRealWorld:     "🌍 Real-World Applications",
		TabPerformance:   "⚡ Performance Optimization",
	}
	st := session.New("t", ID)
	for _, tab := range app.Tabs {
		sec, err := app.RenderTab(tab.ID, st)
		if err != nil {
			t.Fatalf("RenderTab(%s): %v", tab.ID, err)
		}
		if sec.Header != headers[tab.ID] {
			t.Errorf("%s header = %q", tab.ID, sec.Header)
		}
		if len(sec.Blocks) == 0 {
			t.Errorf("%s has no blocks", tab.ID)
		}
	}
	if v, total := app.Progress(st); v != total {
		t.Errorf("progress = %d/%d after visiting every tab", v, total)
	}
}

func TestTablesKeepRowOrder(t *testing.T) {
	tbl := content.NewTable([]string{"Method", "Purpose", "Direction"}, apiMethods)
	if len(tbl.Rows) != 8 {
		t.Fatalf("got %d rows", len(tbl.Rows))
	}
	if tbl.Rows[0][0] != "initialize" || tbl.Rows[7][0] != "notifications/tools/list_changed" {
		t.Errorf("rows out of order: first %q last %q", tbl.Rows[0][0], tbl.Rows[7][0])
	}
	for _, r := range protocolComparison {
		if len(r.Cells()) != 6 {
			t.Errorf("%s has %d cells", r.Feature, len(r.Cells()))
		}
	}
}

func TestChartsSerialize(t *testing.T) {
	figs := map[string]interface{ JSON() ([]byte, error) }{
		"flow":        messageFlow(),
		"single":      singleServer(),
		"micro":       microservices(),
		"gateway":     gateway(),
		"radar":       featureRadar(),
		"perf":        performanceComparison(),
		"cache":       cacheImpact(),
		"balancer":    loadBalancer(),
		"ecommerce":   fanInOut("x", "a", [3]string{"b", "c", "d"}, "e"),
		"trendsEmpty": trendsFigure(perfsim.Trends{}),
	}
	for name, f := range figs {
		b, err := f.JSON()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		var v map[string]any
		if err := json.Unmarshal(b, &v); err != nil {
			t.Fatalf("%s: invalid json: %v", name, err)
		}
		if _, ok := v["data"]; !ok {
			t.Errorf("%s: missing data", name)
		}
	}
}

func TestMicroservicesArrows(t *testing.T) {
	f := microservices()
	if len(f.Data) != 7 {
		t.Errorf("expected 7 nodes, got %d", len(f.Data))
	}
	if len(f.Layout.Annotations) != 6 {
		t.Errorf("expected 6 arrows, got %d", len(f.Layout.Annotations))
	}
}

func findPanel(sec content.Section) (content.DemoPanel, bool) {
	for _, b := range sec.Blocks {
		if p, ok := b.(content.DemoPanel); ok {
			return p, true
		}
	}
	return content.DemoPanel{}, false
}

func TestAPIsTabShowsPanelOutcomeOnce(t *testing.T) {
	app := newApp()
	st := session.New("t", ID)
	demo.Initialize(&st.Demo)
	st.SetFlash(demo.ListTools(&st.Demo))

	sec, _ := app.RenderTab(TabAPIs, st)
	p, ok := findPanel(sec)
	if !ok {
		t.Fatal("apis tab has no demo panel")
	}
	if !p.Connection.Connected {
		t.Error("panel should reflect the connected session")
	}
	if p.Outcome == nil || p.Outcome.Action != demo.ActionListTools {
		t.Fatalf("outcome = %+v", p.Outcome)
	}

	sec, _ = app.RenderTab(TabAPIs, st)
	p, _ = findPanel(sec)
	if p.Outcome != nil {
		t.Error("outcome should only render once")
	}
}

func TestPerformanceMetricsAreLive(t *testing.T) {
	sec, _ := newApp().RenderTab(TabPerformance, session.New("t", ID))
	for _, b := range sec.Blocks {
		if m, ok := b.(content.Metrics); ok {
			if !m.Live || len(m.Items) != 4 {
				t.Errorf("metrics = %+v", m)
			}
			return
		}
	}
	t.Error("performance tab has no metrics block")
}
