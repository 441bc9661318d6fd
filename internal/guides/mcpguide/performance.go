package mcpguide

import (
	"fmt"

	"github.com/ziadkadry99/deepdive/internal/chart"
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/perfsim"
	"github.com/ziadkadry99/deepdive/internal/session"
)

type metricRow struct {
	Metric, Description, Target, Measurement string
}

func (r metricRow) Cells() []string { return []string{r.Metric, r.Description, r.Target, r.Measurement} }

var keyMetrics = []metricRow{
	{"Response Time", "Time to complete a request", "< 100ms", "End-to-end timing"},
	{"Throughput", "Requests processed per second", "> 1000 req/s", "Load testing"},
	{"Latency", "Network communication delay", "< 50ms", "Network monitoring"},
	{"Memory Usage", "Memory consumption", "< 500MB", "Memory profiling"},
	{"CPU Usage", "CPU utilization", "< 70%", "CPU monitoring"},
	{"Error Rate", "Percentage of failed requests", "< 0.1%", "Error logging"},
	{"Availability", "System uptime percentage", "> 99.9%", "Uptime monitoring"},
	{"Scalability", "Ability to handle increased load", "Linear scaling", "Load testing"},
}

type practiceRow struct {
	Category, Practice, Impact string
}

func (r practiceRow) Cells() []string { return []string{r.Category, r.Practice, r.Impact} }

var bestPractices = []practiceRow{
	{"Code Optimization", "Use async/await, avoid blocking operations, implement proper error handling", "High"},
	{"Database Optimization", "Use connection pooling, optimize queries, implement caching", "High"},
	{"Network Optimization", "Use compression, minimize payload size, implement keep-alive", "Medium"},
	{"Monitoring", "Set up alerts, monitor key metrics, log important events", "High"},
	{"Testing", "Load testing, stress testing, performance testing", "Medium"},
	{"Deployment", "Use CDNs, implement auto-scaling, optimize container images", "Medium"},
}

var checklist = []string{
	"Implement connection pooling",
	"Add caching at multiple levels",
	"Use async/await for I/O operations",
	"Optimize database queries",
	"Implement proper error handling",
	"Set up performance monitoring",
	"Use load balancing",
	"Implement rate limiting",
	"Optimize payload sizes",
	"Use compression",
	"Set up automated testing",
	"Monitor memory usage",
	"Implement graceful degradation",
	"Use CDNs for static content",
	"Implement auto-scaling",
}

var cacheTypes = []string{"No Cache", "Memory Cache", "Redis Cache", "CDN Cache"}

func cacheImpact() chart.Figure {
	return chart.BarChart{
		Title:   "Cache Performance Impact",
		XTitle:  "Cache Type",
		YTitle:  "Hit Rate (%)",
		Y2Title: "Response Time (ms)",
		Height:  400,
		Series: []chart.Series{
			{Name: "Hit Rate (%)", Labels: cacheTypes, Values: []float64{0, 60, 85, 95}, Color: chart.Indigo},
			{Name: "Response Time (ms)", Labels: cacheTypes, Values: []float64{200, 50, 30, 10}, Color: chart.Green, Secondary: true},
		},
	}.Figure()
}

func loadBalancer() chart.Figure {
	d := chart.Diagram{
		Title:    "Load Balancing Architecture",
		Height:   300,
		FontSize: 10,
		Nodes:    []chart.Node{{X: 0, Y: 0, Label: "Load Balancer", Color: chart.Coral, Size: 60}},
	}
	for i, y := range []float64{-1, 0, 1} {
		d.Nodes = append(d.Nodes, chart.Node{X: 2, Y: y, Label: fmt.Sprintf("Server %d", i+1), Color: chart.Green, Size: 40})
		d.Arrows = append(d.Arrows, chart.Arrow{FromX: 0, FromY: 0, ToX: 2, ToY: y})
	}
	return d.Figure()
}

const poolConfig = `// Connection pool configuration
const poolConfig = {
  min: 5,        // Minimum connections
  max: 20,       // Maximum connections
  idle: 10000,   // Idle timeout (ms)
  acquire: 30000 // Acquire timeout (ms)
};

const pool = new Pool(poolConfig);`

// metricCards converts simulator readings into metric blocks.
func metricCards(snap perfsim.Snapshot) []content.Metric {
	cards := snap.Cards()
	out := make([]content.Metric, len(cards))
	for i, c := range cards {
		out[i] = content.Metric{Label: c.Label, Value: c.Value, Delta: c.Delta}
	}
	return out
}

func trendsFigure(t perfsim.Trends) chart.Figure {
	return chart.LineStack{
		Title:  "Performance Trends (30 Days)",
		Height: 600,
		Panels: []chart.LinePanel{
			{Title: "Response Time Over Time", Name: "Response Time", Dates: t.Dates, Values: t.ResponseTime, Color: chart.Indigo},
			{Title: "Throughput Over Time", Name: "Throughput", Dates: t.Dates, Values: t.Throughput, Color: chart.Green},
		},
	}.Figure()
}

func (g *guide) performance(*session.State) content.Section {
	return content.Section{
		Header: "⚡ Performance Optimization",
		Blocks: []content.Block{
			h3("📊 Key Performance Metrics"),
			content.NewTable([]string{"Metric", "Description", "Target", "Measurement"}, keyMetrics),

			h3("🚀 Optimization Strategies"),
			h4("1. Caching Strategies"),
			halves(
				[]content.Block{
					md("**Client-Side Caching:**"), bullets(
						"Cache tool responses",
						"Store resource data locally",
						"Implement cache invalidation",
						"Use appropriate TTL values",
					),
					md("**Server-Side Caching:**"), bullets(
						"Cache frequently accessed data",
						"Use Redis or Memcached",
						"Implement cache warming",
						"Monitor cache hit rates",
					),
				},
				[]content.Block{content.Chart{Figure: cacheImpact()}},
			),

			h4("2. Connection Pooling"),
			md("**Benefits:**"),
			bullets(
				"Reuse existing connections",
				"Reduce connection overhead",
				"Improve response times",
				"Better resource utilization",
			),
			js("Implementation:", poolConfig),

			h4("3. Load Balancing"),
			halves(
				[]content.Block{
					md("**Load Balancing Strategies:**"), bullets(
						"Round Robin",
						"Least Connections",
						"Weighted Round Robin",
						"IP Hash",
						"Geographic",
					),
					md("**Benefits:**"), bullets(
						"Distribute load evenly",
						"Improve availability",
						"Handle traffic spikes",
						"Scale horizontally",
					),
				},
				[]content.Block{content.Chart{Figure: loadBalancer()}},
			),

			h3("📈 Performance Monitoring"),
			h4("Real-time Performance Dashboard"),
			content.Metrics{Items: metricCards(g.sim.Snapshot()), Live: true},

			h4("Performance Trends"),
			content.Chart{Figure: trendsFigure(g.sim.Trends())},

			h3("✅ Best Practices"),
			content.NewTable([]string{"Category", "Practice", "Impact"}, bestPractices),

			h3("✅ Performance Checklist"),
			content.List{Kind: content.Checklist, Items: checklist},
		},
	}
}
