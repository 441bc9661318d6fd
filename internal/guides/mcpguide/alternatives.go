package mcpguide

import (
	"github.com/ziadkadry99/deepdive/internal/chart"
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/session"
)

type protocolRow struct {
	Feature, MCP, REST, GraphQL, GRPC, WebSockets string
}

func (r protocolRow) Cells() []string {
	return []string{r.Feature, r.MCP, r.REST, r.GraphQL, r.GRPC, r.WebSockets}
}

const (
	yesHigh   = "✅ High"
	builtIn   = "✅ Built-in"
	yes       = "✅ Yes"
	no        = "❌ No"
	multiLang = "✅ Multi-language"
	medium    = "🟡 Medium"
	manual    = "🟡 Manual"
	large     = "✅ Large"
	good      = "✅ Good"
)

var protocolComparison = []protocolRow{
	{"Standardization", yesHigh, yesHigh, yesHigh, yesHigh, medium},
	{"Security", builtIn, manual, manual, builtIn, manual},
	{"Real-time Support", yes, no, no, yes, yes},
	{"Language Support", multiLang, multiLang, multiLang, multiLang, multiLang},
	{"Learning Curve", medium, "✅ Easy", medium, medium, medium},
	{"Community", "🟡 Growing", large, large, large, large},
	{"Documentation", good, "✅ Excellent", good, good, medium},
	{"Enterprise Ready", yes, yes, yes, yes, medium},
	{"Performance", yesHigh, medium, medium, yesHigh, yesHigh},
	{"Flexibility", yesHigh, medium, yesHigh, medium, medium},
}

var radarAxes = []string{"Standardization", "Security", "Real-time", "Performance", "Flexibility", "Ease of Use"}

func featureRadar() chart.Figure {
	return chart.Radar{
		Title: "Protocol Feature Comparison (1-10 scale)",
		Axes:  radarAxes,
		Max:   10,
		Series: []chart.Series{
			{Name: "MCP", Values: []float64{9, 9, 8, 9, 9, 7}, Color: chart.Indigo},
			{Name: "REST APIs", Values: []float64{9, 6, 3, 6, 6, 9}, Color: chart.Green},
			{Name: "GraphQL", Values: []float64{9, 6, 3, 6, 8, 7}, Color: chart.Coral},
			{Name: "gRPC", Values: []float64{9, 9, 8, 9, 6, 6}, Color: chart.Amber},
			{Name: "WebSockets", Values: []float64{6, 6, 9, 8, 6, 6}, Color: chart.Violet},
		},
	}.Figure()
}

var protocols = []string{"MCP", "REST", "GraphQL", "gRPC", "WebSocket"}

func performanceComparison() chart.Figure {
	return chart.BarGrid{
		Title:  "Performance Comparison",
		Height: 400,
		Panels: []chart.BarPanel{
			{Title: "Latency (ms)", Series: chart.Series{Name: "Latency", Labels: protocols, Values: []float64{45, 60, 80, 35, 25}, Color: chart.Indigo}},
			{Title: "Throughput (req/s)", Series: chart.Series{Name: "Throughput", Labels: protocols, Values: []float64{850, 600, 400, 1200, 1000}, Color: chart.Green}},
			{Title: "Memory Usage (MB)", Series: chart.Series{Name: "Memory", Labels: protocols, Values: []float64{120, 80, 150, 200, 100}, Color: chart.Coral}},
		},
	}.Figure()
}

const fromREST = `#### From REST to MCP
1. **Identify AI Integration Points**: Find where AI capabilities would add value
2. **Create MCP Wrappers**: Wrap existing REST endpoints with MCP tools
3. **Gradual Migration**: Start with non-critical endpoints
4. **Update Clients**: Modify AI clients to use MCP instead of REST
5. **Monitor Performance**: Ensure MCP doesn't impact existing functionality
`

const fromGraphQL = `#### From GraphQL to MCP
1. **Map Queries to Tools**: Convert GraphQL queries to MCP tool calls
2. **Preserve Type Safety**: Use MCP's schema validation
3. **Handle Subscriptions**: Use MCP's notification system
4. **Update Resolvers**: Convert GraphQL resolvers to MCP tools
5. **Test Thoroughly**: Ensure all functionality is preserved
`

func useWhen(protocol string, reasons ...string) []content.Block {
	return []content.Block{md("**✅ Use " + protocol + " when:**"), bullets(reasons...)}
}

func alternatives(*session.State) content.Section {
	left := append(
		useWhen("MCP",
			"Building AI-powered applications",
			"Need standardized AI integration",
			"Require real-time capabilities",
			"Want built-in security features",
			"Building microservices architecture",
			"Need multi-language support",
		),
		useWhen("REST APIs",
			"Building traditional web applications",
			"Need simple HTTP communication",
			"Want maximum compatibility",
			"Have existing REST infrastructure",
			"Building public APIs",
			"Need extensive documentation",
		)...,
	)
	right := append(
		useWhen("GraphQL",
			"Need flexible data querying",
			"Want to reduce over-fetching",
			"Building mobile applications",
			"Need real-time subscriptions",
			"Want type-safe APIs",
			"Building complex data relationships",
		),
		useWhen("gRPC",
			"Building high-performance services",
			"Need strong typing",
			"Want efficient serialization",
			"Building microservices",
			"Need streaming capabilities",
			"Want language-agnostic contracts",
		)...,
	)

	return content.Section{
		Header: "⚖️ MCP vs Alternatives",
		Blocks: []content.Block{
			h3("🔄 Protocol Comparison"),
			content.NewTable([]string{"Feature", "MCP", "REST APIs", "GraphQL", "gRPC", "WebSockets"}, protocolComparison),

			h3("📊 Detailed Feature Analysis"),
			content.Chart{Figure: featureRadar()},

			h3("🎯 When to Use Each Protocol"),
			halves(left, right),

			h3("🔄 Migration Strategies"),
			md(fromREST),
			md(fromGraphQL),

			h3("⚡ Performance Comparison"),
			content.Chart{Figure: performanceComparison()},
		},
	}
}
