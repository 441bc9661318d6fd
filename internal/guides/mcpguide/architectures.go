package mcpguide

import (
	"github.com/ziadkadry99/deepdive/internal/chart"
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/session"
)

type architectureRow struct {
	Architecture, Complexity, Scalability, Maintainability, Performance, Cost, BestFor string
}

func (r architectureRow) Cells() []string {
	return []string{r.Architecture, r.Complexity, r.Scalability, r.Maintainability, r.Performance, r.Cost, r.BestFor}
}

var architectureComparison = []architectureRow{
	{"Single Server", "Low", "Low", "High", "High", "Low", "Small projects, prototypes"},
	{"Microservices", "High", "High", "Medium", "Medium", "High", "Large enterprises, complex domains"},
	{"Gateway", "Medium", "High", "High", "Medium", "Medium", "Multi-tenant, API management"},
}

func singleServer() chart.Figure {
	return chart.Diagram{
		Title:  "Single Server Architecture",
		Height: 200,
		Nodes: []chart.Node{
			{X: 0, Y: 0, Label: "AI Client", Color: chart.Indigo},
			{X: 2, Y: 0, Label: "MCP Server", Color: chart.Purple},
			{X: 4, Y: 0, Label: "Database", Color: chart.Green},
		},
		Arrows: []chart.Arrow{
			{FromX: 0, FromY: 0, ToX: 2, ToY: 0},
			{FromX: 2, FromY: 0, ToX: 4, ToY: 0},
		},
	}.Figure()
}

func microservices() chart.Figure {
	d := chart.Diagram{
		Title:    "Microservices Architecture",
		Height:   300,
		NodeSize: 40,
		FontSize: 10,
		Nodes: []chart.Node{
			{X: 0, Y: 0, Label: "AI Client", Color: chart.Indigo},
			{X: 2, Y: 1, Label: "Billing MCP", Color: chart.Purple},
			{X: 2, Y: 0, Label: "User MCP", Color: chart.Purple},
			{X: 2, Y: -1, Label: "Notification MCP", Color: chart.Purple},
			{X: 4, Y: 1, Label: "Billing DB", Color: chart.Green},
			{X: 4, Y: 0, Label: "User DB", Color: chart.Green},
			{X: 4, Y: -1, Label: "Notification DB", Color: chart.Green},
		},
	}
	for y := 1.0; y >= -1; y-- {
		d.Arrows = append(d.Arrows,
			chart.Arrow{FromX: 0, FromY: 0, ToX: 2, ToY: y},
			chart.Arrow{FromX: 2, FromY: y, ToX: 4, ToY: y},
		)
	}
	return d.Figure()
}

func gateway() chart.Figure {
	d := chart.Diagram{
		Title:    "Gateway Architecture",
		Height:   300,
		NodeSize: 40,
		FontSize: 10,
		Nodes: []chart.Node{
			{X: 0, Y: 0, Label: "AI Client", Color: chart.Indigo},
			{X: 2, Y: 0, Label: "MCP Gateway", Color: chart.Coral},
			{X: 4, Y: 1, Label: "Server A", Color: chart.Purple},
			{X: 4, Y: 0, Label: "Server B", Color: chart.Purple},
			{X: 4, Y: -1, Label: "Server C", Color: chart.Purple},
		},
		Arrows: []chart.Arrow{{FromX: 0, FromY: 0, ToX: 2, ToY: 0}},
	}
	for y := 1.0; y >= -1; y-- {
		d.Arrows = append(d.Arrows, chart.Arrow{FromX: 2, FromY: 0, ToX: 4, ToY: y})
	}
	return d.Figure()
}

func pattern(heading string, characteristics, useCases []string, fig chart.Figure) []content.Block {
	return []content.Block{
		h4(heading),
		halves(
			[]content.Block{
				md("**Characteristics:**"), bullets(characteristics...),
				md("**Use Cases:**"), bullets(useCases...),
			},
			[]content.Block{content.Chart{Figure: fig}},
		),
	}
}

func architectures(*session.State) content.Section {
	blocks := []content.Block{h3("🏗️ Common Architecture Patterns")}

	blocks = append(blocks, pattern("1. Single Server Architecture",
		[]string{
			"One MCP server per domain",
			"Simple to implement",
			"Good for small applications",
			"Limited scalability",
		},
		[]string{
			"Prototype development",
			"Small business applications",
			"Learning and experimentation",
		},
		singleServer())...)
	blocks = append(blocks, content.Divider{})

	blocks = append(blocks, pattern("2. Microservices Architecture",
		[]string{
			"Multiple specialized MCP servers",
			"Each server handles one domain",
			"High scalability and maintainability",
			"Complex orchestration",
		},
		[]string{
			"Large enterprise applications",
			"Multi-domain systems",
			"High-availability requirements",
		},
		microservices())...)
	blocks = append(blocks, content.Divider{})

	blocks = append(blocks, pattern("3. Gateway Architecture",
		[]string{
			"Central gateway manages all MCP servers",
			"Single entry point for AI clients",
			"Centralized authentication and routing",
			"Load balancing and failover",
		},
		[]string{
			"Multi-tenant applications",
			"Complex enterprise systems",
			"API management requirements",
		},
		gateway())...)

	blocks = append(blocks,
		h3("📊 Architecture Comparison"),
		content.NewTable(
			[]string{"Architecture", "Complexity", "Scalability", "Maintainability", "Performance", "Cost", "Best For"},
			architectureComparison,
		),
	)

	return content.Section{Header: "🏛️ MCP Architectures", Blocks: blocks}
}
