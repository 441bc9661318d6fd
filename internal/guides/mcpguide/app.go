// Package mcpguide is the "MCP Understanding" tutorial.
package mcpguide

import (
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/perfsim"
)

// ID is the app identifier used on the command line and in config.
const ID = "mcp"

// DefaultPort is the port the launcher serves the tutorial on.
const DefaultPort = 8503

// Tab ids.
const (
	TabFundamentals  = "fundamentals"
	TabArchitectures = "architectures"
	TabAPIs          = "apis"
	TabAlternatives  = "alternatives"
	TabRealWorld     = "real-world"
	TabPerformance   = "performance"
)

const css = `
.metric-box {
    background-color: #f8f9fa;
    padding: 1rem;
    border-radius: 0.5rem;
    border-left: 4px solid #667eea;
    margin: 1rem 0;
}
.code-block {
    background-color: #f1f3f4;
}
`

type guide struct {
	sim *perfsim.Simulator
}

// New builds the app. The simulator feeds the performance tab.
func New(sim *perfsim.Simulator) *content.App {
	g := &guide{sim: sim}
	return &content.App{
		ID:           ID,
		Title:        "MCP Understanding",
		Icon:         "🔌",
		Subtitle:     "Interactive Tutorial on Model Context Protocol (MCP)",
		PageTitle:    "MCP Understanding - Interactive Tutorial",
		SidebarTitle: "📚 Navigation",
		Footer:       "🔌 MCP Understanding - Interactive Tutorial",
		Port:         DefaultPort,
		CSS:          css,
		PanelTab:     TabAPIs,
		Panel:        content.PanelDemo,
		Tabs: []content.Tab{
			{ID: TabFundamentals, Label: "🏗️ Fundamentals", Render: fundamentals},
			{ID: TabArchitectures, Label: "🏛️ Architectures", Render: architectures},
			{ID: TabAPIs, Label: "🔧 APIs & Examples", Render: apis},
			{ID: TabAlternatives, Label: "⚖️ MCP vs Alternatives", Render: alternatives},
			{ID: TabRealWorld, Label: "🌍 Real-World Apps", Render: realWorld},
			{ID: TabPerformance, Label: "⚡ Performance", Render: g.performance},
		},
	}
}

func h3(text string) content.Heading {
	return content.Heading{Text: text, Level: 3}
}

func h4(text string) content.Heading {
	return content.Heading{Text: text, Level: 4}
}

func md(src string) content.Markdown {
	return content.Markdown{Source: src}
}

func bullets(items ...string) content.List {
	return content.List{Kind: content.Bulleted, Items: items}
}

// halves puts two block groups in equal columns.
func halves(left, right []content.Block) content.Columns {
	return content.Columns{Widths: []int{1, 1}, Cols: [][]content.Block{left, right}}
}
