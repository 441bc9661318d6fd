package mcpguide

import (
	"github.com/ziadkadry99/deepdive/internal/chart"
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/session"
)

type componentRow struct {
	Component, Purpose, Example string
}

func (r componentRow) Cells() []string { return []string{r.Component, r.Purpose, r.Example} }

var components = []componentRow{
	{"MCP Server", "Exposes tools and resources to AI applications", "Billing system server"},
	{"MCP Client", "Connects to MCP servers and calls their tools", "AI assistant client"},
	{"Transport Layer", "Handles communication between client and server", "HTTP, WebSocket, stdio"},
	{"Tools", "Executable functions that perform specific tasks", "create_invoice, send_email"},
	{"Resources", "Data sources that can be read by AI applications", "customer_data, invoice_history"},
}

type securityRow struct {
	Feature, Description, Implementation string
}

func (r securityRow) Cells() []string { return []string{r.Feature, r.Description, r.Implementation} }

var securityFeatures = []securityRow{
	{"Authentication", "Verify client identity", "JWT tokens, API keys"},
	{"Authorization", "Control access to resources", "Role-based access control"},
	{"Input Validation", "Validate all inputs", "Schema validation"},
	{"Rate Limiting", "Prevent abuse and overload", "Request throttling"},
	{"Encryption", "Secure data transmission", "TLS/SSL encryption"},
	{"Audit Logging", "Track all operations", "Comprehensive logging"},
}

const whatIsMCP = `**Model Context Protocol (MCP)** is a standardized protocol that enables AI applications to securely connect to external data sources and tools.
It provides a structured way for AI models to interact with external systems through a well-defined interface.

#### Key Characteristics:
- **Standardized**: Consistent interface across different AI applications
- **Secure**: Built-in security and authentication mechanisms
- **Extensible**: Easy to add new tools and data sources
- **Language Agnostic**: Works with any programming language
- **Transport Flexible**: Supports multiple communication methods
`

func messageFlow() chart.Figure {
	return chart.Diagram{
		Title:      "MCP Communication Flow",
		Height:     300,
		ArrowWidth: 2,
		Nodes: []chart.Node{
			{X: 0, Y: 0, Label: "AI Client", Color: chart.Indigo},
			{X: 2, Y: 0, Label: "MCP Server", Color: chart.Purple},
			{X: 4, Y: 0, Label: "External System", Color: chart.Green},
		},
		Arrows: []chart.Arrow{
			{FromX: 0.3, FromY: 0, ToX: 1.7, ToY: 0, Label: "initialize"},
			{FromX: 1.7, FromY: 0, ToX: 0.3, ToY: 0, Label: "initialized"},
			{FromX: 0.3, FromY: -0.1, ToX: 1.7, ToY: -0.1, Label: "tools/list"},
			{FromX: 1.7, FromY: -0.1, ToX: 0.3, ToY: -0.1, Label: "tools/list result"},
			{FromX: 0.3, FromY: -0.2, ToX: 1.7, ToY: -0.2, Label: "tools/call"},
			{FromX: 1.7, FromY: -0.2, ToX: 0.3, ToY: -0.2, Label: "tools/call result"},
			{FromX: 2.3, FromY: 0, ToX: 3.7, ToY: 0, Label: "API calls"},
			{FromX: 3.7, FromY: 0, ToX: 2.3, ToY: 0, Label: "responses"},
		},
	}.Figure()
}

func fundamentals(*session.State) content.Section {
	return content.Section{
		Header: "🏗️ MCP Fundamentals",
		Blocks: []content.Block{
			h3("What is Model Context Protocol (MCP)?"),
			content.Columns{
				Widths: []int{2, 1},
				Cols: [][]content.Block{
					{md(whatIsMCP)},
					{content.Card{Title: "🔌 MCP", Lines: []string{"Model Context Protocol", "Connecting AI to the World"}}},
				},
			},
			content.Divider{},

			h3("🧩 Core Components"),
			content.NewTable([]string{"Component", "Purpose", "Example"}, components),

			h3("📡 MCP Message Flow"),
			content.Chart{Figure: messageFlow()},

			h3("🚀 Transport Methods"),
			content.Columns{Cols: [][]content.Block{
				{md("**stdio (Standard I/O)**"), bullets(
					"Process-to-process communication",
					"Simple and reliable",
					"Good for local development",
					"Limited to single machine",
				)},
				{md("**HTTP**"), bullets(
					"RESTful API communication",
					"Works across networks",
					"Stateless and scalable",
					"Good for web applications",
				)},
				{md("**WebSocket**"), bullets(
					"Real-time bidirectional communication",
					"Persistent connections",
					"Good for real-time applications",
					"More complex to implement",
				)},
			}},

			h3("🔒 Security Features"),
			content.NewTable([]string{"Feature", "Description", "Implementation"}, securityFeatures),
		},
	}
}
