package agentguide

import (
	"fmt"

	"github.com/ziadkadry99/deepdive/internal/chart"
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/session"
)

type agentTypeRow struct {
	Type, Description, UseCase, Example string
}

func (r agentTypeRow) Cells() []string { return []string{r.Type, r.Description, r.UseCase, r.Example} }

var agentTypes = []agentTypeRow{
	{"Reactive", "Respond to current state only, no memory", "Simple automation, real-time systems", "Thermostat, simple chatbots"},
	{"Deliberative", "Plan before acting, use internal models", "Complex planning, strategic decisions", "Chess AI, route planning"},
	{"Hybrid", "Combine reactive and deliberative approaches", "Most practical applications", "Personal assistants, game AI"},
	{"Learning", "Learn and adapt from experience", "Personalization, optimization", "Recommendation systems, trading bots"},
	{"Multi-Agent", "Multiple agents working together", "Distributed systems, collaboration", "Swarm robotics, distributed computing"},
}

type componentRow struct {
	Component, Purpose, Implementation string
}

func (r componentRow) Cells() []string { return []string{r.Component, r.Purpose, r.Implementation} }

var coreComponents = []componentRow{
	{"Perception System", "Process and interpret input data", "Sensors, data processors, filters"},
	{"Reasoning Engine", "Analyze information and make decisions", "LLMs, rule engines, neural networks"},
	{"Action System", "Execute actions and interact with environment", "Tools, APIs, actuators"},
	{"Memory System", "Store and retrieve information", "Databases, vector stores, caches"},
	{"Learning Module", "Improve performance over time", "Reinforcement learning, supervised learning"},
	{"Communication Interface", "Communicate with other agents/users", "Message passing, APIs, protocols"},
}

type architectureRow struct {
	Architecture, Complexity, Scalability, FaultTolerance, Coordination, UseCases string
}

func (r architectureRow) Cells() []string {
	return []string{r.Architecture, r.Complexity, r.Scalability, r.FaultTolerance, r.Coordination, r.UseCases}
}

var architectureComparison = []architectureRow{
	{"Single Agent", "Low", "Low", "Low", "None", "Simple tasks, prototypes"},
	{"Master-Worker", "Medium", "High", "Medium", "Centralized", "Parallel processing, batch jobs"},
	{"Peer-to-Peer", "High", "Medium", "High", "Distributed", "Distributed systems, consensus"},
	{"Hierarchical", "Very High", "Very High", "High", "Mixed", "Large organizations, complex domains"},
}

const whatIsAnAgent = `**An AI Agent is an autonomous software entity that can:**

- **Perceive** its environment through sensors/data inputs
- **Reason** about the information it receives
- **Act** upon the environment through tools/functions
- **Learn** from its experiences and improve over time

**Key Characteristics:**
- **Autonomous**: Operates independently
- **Reactive**: Responds to environmental changes
- **Proactive**: Takes initiative when appropriate
- **Social**: Can interact with other agents
`

func agentLoop() chart.Figure {
	return chart.Diagram{
		Title:      "The Agent Loop",
		Height:     300,
		NodeSize:   60,
		ArrowWidth: 3,
		Nodes: []chart.Node{
			{X: 0, Y: 0, Label: "Perceive", Color: chart.Blue},
			{X: 2, Y: 0, Label: "Reason", Color: chart.Red},
			{X: 4, Y: 0, Label: "Act", Color: chart.Emerald},
			{X: 2, Y: -1, Label: "Learn", Color: chart.Orange},
		},
		Arrows: []chart.Arrow{
			{FromX: 0.3, FromY: 0, ToX: 1.7, ToY: 0},
			{FromX: 2.3, FromY: 0, ToX: 3.7, ToY: 0},
			{FromX: 4, FromY: -0.3, ToX: 2, ToY: -0.7},
			{FromX: 2, FromY: -0.3, ToX: 0, ToY: 0},
		},
	}.Figure()
}

func singleAgent() chart.Figure {
	d := chart.Diagram{
		Title:    "Single Agent Architecture",
		Height:   400,
		FontSize: 10,
		Nodes: []chart.Node{
			{X: 0, Y: 2, Label: "Environment", Color: chart.Cloud},
			{X: 0, Y: 1, Label: "Perception", Color: chart.Blue},
			{X: 0, Y: 0, Label: "Reasoning", Color: chart.Red},
			{X: 0, Y: -1, Label: "Action", Color: chart.Emerald},
			{X: 0, Y: -2, Label: "Memory", Color: chart.Orange},
		},
	}
	for i := 0; i+1 < len(d.Nodes); i++ {
		from, to := d.Nodes[i], d.Nodes[i+1]
		d.Arrows = append(d.Arrows, chart.Arrow{FromX: 0, FromY: from.Y - 0.3, ToX: 0, ToY: to.Y + 0.3})
	}
	return d.Figure()
}

func masterWorker() chart.Figure {
	d := chart.Diagram{
		Title:    "Multi-Agent System (Master-Worker)",
		Height:   300,
		FontSize: 10,
		Nodes:    []chart.Node{{X: 0, Y: 2, Label: "Master Agent", Color: chart.Red, Size: 60}},
	}
	for i, x := range []float64{-1, 0, 1} {
		d.Nodes = append(d.Nodes, chart.Node{X: x, Y: 0, Label: fmt.Sprintf("Worker %d", i+1), Color: chart.Blue, Size: 40})
		d.Arrows = append(d.Arrows, chart.Arrow{FromX: x, FromY: 0.3, ToX: 0, ToY: 1.7})
	}
	return d.Figure()
}

func fundamentals(*session.State) content.Section {
	return content.Section{
		Header: "🏗️ AI Agent Fundamentals",
		Blocks: []content.Block{
			step("Step 1: Understanding AI Agents"),
			content.Columns{
				Widths: []int{2, 1},
				Cols: [][]content.Block{
					{md(whatIsAnAgent)},
					{content.Chart{Figure: agentLoop()}},
				},
			},

			step("Step 2: Types of AI Agents"),
			content.NewTable([]string{"Type", "Description", "Use Case", "Example"}, agentTypes),

			step("Step 3: Core Components"),
			content.NewTable([]string{"Component", "Purpose", "Implementation"}, coreComponents),
		},
	}
}

const collaborationPatterns = `**Collaboration Patterns:**

**Master-Worker:**
- One master coordinates workers
- Good for parallel processing
- Centralized control

**Peer-to-Peer:**
- Equal agents collaborate
- Decentralized decision making
- More resilient

**Hierarchical:**
- Multiple levels of agents
- Complex coordination
- Scalable structure
`

func architectures(*session.State) content.Section {
	return content.Section{
		Header: "🏛️ Agent Architectures & Patterns",
		Blocks: []content.Block{
			step("Single Agent Architecture"),
			halves(
				[]content.Block{
					md("**Basic Structure:**"), bullets(
						"One agent handles all tasks",
						"Simple to implement and debug",
						"Good for focused applications",
						"Limited scalability",
					),
					md("**Components:**"), bullets(
						"Perception layer",
						"Reasoning engine",
						"Action execution",
						"Memory system",
					),
				},
				[]content.Block{content.Chart{Figure: singleAgent()}},
			),

			step("Multi-Agent Systems"),
			halves(
				[]content.Block{md(collaborationPatterns)},
				[]content.Block{content.Chart{Figure: masterWorker()}},
			),

			step("Architecture Comparison"),
			content.NewTable(
				[]string{"Architecture", "Complexity", "Scalability", "Fault Tolerance", "Coordination", "Use Cases"},
				architectureComparison,
			),
		},
	}
}
