package agentguide

import (
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/demo"
	"github.com/ziadkadry99/deepdive/internal/session"
)

type healthCheckRow struct {
	CheckType, Threshold, Action string
}

func (r healthCheckRow) Cells() []string { return []string{r.CheckType, r.Threshold, r.Action} }

var healthChecks = []healthCheckRow{
	{"Response Time", "< 5 seconds", "Scale up if exceeded"},
	{"Error Rate", "< 5%", "Alert and investigate"},
	{"Memory Usage", "< 80%", "Restart if critical"},
	{"CPU Usage", "< 70%", "Scale horizontally"},
	{"Tool Availability", "All tools responding", "Restart failed tools"},
	{"Database Connectivity", "Connection successful", "Failover to backup"},
}

type securityRow struct {
	Aspect, Implementation, Tools string
}

func (r securityRow) Cells() []string { return []string{r.Aspect, r.Implementation, r.Tools} }

var securityAspects = []securityRow{
	{"Input Validation", "Validate all inputs", "Pydantic, Zod"},
	{"Output Sanitization", "Sanitize outputs", "HTML sanitizers"},
	{"Tool Access Control", "Role-based access", "RBAC systems"},
	{"Data Encryption", "Encrypt sensitive data", "TLS, AES encryption"},
	{"Audit Logging", "Log all actions", "Structured logging"},
	{"Rate Limiting", "Limit requests per user", "Redis, rate limiting"},
}

func production(*session.State) content.Section {
	return content.Section{
		Header: "🏭 Production Considerations",
		Blocks: []content.Block{
			step("Scalability and Performance"),
			halves(
				[]content.Block{md("**Agent Pool Management:**"), bullets(
					"Manage multiple agent instances",
					"Load balancing across agents",
					"Auto-scaling based on demand",
					"Resource optimization",
				)},
				[]content.Block{md("**Performance Optimization:**"), bullets(
					"Caching strategies",
					"Connection pooling",
					"Asynchronous processing",
					"Memory management",
				)},
			),

			step("Monitoring and Observability"),
			md("**Key Metrics to Monitor:**"),
			bullets(
				"Request throughput and latency",
				"Error rates and types",
				"Tool usage patterns",
				"Memory and CPU usage",
				"User satisfaction scores",
			),

			step("Health Checks and Alerts"),
			content.NewTable([]string{"Check Type", "Threshold", "Action"}, healthChecks),

			step("Security Considerations"),
			content.NewTable([]string{"Aspect", "Implementation", "Tools"}, securityAspects),
		},
	}
}

// Exercise is one hands-on assignment.
type Exercise struct {
	Title        string
	Objective    string
	Requirements []string
	StarterCode  string
}

// Exercises lists the assignments in order.
var Exercises = []Exercise{
	{
		Title:     "Exercise 1: Build a Simple Calculator Agent",
		Objective: "Create a basic agent that can perform mathematical calculations.",
		Requirements: []string{
			"Implement the ReACT pattern",
			"Add calculator tools (add, subtract, multiply, divide)",
			"Handle error cases (division by zero)",
			"Test with various math problems",
		},
		StarterCode: `class CalculatorAgent:
    def __init__(self):
        # TODO: Initialize agent components
        self.tools = {}
        self.memory = []

    def run(self, math_problem: str):
        # TODO: Implement ReACT pattern
        # 1. Parse the math problem
        # 2. Choose appropriate tool
        # 3. Execute calculation
        # 4. Return result
        pass`,
	},
	{
		Title:     "Exercise 2: Create a Multi-Agent System",
		Objective: "Build a system with multiple specialized agents that collaborate.",
		Requirements: []string{
			"Create different agent types (researcher, analyzer, summarizer)",
			"Implement communication between agents",
			"Add coordination mechanism",
			"Test with complex tasks",
		},
	},
	{
		Title:     "Exercise 3: Implement Memory and Learning",
		Objective: "Add memory and learning capabilities to an agent.",
		Requirements: []string{
			"Implement short-term and long-term memory",
			"Add learning from experience",
			"Test with repeated tasks",
			"Measure improvement over time",
		},
	},
	{
		Title:     "Exercise 4: Build a Production-Ready Agent",
		Objective: "Create a production-ready agent with monitoring and error handling.",
		Requirements: []string{
			"Add comprehensive error handling",
			"Implement monitoring and metrics",
			"Add health checks",
			"Test under load",
			"Deploy and monitor",
		},
	},
}

type exerciseStatusRow struct {
	Exercise, Status, Difficulty, TimeEstimate string
}

func (r exerciseStatusRow) Cells() []string {
	return []string{r.Exercise, r.Status, r.Difficulty, r.TimeEstimate}
}

var exerciseStatus = []exerciseStatusRow{
	{"Calculator Agent", "✅ Completed", "Easy", "2 hours"},
	{"Multi-Agent System", "🔄 In Progress", "Medium", "4 hours"},
	{"Memory & Learning", "⏳ Not Started", "Hard", "6 hours"},
	{"Production Agent", "⏳ Not Started", "Expert", "8 hours"},
}

var tips = []string{
	"Start with simple agents and gradually add complexity",
	"Test your agents with edge cases and error scenarios",
	"Use proper logging and debugging techniques",
	"Document your agent's capabilities and limitations",
	"Consider performance implications of your design choices",
	"Implement proper error handling and recovery mechanisms",
	"Use version control and testing frameworks",
	"Monitor your agents in production environments",
}

// EditorPlaceholder is shown in the empty code editor.
const EditorPlaceholder = `class MyAgent:
    def __init__(self):
        # Your implementation here
        pass

    def run(self, task):
        # Your agent logic here
        pass`

func exercises(st *session.State) content.Section {
	var blocks []content.Block
	for _, ex := range Exercises {
		blocks = append(blocks,
			step(ex.Title),
			md("**Objective:** "+ex.Objective+"\n\n**Requirements:**"),
			bullets(ex.Requirements...),
		)
		if ex.StarterCode != "" {
			blocks = append(blocks, content.Code{Lang: "python", Caption: "Starter Code:", Source: ex.StarterCode})
		}
	}

	editor := content.CodeEditor{
		Label:       "Write your agent code here:",
		Placeholder: EditorPlaceholder,
		Code:        st.Code,
	}
	if o, ok := st.TakeFlash(demo.ActionRunCode); ok {
		editor.Outcome = &o
	}

	blocks = append(blocks,
		step("Interactive Code Editor"),
		md("**Try implementing your own agent here:**"),
		editor,

		step("Learning Progress"),
		content.NewTable([]string{"Exercise", "Status", "Difficulty", "Time Estimate"}, exerciseStatus),

		step("Tips and Resources"),
		content.List{Kind: content.Numbered, Items: tips},
	)

	return content.Section{Header: "💪 Hands-On Exercises", Blocks: blocks}
}
