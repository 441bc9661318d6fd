// Package agentguide is the "AI Agents Deep Dive" tutorial.
package agentguide

import (
	"github.com/ziadkadry99/deepdive/internal/content"
)

const (
	ID          = "agents"
	DefaultPort = 8504
)

const (
	TabFundamentals   = "fundamentals"
	TabArchitectures  = "architectures"
	TabImplementation = "implementation"
	TabAdvanced       = "advanced"
	TabProduction     = "production"
	TabExercises      = "exercises"
)

const css = `
.step-header {
    font-size: 1.5rem;
    font-weight: bold;
    margin-top: 1.5rem;
    margin-bottom: 0.5rem;
    color: #e74c3c;
    border-left: 4px solid #e74c3c;
    padding-left: 1rem;
}
.code-block {
    background-color: #f8f9fa;
    margin: 1rem 0;
}
.exercise-box {
    background-color: #f0f8ff;
    padding: 1rem;
    border-radius: 0.5rem;
    border: 2px solid #4169e1;
    margin: 1rem 0;
}
`

// New builds the app.
func New() *content.App {
	return &content.App{
		ID:           ID,
		Title:        "AI Agents Deep Dive",
		Icon:         "🤖",
		Subtitle:     "Step-by-Step Learning: From Concepts to Production",
		PageTitle:    "AI Agents Deep Dive - Step-by-Step Learning",
		SidebarTitle: "📚 Learning Path",
		Footer:       "🤖 AI Agents Deep Dive - Step-by-Step Learning",
		Port:         DefaultPort,
		CSS:          css,
		PanelTab:     TabExercises,
		Panel:        content.PanelEditor,
		Tabs: []content.Tab{
			{ID: TabFundamentals, Label: "🏗️ Fundamentals", Render: fundamentals},
			{ID: TabArchitectures, Label: "🏛️ Architectures", Render: architectures},
			{ID: TabImplementation, Label: "⚙️ Implementation", Render: implementation},
			{ID: TabAdvanced, Label: "🚀 Advanced", Render: advanced},
			{ID: TabProduction, Label: "🏭 Production", Render: production},
			{ID: TabExercises, Label: "💪 Exercises", Render: exercises},
		},
	}
}

func step(text string) content.Heading {
	return content.Heading{Text: text, Style: content.HeadingStep}
}

func md(src string) content.Markdown {
	return content.Markdown{Source: src}
}

func bullets(items ...string) content.List {
	return content.List{Kind: content.Bulleted, Items: items}
}

func python(src string) content.Code {
	return content.Code{Lang: "python", Source: src}
}

func halves(left, right []content.Block) content.Columns {
	return content.Columns{Widths: []int{1, 1}, Cols: [][]content.Block{left, right}}
}
