package content

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/deepdive/internal/session"
)

// Section is what a tab renders: a header followed by blocks in order.
type Section struct {
	Header string
	Blocks []Block
}

// Tab is one entry in an app's tab bar.
type Tab struct {
	ID     string
	Label  string
	Render func(*session.State) Section
}

// App describes one tutorial dashboard.
type App struct {
	ID           string
	Title        string
	Icon         string
	Subtitle     string
	PageTitle    string
	SidebarTitle string
	Footer       string
	Port         int
	// CSS is appended to the shared stylesheet.
	CSS  string
	Tabs []Tab
	// PanelTab is the tab hosting the app's interactive block.
	PanelTab string
	Panel    PanelKind
}

// PanelKind says which interactive block an app hosts.
type PanelKind int

const (
	PanelNone PanelKind = iota
	// PanelDemo is the simulated MCP connection panel.
	PanelDemo
	// PanelEditor is the exercise code editor.
	PanelEditor
)

// Tab returns the tab with the given id.
func (a *App) Tab(id string) (Tab, bool) {
	for _, t := range a.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// DefaultTab returns the first tab.
func (a *App) DefaultTab() Tab {
	return a.Tabs[0]
}

// RenderTab renders a tab for the session and marks it visited.
func (a *App) RenderTab(id string, st *session.State) (Section, error) {
	t, ok := a.Tab(id)
	if !ok {
		return Section{}, fmt.Errorf("app %s has no tab %q", a.ID, id)
	}
	sec := t.Render(st)
	st.MarkVisited(t.ID)
	return sec, nil
}

// Progress returns the number of visited tabs and the total.
func (a *App) Progress(st *session.State) (visited, total int) {
	for _, t := range a.Tabs {
		if st.Visited(t.ID) {
			visited++
		}
	}
	return visited, len(a.Tabs)
}

// PlainText flattens a section into searchable text.
func PlainText(sec Section) string {
	var b strings.Builder
	b.WriteString(sec.Header)
	b.WriteByte('\n')
	for _, blk := range sec.Blocks {
		writeText(&b, blk)
	}
	return b.String()
}

func writeText(b *strings.Builder, blk Block) {
	line := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}
	switch v := blk.(type) {
	case Heading:
		line(v.Text)
	case Markdown:
		line(v.Source)
	case Card:
		line(v.Title)
		for _, l := range v.Lines {
			line(l)
		}
	case Table:
		line(strings.Join(v.Columns, " "))
		for _, r := range v.Rows {
			line(strings.Join(r, " "))
		}
	case Chart:
		line(v.Figure.Title())
	case Code:
		line(v.Caption)
	case Columns:
		for _, col := range v.Cols {
			for _, inner := range col {
				writeText(b, inner)
			}
		}
	case Metrics:
		for _, m := range v.Items {
			line(m.Label)
		}
	case List:
		for _, it := range v.Items {
			line(it)
		}
	case Alert:
		line(v.Text)
	case CodeEditor:
		line(v.Label)
	}
}
