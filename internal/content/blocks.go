package content

import (
	"github.com/ziadkadry99/deepdive/internal/chart"
	"github.com/ziadkadry99/deepdive/internal/demo"
)

// Block is one renderable piece of a tab section.
type Block interface {
	block()
}

// HeadingStyle selects how a heading is drawn.
type HeadingStyle int

const (
	// HeadingPlain is a markdown-style heading of the given level.
	HeadingPlain HeadingStyle = iota
	// HeadingSection is the large section title at the top of a tab.
	HeadingSection
	// HeadingStep is the accented step title used by the agents tutorial.
	HeadingStep
)

// Heading is a title line.
type Heading struct {
	Text  string
	Style HeadingStyle
	// Level applies to HeadingPlain only (3 or 4).
	Level int
}

// Markdown is prose rendered through goldmark.
type Markdown struct {
	Source string
}

// Card is a centered gradient badge with a title and caption lines.
type Card struct {
	Title string
	Lines []string
}

// Table is a header row plus ordered body rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Row is implemented by the typed row structs each table is built from.
type Row interface {
	Cells() []string
}

// NewTable builds a table from typed rows, keeping their order.
func NewTable[R Row](columns []string, rows []R) Table {
	t := Table{Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Cells())
	}
	return t
}

// Chart embeds a plotly figure.
type Chart struct {
	Figure chart.Figure
}

// Code is a highlighted source listing.
type Code struct {
	Lang   string
	Source string
	// Caption is shown in bold above the listing when set.
	Caption string
}

// Columns lays blocks out side by side. Widths are relative weights; nil
// means equal widths.
type Columns struct {
	Widths []int
	Cols   [][]Block
}

// Metric is one labelled value with its change since the last reading.
type Metric struct {
	Label string
	Value string
	Delta string
}

// Metrics is a row of metric cards. Live cards are refreshed over the
// metrics websocket.
type Metrics struct {
	Items []Metric
	Live  bool
}

// Divider is a horizontal rule.
type Divider struct{}

// ListKind selects list markers.
type ListKind int

const (
	Bulleted ListKind = iota
	Numbered
	Checklist
)

// List is a sequence of markdown items.
type List struct {
	Kind  ListKind
	Items []string
}

// DemoPanel is the simulated MCP interaction panel.
type DemoPanel struct {
	Connection demo.Connection
	// Outcome is the result of the last button press, if any.
	Outcome *demo.Outcome
}

// CodeEditor is the exercise editor with its Run Code button.
type CodeEditor struct {
	Label       string
	Placeholder string
	Code        string
	Outcome     *demo.Outcome
}

// Alert kinds.
const (
	AlertSuccess = "success"
	AlertWarning = "warning"
	AlertInfo    = "info"
)

// Alert is a colored callout box.
type Alert struct {
	Kind string
	Text string
}

func (Heading) block()    {}
func (Markdown) block()   {}
func (Card) block()       {}
func (Table) block()      {}
func (Chart) block()      {}
func (Code) block()       {}
func (Columns) block()    {}
func (Metrics) block()    {}
func (Divider) block()    {}
func (List) block()       {}
func (DemoPanel) block()  {}
func (CodeEditor) block() {}
func (Alert) block()      {}
