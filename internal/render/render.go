// Package render turns tab sections into HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/demo"
	"github.com/ziadkadry99/deepdive/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed templates/base.css
var baseCSS string

//go:embed templates/app.js
var appJS string

// PlotlyURL is the plotly.js bundle charts are drawn with.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Renderer converts content blocks to HTML. It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	tmpl   *template.Template
	static bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// Static renders pages for a static export: tab links point at sibling
// .html files and interactive blocks are replaced with notices.
func Static() Option {
	return func(r *Renderer) { r.static = true }
}

// New creates a Renderer.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
	for _, o := range opts {
		o(r)
	}

	tmpl, err := template.New("render").Funcs(template.FuncMap{
		"block_html":  r.blockHTML,
		"delta_class": deltaClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Stylesheet returns the shared CSS followed by the app's own rules.
func Stylesheet(app *content.App) string {
	return baseCSS + app.CSS
}

// Page is everything needed to draw one full dashboard page.
type Page struct {
	App     *content.App
	Tab     string
	Section content.Section
	// State may be nil for static pages.
	State *session.State
}

type tabLink struct {
	ID      string
	Label   string
	Href    string
	Active  bool
	Visited bool
}

type pageView struct {
	PageTitle    string
	Title        string
	Icon         string
	Subtitle     string
	SidebarTitle string
	Footer       string
	CSS          template.CSS
	PlotlyURL    string
	Tabs         []tabLink
	ActiveTab    string
	Visited      int
	Total        int
	Percent      int
	Body         template.HTML
	Static       bool
	Script       template.JS
}

// TabHref returns the link for a tab.
func (r *Renderer) TabHref(id string) string {
	if r.static {
		return id + ".html"
	}
	return "/?tab=" + id
}

// Page writes a complete HTML page.
func (r *Renderer) Page(w io.Writer, p Page) error {
	body, err := r.SectionHTML(p.Section)
	if err != nil {
		return err
	}

	v := pageView{
		PageTitle:    p.App.PageTitle,
		Title:        p.App.Title,
		Icon:         p.App.Icon,
		Subtitle:     p.App.Subtitle,
		SidebarTitle: p.App.SidebarTitle,
		Footer:       p.App.Footer,
		CSS:          template.CSS(Stylesheet(p.App)),
		PlotlyURL:    PlotlyURL,
		ActiveTab:    p.Tab,
		Body:         body,
		Static:       r.static,
		Script:       template.JS(appJS),
	}
	for _, t := range p.App.Tabs {
		link := tabLink{ID: t.ID, Label: t.Label, Href: r.TabHref(t.ID), Active: t.ID == p.Tab}
		if p.State != nil {
			link.Visited = p.State.Visited(t.ID)
		}
		v.Tabs = append(v.Tabs, link)
	}
	if p.State != nil {
		v.Visited, v.Total = p.App.Progress(p.State)
		if v.Total > 0 {
			v.Percent = v.Visited * 100 / v.Total
		}
	}

	return r.tmpl.ExecuteTemplate(w, "page", v)
}

// Section writes a tab section without the surrounding page.
func (r *Renderer) Section(w io.Writer, sec content.Section) error {
	return r.tmpl.ExecuteTemplate(w, "section", sec)
}

// SectionHTML renders a tab section to a string.
func (r *Renderer) SectionHTML(sec content.Section) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Section(&buf, sec); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Markdown converts markdown source to HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// inline renders a one-line markdown snippet without the paragraph wrapper.
func (r *Renderer) inline(src string) (template.HTML, error) {
	h, err := r.Markdown(src)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(h))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	return template.HTML(s), nil
}

// highlight renders source code through the markdown highlighter.
func (r *Renderer) highlight(lang, src string) (template.HTML, error) {
	return r.Markdown("~~~" + lang + "\n" + strings.TrimRight(src, "\n") + "\n~~~\n")
}

type codeView struct {
	Caption string
	HTML    template.HTML
}

type columnView struct {
	Weight int
	Blocks []content.Block
}

type listView struct {
	Kind  content.ListKind
	Items []template.HTML
}

type panelView struct {
	Connected bool
	Status    string
	Outcome   *demo.Outcome
	Static    bool
}

type editorView struct {
	Label       string
	Placeholder string
	Code        string
	Outcome     *demo.Outcome
	Static      bool
}

func (r *Renderer) blockHTML(b content.Block) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.writeBlock(&buf, b); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) writeBlock(w *bytes.Buffer, b content.Block) error {
	switch v := b.(type) {
	case content.Heading:
		return r.tmpl.ExecuteTemplate(w, "heading", v)

	case content.Markdown:
		h, err := r.Markdown(v.Source)
		if err != nil {
			return err
		}
		w.WriteString(string(h))
		return nil

	case content.Card:
		return r.tmpl.ExecuteTemplate(w, "card", v)

	case content.Table:
		return r.tmpl.ExecuteTemplate(w, "table", v)

	case content.Chart:
		js, err := v.Figure.JSON()
		if err != nil {
			return fmt.Errorf("encoding chart %q: %w", v.Figure.Title(), err)
		}
		return r.tmpl.ExecuteTemplate(w, "chart", string(js))

	case content.Code:
		h, err := r.highlight(v.Lang, v.Source)
		if err != nil {
			return err
		}
		return r.tmpl.ExecuteTemplate(w, "code", codeView{Caption: v.Caption, HTML: h})

	case content.Columns:
		cols := make([]columnView, len(v.Cols))
		for i, blocks := range v.Cols {
			cols[i] = columnView{Weight: 1, Blocks: blocks}
			if i < len(v.Widths) && v.Widths[i] > 0 {
				cols[i].Weight = v.Widths[i]
			}
		}
		return r.tmpl.ExecuteTemplate(w, "columns", cols)

	case content.Metrics:
		return r.tmpl.ExecuteTemplate(w, "metrics", v)

	case content.Divider:
		w.WriteString("<hr>")
		return nil

	case content.List:
		lv := listView{Kind: v.Kind, Items: make([]template.HTML, len(v.Items))}
		for i, it := range v.Items {
			h, err := r.inline(it)
			if err != nil {
				return err
			}
			lv.Items[i] = h
		}
		return r.tmpl.ExecuteTemplate(w, "list", lv)

	case content.Alert:
		return r.tmpl.ExecuteTemplate(w, "alert", v)

	case content.DemoPanel:
		return r.tmpl.ExecuteTemplate(w, "demo_panel", panelView{
			Connected: v.Connection.Connected,
			Status:    v.Connection.Status(),
			Outcome:   v.Outcome,
			Static:    r.static,
		})

	case content.CodeEditor:
		return r.tmpl.ExecuteTemplate(w, "code_editor", editorView{
			Label:       v.Label,
			Placeholder: v.Placeholder,
			Code:        v.Code,
			Outcome:     v.Outcome,
			Static:      r.static,
		})
	}
	return fmt.Errorf("unsupported block %T", b)
}

func deltaClass(delta string) string {
	if strings.HasPrefix(delta, "-") {
		return "delta-down"
	}
	return "delta-up"
}
