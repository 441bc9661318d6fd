package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/progress"
	"github.com/ziadkadry99/deepdive/internal/render"
	"github.com/ziadkadry99/deepdive/internal/session"
)

// SiteGenerator renders every tab of a tutorial app into a static HTML site.
type SiteGenerator struct {
	App       *content.App
	OutputDir string
	Reporter  progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator for app writing into outputDir.
func NewSiteGenerator(app *content.App, outputDir string, reporter progress.Reporter) *SiteGenerator {
	if reporter == nil {
		reporter = progress.Discard{}
	}
	return &SiteGenerator{
		App:       app,
		OutputDir: outputDir,
		Reporter:  reporter,
	}
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *SiteGenerator) Generate() (int, error) {
	if len(g.App.Tabs) == 0 {
		return 0, fmt.Errorf("app %s has no tabs", g.App.ID)
	}

	r, err := render.New(render.Static())
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(render.Stylesheet(g.App)), 0o644); err != nil {
		return 0, err
	}

	// One state for the whole export; it is never shown since static pages
	// carry no progress bar.
	st := session.New("export", g.App.ID)

	var entries []SearchEntry
	g.Reporter.Start(len(g.App.Tabs))
	for i, tab := range g.App.Tabs {
		g.Reporter.Update(i, "Exporting "+tab.ID)

		sec, err := g.App.RenderTab(tab.ID, st)
		if err != nil {
			return i, err
		}

		var buf bytes.Buffer
		if err := r.Page(&buf, render.Page{App: g.App, Tab: tab.ID, Section: sec}); err != nil {
			return i, fmt.Errorf("rendering %s: %w", tab.ID, err)
		}

		name := r.TabHref(tab.ID)
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), buf.Bytes(), 0o644); err != nil {
			return i, err
		}
		if i == 0 {
			if err := os.WriteFile(filepath.Join(g.OutputDir, "index.html"), buf.Bytes(), 0o644); err != nil {
				return i, err
			}
		}

		entries = append(entries, buildSearchEntry(name, tab, sec))
	}
	g.Reporter.Update(len(g.App.Tabs), "Writing search index")

	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return len(entries), fmt.Errorf("writing search index: %w", err)
	}
	g.Reporter.Finish()

	return len(entries), nil
}
