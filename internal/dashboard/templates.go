package dashboard

import (
	"bytes"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/deepdive/internal/render"
	"github.com/ziadkadry99/deepdive/internal/session"
)

// ServeIndex renders the full page for the tab named by ?tab=, defaulting to
// the first tab.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = d.app.DefaultTab().ID
	}
	d.serveTab(w, r, tab, true)
}

func (d *Dashboard) handleTab(w http.ResponseWriter, r *http.Request) {
	d.serveTab(w, r, chi.URLParam(r, "tab"), false)
}

func (d *Dashboard) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(render.Stylesheet(d.app)))
}

// serveTab re-renders a tab top to bottom for the request's session. Any
// pending flash is consumed by the render and the session saved afterwards.
func (d *Dashboard) serveTab(w http.ResponseWriter, r *http.Request, tab string, full bool) {
	if _, ok := d.app.Tab(tab); !ok {
		http.Error(w, "unknown tab: "+tab, http.StatusNotFound)
		return
	}

	st, err := d.sessions.Load(w, r)
	if err != nil {
		log.Printf("dashboard: loading session: %v", err)
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	sec, err := d.app.RenderTab(tab, st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if full {
		err = d.renderer.Page(&buf, render.Page{App: d.app, Tab: tab, Section: sec, State: st})
	} else {
		err = d.renderer.Section(&buf, sec)
	}
	if err != nil {
		log.Printf("dashboard: rendering %s/%s: %v", d.app.ID, tab, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	if err := d.save(r, st); err != nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (d *Dashboard) save(r *http.Request, st *session.State) error {
	if err := d.sessions.Save(r.Context(), st); err != nil {
		log.Printf("dashboard: %v", err)
		return err
	}
	return nil
}
