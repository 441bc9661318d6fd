package dashboard

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/deepdive/internal/demo"
	"github.com/ziadkadry99/deepdive/internal/perfsim"
)

// sessionResponse is the JSON response for the session endpoint.
type sessionResponse struct {
	ID        string          `json:"id"`
	App       string          `json:"app"`
	Connected bool            `json:"connected"`
	Status    string          `json:"status"`
	Visited   int             `json:"visited"`
	Total     int             `json:"total"`
	Progress  map[string]bool `json:"progress"`
}

// metricsResponse is the JSON response for the metrics endpoint.
type metricsResponse struct {
	Snapshot perfsim.Snapshot `json:"snapshot"`
	Cards    []perfsim.Card   `json:"cards"`
}

// handleDemoForm runs a panel button press, flashes the outcome and sends
// the browser back to the panel.
func (d *Dashboard) handleDemoForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := d.runDemo(w, r); !ok {
		return
	}
	http.Redirect(w, r, "/?tab="+d.app.PanelTab+"#demo", http.StatusSeeOther)
}

func (d *Dashboard) handleDemoAPI(w http.ResponseWriter, r *http.Request) {
	out, ok := d.runDemo(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// runDemo applies the action named in the route to the session. On failure
// the error response has already been written.
func (d *Dashboard) runDemo(w http.ResponseWriter, r *http.Request) (demo.Outcome, bool) {
	action, ok := demo.ParseAction(chi.URLParam(r, "action"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown demo action: " + chi.URLParam(r, "action")})
		return demo.Outcome{}, false
	}

	st, err := d.sessions.Load(w, r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return demo.Outcome{}, false
	}

	out := demo.Run(&st.Demo, action)
	st.SetFlash(out)
	if err := d.save(r, st); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return demo.Outcome{}, false
	}
	return out, true
}

// handleRunCode stores the submitted exercise code and flashes the simulated
// run result.
func (d *Dashboard) handleRunCode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	st, err := d.sessions.Load(w, r)
	if err != nil {
		log.Printf("dashboard: loading session: %v", err)
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	st.Code = r.PostFormValue("code")
	st.SetFlash(demo.RunCode(st.Code))
	if err := d.save(r, st); err != nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/?tab="+d.app.PanelTab+"#editor", http.StatusSeeOther)
}

func (d *Dashboard) handleSession(w http.ResponseWriter, r *http.Request) {
	st, err := d.sessions.Load(w, r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if err := d.save(r, st); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	visited, total := d.app.Progress(st)
	writeJSON(w, http.StatusOK, sessionResponse{
		ID:        st.ID,
		App:       d.app.ID,
		Connected: st.Demo.Connected,
		Status:    st.Demo.Status(),
		Visited:   visited,
		Total:     total,
		Progress:  st.Progress,
	})
}

func (d *Dashboard) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snap := d.sim.Snapshot()
	writeJSON(w, http.StatusOK, metricsResponse{Snapshot: snap, Cards: snap.Cards()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
