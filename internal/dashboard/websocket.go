package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/deepdive/internal/demo"
	"github.com/ziadkadry99/deepdive/internal/perfsim"
	"github.com/ziadkadry99/deepdive/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// demoRequest is the incoming WebSocket message format on /ws/demo.
type demoRequest struct {
	Action string `json:"action"`
}

// demoResponse is the outgoing WebSocket message format on /ws/demo.
type demoResponse struct {
	Type    string        `json:"type"` // "outcome" or "error"
	Outcome *demo.Outcome `json:"outcome,omitempty"`
	Status  string        `json:"status,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// handleMetricsSocket pushes a fresh set of metric cards every interval until
// the client goes away.
func (d *Dashboard) handleMetricsSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// Detached from the request timeout; the reader below ends the stream.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	// The read side only exists to notice the client closing.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = d.sim.Stream(ctx, d.interval, func(s perfsim.Snapshot) error {
		return conn.WriteJSON(s.Cards())
	})
	if err != nil && !errors.Is(err, context.Canceled) && !isClosed(err) {
		log.Printf("dashboard: metrics stream: %v", err)
	}
}

// handleDemoSocket drives the interaction panel over a websocket. Every
// message names an action and is answered with its outcome. Outcomes are
// not flashed, so the next page render does not replay them.
func (d *Dashboard) handleDemoSocket(w http.ResponseWriter, r *http.Request) {
	// Store calls outlive the request timeout; the context ends with the
	// read loop.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()
	r = r.WithContext(ctx)

	st, err := d.sessions.Load(w, r)
	if err != nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	id := st.ID

	// w.Header() carries the session cookie for new sessions.
	conn, err := upgrader.Upgrade(w, r, w.Header())
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("dashboard: websocket read: %v", err)
			}
			return
		}

		var req demoRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			d.sendError(conn, "invalid message format")
			continue
		}
		action, ok := demo.ParseAction(req.Action)
		if !ok {
			d.sendError(conn, "unknown demo action: "+req.Action)
			continue
		}

		// Reload so presses made through the page in between are kept.
		current, err := d.sessions.Store().Get(ctx, id)
		switch {
		case err == nil:
			st = current
		case !errors.Is(err, session.ErrNotFound):
			d.sendError(conn, "session unavailable")
			continue
		}

		out := demo.Run(&st.Demo, action)
		if err := d.sessions.Save(ctx, st); err != nil {
			log.Printf("dashboard: %v", err)
			d.sendError(conn, "session unavailable")
			continue
		}
		d.sendResponse(conn, demoResponse{Type: "outcome", Outcome: &out, Status: st.Demo.Status()})
	}
}

func (d *Dashboard) sendResponse(conn *websocket.Conn, resp demoResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("dashboard: websocket write: %v", err)
	}
}

func (d *Dashboard) sendError(conn *websocket.Conn, message string) {
	d.sendResponse(conn, demoResponse{Type: "error", Error: message})
}

func isClosed(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) ||
		errors.Is(err, websocket.ErrCloseSent)
}
