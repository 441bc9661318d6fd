package session

import (
	"time"

	"github.com/ziadkadry99/deepdive/internal/demo"
)

// State is everything one browser session carries across re-renders. It is
// passed explicitly to every tab render function; there is no package-level
// session.
type State struct {
	ID        string          `json:"id"`
	App       string          `json:"app"`
	Demo      demo.Connection `json:"demo"`
	Progress  map[string]bool `json:"progress"`
	Code      string          `json:"code,omitempty"`
	Flash     *demo.Outcome   `json:"flash,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// New returns a fresh, disconnected state.
func New(id, app string) *State {
	now := time.Now().UTC()
	return &State{
		ID:        id,
		App:       app,
		Progress:  make(map[string]bool),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkVisited records that a tab has been rendered for this session.
func (s *State) MarkVisited(tab string) {
	if s.Progress == nil {
		s.Progress = make(map[string]bool)
	}
	s.Progress[tab] = true
}

// Visited reports whether the tab has been rendered before.
func (s *State) Visited(tab string) bool {
	return s.Progress[tab]
}

// SetFlash stores an outcome to show on the next render.
func (s *State) SetFlash(o demo.Outcome) {
	s.Flash = &o
}

// TakeFlash returns the pending outcome for the given action, if any, and
// clears it so it renders exactly once.
func (s *State) TakeFlash(actions ...demo.Action) (demo.Outcome, bool) {
	if s.Flash == nil {
		return demo.Outcome{}, false
	}
	for _, a := range actions {
		if s.Flash.Action == a {
			o := *s.Flash
			s.Flash = nil
			return o, true
		}
	}
	return demo.Outcome{}, false
}
