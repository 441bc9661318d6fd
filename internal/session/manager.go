package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// CookiePrefix starts the name of every session cookie. Browsers share
// cookies across ports, so each app gets its own cookie.
const CookiePrefix = "deepdive_session"

// CookieName returns the cookie carrying the session id of app.
func CookieName(app string) string {
	return CookiePrefix + "_" + app
}

// Manager binds sessions to browser cookies.
type Manager struct {
	store  Store
	app    string
	cookie string
}

// NewManager creates a Manager whose new sessions belong to app.
func NewManager(store Store, app string) *Manager {
	return &Manager{store: store, app: app, cookie: CookieName(app)}
}

// Store returns the underlying store.
func (m *Manager) Store() Store { return m.store }

// CookieName returns the name of the cookie this manager issues.
func (m *Manager) CookieName() string { return m.cookie }

// Load returns the session for the request, creating a fresh one when the
// cookie is missing, unknown, expired or belongs to another app. The cookie
// is (re)issued on w.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (*State, error) {
	if c, err := r.Cookie(m.cookie); err == nil && c.Value != "" {
		st, err := m.store.Get(r.Context(), c.Value)
		if err == nil && st.App == m.app {
			return st, nil
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	st := New(uuid.NewString(), m.app)
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    st.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return st, nil
}

// Save persists the session.
func (m *Manager) Save(ctx context.Context, st *State) error {
	if err := m.store.Save(ctx, st); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
