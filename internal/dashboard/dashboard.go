package dashboard

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/perfsim"
	"github.com/ziadkadry99/deepdive/internal/render"
	"github.com/ziadkadry99/deepdive/internal/session"
)

// DefaultMetricsInterval is how often live metrics are pushed when no
// interval is configured.
const DefaultMetricsInterval = 2 * time.Second

// Dashboard serves one tutorial app: its pages, the interactive panel and
// the live metrics feed.
type Dashboard struct {
	app      *content.App
	sessions *session.Manager
	renderer *render.Renderer
	sim      *perfsim.Simulator
	interval time.Duration
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithMetricsInterval sets the live metrics push interval.
func WithMetricsInterval(d time.Duration) Option {
	return func(db *Dashboard) {
		if d > 0 {
			db.interval = d
		}
	}
}

// New creates a new Dashboard for app.
func New(app *content.App, sessions *session.Manager, renderer *render.Renderer, sim *perfsim.Simulator, opts ...Option) *Dashboard {
	d := &Dashboard{
		app:      app,
		sessions: sessions,
		renderer: renderer,
		sim:      sim,
		interval: DefaultMetricsInterval,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// App returns the app being served.
func (d *Dashboard) App() *content.App { return d.app }

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/tabs/{tab}", d.handleTab)
	r.Get("/style.css", d.handleStylesheet)

	r.Get("/api/session", d.handleSession)
	r.Get("/api/metrics", d.handleMetrics)
	r.Get("/ws/metrics", d.handleMetricsSocket)

	switch d.app.Panel {
	case content.PanelDemo:
		r.Post("/demo/{action}", d.handleDemoForm)
		r.Post("/api/demo/{action}", d.handleDemoAPI)
		r.Get("/ws/demo", d.handleDemoSocket)
	case content.PanelEditor:
		r.Post("/exercises/run", d.handleRunCode)
	}
}
