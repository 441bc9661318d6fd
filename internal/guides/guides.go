// Package guides is the catalog of tutorial apps.
package guides

import (
	"fmt"
	"sort"

	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/guides/agentguide"
	"github.com/ziadkadry99/deepdive/internal/guides/mcpguide"
	"github.com/ziadkadry99/deepdive/internal/perfsim"
)

// Registry holds the apps by id.
type Registry struct {
	apps map[string]*content.App
}

// New builds a registry with both tutorials.
func New(sim *perfsim.Simulator) *Registry {
	r := &Registry{apps: make(map[string]*content.App)}
	r.add(mcpguide.New(sim))
	r.add(agentguide.New())
	return r
}

func (r *Registry) add(app *content.App) {
	r.apps[app.ID] = app
}

// Lookup returns the app with the given id.
func (r *Registry) Lookup(id string) (*content.App, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, fmt.Errorf("unknown app %q (available: %v)", id, r.IDs())
	}
	return app, nil
}

// IDs returns the registered app ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.apps))
	for id := range r.apps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns every app in id order.
func (r *Registry) All() []*content.App {
	var out []*content.App
	for _, id := range r.IDs() {
		out = append(out, r.apps[id])
	}
	return out
}
