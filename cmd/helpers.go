package cmd

import (
	"fmt"
	"log"

	"github.com/ziadkadry99/deepdive/internal/config"
	"github.com/ziadkadry99/deepdive/internal/db"
	"github.com/ziadkadry99/deepdive/internal/guides"
	"github.com/ziadkadry99/deepdive/internal/perfsim"
	"github.com/ziadkadry99/deepdive/internal/session"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `deepdive init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newRegistry builds the tutorial catalog around a clock-seeded simulator.
func newRegistry() (*guides.Registry, *perfsim.Simulator) {
	sim := perfsim.NewDefault()
	return guides.New(sim), sim
}

// openSessionStore creates the session store selected by config. The
// returned close function releases the database, if any.
func openSessionStore(cfg *config.Config) (session.Store, func(), error) {
	switch cfg.Session.Driver {
	case config.SessionSQLite:
		database, err := db.Open(cfg.Session.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening session database: %w", err)
		}
		if verbose {
			log.Printf("sessions: sqlite at %s", database.Path())
		}
		return session.NewSQLStore(database, cfg.Session.TTL), func() { database.Close() }, nil
	default:
		return session.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	}
}
