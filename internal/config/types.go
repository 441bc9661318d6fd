package config

import "time"

// SessionDriver selects where dashboard sessions are kept.
type SessionDriver string

const (
	SessionMemory SessionDriver = "memory"
	SessionSQLite SessionDriver = "sqlite"
)

// Config is the top-level deepdive configuration, corresponding to .deepdive.yml.
type Config struct {
	Host            string         `yaml:"host" koanf:"host"`
	AllowAllOrigins bool           `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	MCP             AppConfig      `yaml:"mcp" koanf:"mcp"`
	Agents          AppConfig      `yaml:"agents" koanf:"agents"`
	Session         SessionConfig  `yaml:"session" koanf:"session"`
	Metrics         MetricsConfig  `yaml:"metrics" koanf:"metrics"`
	Launcher        LauncherConfig `yaml:"launcher" koanf:"launcher"`
}

// AppConfig holds the settings of one tutorial dashboard.
type AppConfig struct {
	Port        int  `yaml:"port" koanf:"port"`
	OpenBrowser bool `yaml:"open_browser" koanf:"open_browser"`
}

// SessionConfig controls session storage.
type SessionConfig struct {
	Driver SessionDriver `yaml:"driver" koanf:"driver"`
	Path   string        `yaml:"path" koanf:"path"` // SQLite file, sqlite driver only
	TTL    time.Duration `yaml:"ttl" koanf:"ttl"`
}

// MetricsConfig controls the simulated live metrics feed.
type MetricsConfig struct {
	Interval time.Duration `yaml:"interval" koanf:"interval"`
}

// LauncherConfig holds launcher settings.
type LauncherConfig struct {
	// RequiredFiles must exist in the working directory before a launcher
	// starts its dashboard. Entries may be doublestar patterns.
	RequiredFiles []string `yaml:"required_files" koanf:"required_files"`
}
