package config

import "time"

// Default ports of the two dashboards.
const (
	DefaultMCPPort    = 8503
	DefaultAgentsPort = 8504
)

// DefaultFile is the config file read when --config is not given.
const DefaultFile = ".deepdive.yml"

// DefaultRequiredFiles are checked by the launchers when the config does not
// list its own.
var DefaultRequiredFiles = []string{
	DefaultFile,
	"go.mod",
	"main.go",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MCP: AppConfig{
			Port:        DefaultMCPPort,
			OpenBrowser: true,
		},
		Agents: AppConfig{
			Port:        DefaultAgentsPort,
			OpenBrowser: true,
		},
		Session: SessionConfig{
			Driver: SessionMemory,
			Path:   ".deepdive/sessions.db",
			TTL:    24 * time.Hour,
		},
		Metrics: MetricsConfig{
			Interval: 2 * time.Second,
		},
		Launcher: LauncherConfig{
			RequiredFiles: append([]string(nil), DefaultRequiredFiles...),
		},
	}
}
