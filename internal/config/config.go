package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: DEEPDIVE_MCP__PORT sets mcp.port.
const EnvPrefix = "DEEPDIVE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DEEPDIVE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps DEEPDIVE_SESSION__TTL to session.ttl.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validDrivers is the set of recognized session drivers.
var validDrivers = map[SessionDriver]bool{
	SessionMemory: true,
	SessionSQLite: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	for _, a := range []struct {
		name string
		app  AppConfig
	}{{"mcp", c.MCP}, {"agents", c.Agents}} {
		if a.app.Port < 1 || a.app.Port > 65535 {
			return fmt.Errorf("invalid %s.port %d: must be between 1 and 65535", a.name, a.app.Port)
		}
	}
	if c.MCP.Port == c.Agents.Port {
		return fmt.Errorf("mcp.port and agents.port must differ (both %d)", c.MCP.Port)
	}

	if !validDrivers[c.Session.Driver] {
		return fmt.Errorf("invalid session.driver %q: must be one of memory, sqlite", c.Session.Driver)
	}
	if c.Session.Driver == SessionSQLite && c.Session.Path == "" {
		return fmt.Errorf("session.path is required for the sqlite driver")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}

	if c.Metrics.Interval <= 0 {
		return fmt.Errorf("metrics.interval must be positive")
	}

	if len(c.Launcher.RequiredFiles) == 0 {
		return fmt.Errorf("launcher.required_files must not be empty")
	}
	for _, f := range c.Launcher.RequiredFiles {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("launcher.required_files contains an empty entry")
		}
	}

	return nil
}

// App returns the settings of the dashboard with the given id.
func (c *Config) App(id string) (AppConfig, error) {
	switch id {
	case "mcp":
		return c.MCP, nil
	case "agents":
		return c.Agents, nil
	default:
		return AppConfig{}, fmt.Errorf("no settings for app %q", id)
	}
}
