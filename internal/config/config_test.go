package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MCP.Port != 8503 {
		t.Errorf("expected default mcp.port 8503, got %d", cfg.MCP.Port)
	}
	if cfg.Agents.Port != 8504 {
		t.Errorf("expected default agents.port 8504, got %d", cfg.Agents.Port)
	}
	if !cfg.MCP.OpenBrowser || !cfg.Agents.OpenBrowser {
		t.Error("expected browsers to open by default")
	}
	if cfg.Session.Driver != SessionMemory {
		t.Errorf("expected default session driver %q, got %q", SessionMemory, cfg.Session.Driver)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("expected default session ttl 24h, got %s", cfg.Session.TTL)
	}
	if cfg.Metrics.Interval != 2*time.Second {
		t.Errorf("expected default metrics interval 2s, got %s", cfg.Metrics.Interval)
	}
	if len(cfg.Launcher.RequiredFiles) != 3 || cfg.Launcher.RequiredFiles[0] != ".deepdive.yml" {
		t.Errorf("unexpected required files: %v", cfg.Launcher.RequiredFiles)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.deepdive.yml")

	original := DefaultConfig()
	original.Host = "127.0.0.1"
	original.MCP.Port = 9503
	original.Agents.OpenBrowser = false
	original.Session.Driver = SessionSQLite
	original.Session.TTL = 90 * time.Minute
	original.Metrics.Interval = 500 * time.Millisecond
	original.Launcher.RequiredFiles = []string{"go.mod"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Host != original.Host {
		t.Errorf("host: got %q, want %q", loaded.Host, original.Host)
	}
	if loaded.MCP.Port != original.MCP.Port {
		t.Errorf("mcp.port: got %d, want %d", loaded.MCP.Port, original.MCP.Port)
	}
	if loaded.Agents.OpenBrowser {
		t.Error("agents.open_browser: got true, want false")
	}
	if loaded.Session.Driver != SessionSQLite {
		t.Errorf("session.driver: got %q, want %q", loaded.Session.Driver, SessionSQLite)
	}
	if loaded.Session.TTL != original.Session.TTL {
		t.Errorf("session.ttl: got %s, want %s", loaded.Session.TTL, original.Session.TTL)
	}
	if loaded.Metrics.Interval != original.Metrics.Interval {
		t.Errorf("metrics.interval: got %s, want %s", loaded.Metrics.Interval, original.Metrics.Interval)
	}
	if len(loaded.Launcher.RequiredFiles) != 1 || loaded.Launcher.RequiredFiles[0] != "go.mod" {
		t.Errorf("launcher.required_files: got %v", loaded.Launcher.RequiredFiles)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("agents:\n  port: 9000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Agents.Port != 9000 {
		t.Errorf("agents.port: got %d, want 9000", cfg.Agents.Port)
	}
	if cfg.MCP.Port != DefaultMCPPort {
		t.Errorf("mcp.port should keep its default, got %d", cfg.MCP.Port)
	}
	if !cfg.Agents.OpenBrowser {
		t.Error("agents.open_browser should keep its default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.MCP.Port != DefaultMCPPort {
		t.Errorf("expected default port, got %d", cfg.MCP.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DEEPDIVE_MCP__PORT", "9100")
	t.Setenv("DEEPDIVE_MCP__OPEN_BROWSER", "false")
	t.Setenv("DEEPDIVE_SESSION__TTL", "1h")
	t.Setenv("DEEPDIVE_ALLOW_ALL_ORIGINS", "true")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.MCP.Port != 9100 {
		t.Errorf("env override failed: got %d, want 9100", loaded.MCP.Port)
	}
	if loaded.MCP.OpenBrowser {
		t.Error("env override of mcp.open_browser failed")
	}
	if loaded.Session.TTL != time.Hour {
		t.Errorf("env override of session.ttl failed: got %s", loaded.Session.TTL)
	}
	if !loaded.AllowAllOrigins {
		t.Error("env override of allow_all_origins failed")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"DEEPDIVE_HOST":                     "host",
		"DEEPDIVE_AGENTS__PORT":             "agents.port",
		"DEEPDIVE_LAUNCHER__REQUIRED_FILES": "launcher.required_files",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"sqlite", func(c *Config) { c.Session.Driver = SessionSQLite }, false},
		{"port zero", func(c *Config) { c.MCP.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Agents.Port = 70000 }, true},
		{"same ports", func(c *Config) { c.Agents.Port = c.MCP.Port }, true},
		{"unknown driver", func(c *Config) { c.Session.Driver = "redis" }, true},
		{"sqlite without path", func(c *Config) { c.Session.Driver = SessionSQLite; c.Session.Path = "" }, true},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, true},
		{"zero interval", func(c *Config) { c.Metrics.Interval = 0 }, true},
		{"no required files", func(c *Config) { c.Launcher.RequiredFiles = nil }, true},
		{"blank required file", func(c *Config) { c.Launcher.RequiredFiles = []string{"go.mod", " "} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApp(t *testing.T) {
	cfg := DefaultConfig()
	a, err := cfg.App("agents")
	if err != nil || a.Port != DefaultAgentsPort {
		t.Errorf("App(agents) = %+v, %v", a, err)
	}
	if _, err := cfg.App("nope"); err == nil {
		t.Error("expected error for unknown app")
	}
}

func TestDefaultsAreNotShared(t *testing.T) {
	a := DefaultConfig()
	a.Launcher.RequiredFiles[0] = "changed"
	if DefaultConfig().Launcher.RequiredFiles[0] != DefaultFile {
		t.Error("DefaultConfig should return independent slices")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.go", []string{"**/*.go"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestValidatePort(t *testing.T) {
	for _, s := range []string{"8503", " 80 "} {
		if err := validatePort(s); err != nil {
			t.Errorf("validatePort(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"", "abc", "0", "65536"} {
		if err := validatePort(s); err == nil {
			t.Errorf("validatePort(%q) should fail", s)
		}
	}
}
