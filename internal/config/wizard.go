package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to deepdive! Let's configure the tutorials.")
	fmt.Println()

	cfg := DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Updating existing %s\n\n", path)
		if existing, err := Load(path); err == nil {
			cfg = existing
		}
	}

	// 1. Ports.
	mcpPort, err := promptPort("Port for MCP Understanding", cfg.MCP.Port)
	if err != nil {
		return nil, err
	}
	agentsPort, err := promptPort("Port for AI Agents Deep Dive", cfg.Agents.Port)
	if err != nil {
		return nil, err
	}

	// 2. Browser.
	browserPrompt := promptui.Select{
		Label: "Open a browser when a tutorial starts",
		Items: []string{"yes", "no"},
	}
	browserIdx, _, err := browserPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("browser selection: %w", err)
	}
	openBrowser := browserIdx == 0

	// 3. Session storage.
	driverPrompt := promptui.Select{
		Label: "Where should tutorial progress be kept",
		Items: []string{
			"memory — lost when the dashboard stops",
			"sqlite — kept in a local database file",
		},
	}
	driverIdx, _, err := driverPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("session driver selection: %w", err)
	}
	drivers := []SessionDriver{SessionMemory, SessionSQLite}
	cfg.Session.Driver = drivers[driverIdx]

	if cfg.Session.Driver == SessionSQLite {
		pathPrompt := promptui.Prompt{
			Label:   "Session database path",
			Default: cfg.Session.Path,
		}
		cfg.Session.Path, err = pathPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("session path: %w", err)
		}
	}

	// 4. Required files.
	filesPrompt := promptui.Prompt{
		Label:   "Files the launchers require (comma-separated, globs allowed)",
		Default: strings.Join(cfg.Launcher.RequiredFiles, ","),
	}
	filesStr, err := filesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("required files: %w", err)
	}
	if files := splitAndTrim(filesStr); len(files) > 0 {
		cfg.Launcher.RequiredFiles = files
	}

	cfg.MCP = AppConfig{Port: mcpPort, OpenBrowser: openBrowser}
	cfg.Agents = AppConfig{Port: agentsPort, OpenBrowser: openBrowser}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func promptPort(label string, def int) (int, error) {
	p := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(def),
		Validate: validatePort,
	}
	s, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", strings.ToLower(label), err)
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
