package cmd

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/deepdive/internal/config"
)

func TestTutorialHelpNamesRequiredFiles(t *testing.T) {
	for _, use := range []string{"mcp-tutorial", "agents-tutorial"} {
		c, _, err := rootCmd.Find([]string{use})
		if err != nil {
			t.Fatalf("%s: %v", use, err)
		}
		for _, want := range append([]string{"launcher.required_files", "deepdive init"}, config.DefaultRequiredFiles...) {
			if !strings.Contains(c.Long, want) {
				t.Errorf("%s help should mention %q", use, want)
			}
		}
	}
}
