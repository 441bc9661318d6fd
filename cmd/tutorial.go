package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deepdive/internal/config"
	"github.com/ziadkadry99/deepdive/internal/guides/agentguide"
	"github.com/ziadkadry99/deepdive/internal/guides/mcpguide"
	"github.com/ziadkadry99/deepdive/internal/launcher"
)

// newTutorialCmd builds a launcher command for one tutorial app.
func newTutorialCmd(use, appID, title string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Args:  cobra.NoArgs,
		Short: "Launch the " + title + " tutorial in your browser",
		Long:  tutorialLong(),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			exitOnError(err)

			registry, _ := newRegistry()
			app, err := registry.Lookup(appID)
			exitOnError(err)

			appCfg, err := cfg.App(appID)
			exitOnError(err)

			l := launcher.New(launcher.Options{
				AppID:         app.ID,
				Icon:          app.Icon,
				Title:         app.Title,
				Port:          appCfg.Port,
				OpenBrowser:   appCfg.OpenBrowser,
				RequiredFiles: cfg.Launcher.RequiredFiles,
				ExtraArgs:     []string{"--config", cfgFile},
				Verbose:       verbose,
			})
			// The launcher has already reported the failure.
			if err := l.Run(cmd.Context()); err != nil {
				os.Exit(1)
			}
		},
	}
}

// tutorialLong is the help text shared by the launcher commands.
func tutorialLong() string {
	return `Checks that the required files are present in the working directory,
then starts the tutorial dashboard and opens it in your browser.
Press Ctrl+C to stop it.

By default the required files are ` + strings.Join(config.DefaultRequiredFiles, ", ") + `,
so run it from the deepdive source checkout after ` + "`deepdive init`" + ` has
written ` + config.DefaultFile + `. Set launcher.required_files in the config
(or DEEPDIVE_LAUNCHER__REQUIRED_FILES) to check other files.`
}

func init() {
	rootCmd.AddCommand(newTutorialCmd("mcp-tutorial", mcpguide.ID, "MCP Understanding"))
	rootCmd.AddCommand(newTutorialCmd("agents-tutorial", agentguide.ID, "AI Agents Deep Dive"))
}
