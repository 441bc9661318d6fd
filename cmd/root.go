package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deepdive/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "deepdive",
	Short: "Interactive tutorials on MCP and AI agents",
	Long: `deepdive serves two interactive tutorial dashboards in your browser:
"MCP Understanding" explains the Model Context Protocol, and
"AI Agents Deep Dive" walks from agent concepts to production.
Start one with ` + "`deepdive mcp-tutorial`" + ` or ` + "`deepdive agents-tutorial`" + `.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
