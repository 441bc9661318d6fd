package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deepdive/internal/demo"
	mcpserver "github.com/ziadkadry99/deepdive/internal/mcp"
)

var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Run the demo billing MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server on stdio exposing the billing
tools used in the MCP tutorial (create_invoice, send_email, get_customer,
update_billing). Results are canned; nothing is billed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "%s MCP server started on stdio (tools=%d)\n", mcpserver.ServerName, len(demo.Catalog))

		return mcpserver.NewServer().Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpServerCmd)
}
