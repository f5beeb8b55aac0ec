// ABOUTME: MCP server command exposing coach tools over stdio.
// ABOUTME: Requires a logged-in user; tools operate on that user's records.
package main

import (
	"fmt"

	"github.com/harperreed/coach/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server (stdio)",
	Long: `Run coach as an MCP server over stdio, exposing logging and query
tools to MCP-compatible AI assistants. A user must be logged in; every
tool reads and writes that user's records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		server, err := mcp.NewServer(appStore)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
