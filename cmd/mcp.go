package cmd

import (
	"context"

	"github.com/huangsam/whatsmygrade/internal/contract"
	"github.com/huangsam/whatsmygrade/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd starts the MCP server for agent integrations.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server on stdio",
	Long: `Expose grade file parsing and expression evaluation as MCP tools.

Tools:
- get_grade_summary: parse a grade file and return the JSON grade report
- evaluate_expression: evaluate a single grade expression

The server speaks MCP over stdio, for use by editors and agents.`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(context.Background(), cfg); err != nil {
			contract.LogFatal("MCP server failed", err)
		}
	},
}
