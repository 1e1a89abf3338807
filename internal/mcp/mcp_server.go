// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/whatsmygrade/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the whatsmygrade MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Grade Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: get_grade_summary ---
	s.AddTool(mcp.NewTool("get_grade_summary",
		mcp.WithDescription("Parse a grade file and compute the grade report: the final percentage, or the minimum score needed in unknown categories to pass."),
		mcp.WithString("path", mcp.Description("Path to the grade file."), mcp.Required()),
		mcp.WithNumber("passing_grade", mcp.Description("Fallback passing threshold as a fraction of 1.0, used when the file's [config] section does not set one. Defaults to 0.5.")),
	), h.handleGetGradeSummary)

	// --- 2. Tool: evaluate_expression ---
	s.AddTool(mcp.NewTool("evaluate_expression",
		mcp.WithDescription("Evaluate a single grade expression (percent literal, grade_parts, grade_multiple, percent or unknown) and return the resulting value."),
		mcp.WithString("expression", mcp.Description("The expression to evaluate."), mcp.Required()),
	), h.handleEvaluateExpression)

	return s
}

// StartMCPServer starts the whatsmygrade MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
