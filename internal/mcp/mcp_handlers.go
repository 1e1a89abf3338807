package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/whatsmygrade/core"
	"github.com/huangsam/whatsmygrade/core/expr"
	"github.com/huangsam/whatsmygrade/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleGetGradeSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	path := request.GetString("path", "")
	if p := request.GetFloat("passing_grade", 0); p > 0 {
		cfg.PassingGrade = p
	}

	file, err := core.LoadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse failed: %v", err)), nil
	}
	if !file.Config.PassingGradeSet {
		file.Config.PassingGrade = cfg.PassingGrade
	}

	report, err := core.BuildReport(file)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleEvaluateExpression(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression := request.GetString("expression", "")

	value, err := expr.Evaluate(expression)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	result := map[string]any{"unknown": value.IsUnknown()}
	if !value.IsUnknown() {
		result["score"] = value.Score()
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
