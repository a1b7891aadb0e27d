package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samhoang/repotwin/core"
	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// applyCommonArgs copies the shared scan arguments onto a cloned config.
func applyCommonArgs(cfg *contract.Config, request mcp.CallToolRequest) error {
	root := request.GetString("root_path", "")
	if root == "" {
		return fmt.Errorf("root_path is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("invalid root_path %q: %w", root, err)
	}
	cfg.RootPath = abs

	if name := request.GetString("name", ""); name != "" {
		cfg.NamePrefix = name
	}
	if depth := request.GetInt("max_depth", 0); depth > 0 {
		cfg.MaxDepth = depth
	}
	return nil
}

func (h *toolHandler) handleRankVariants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyCommonArgs(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scan parameters: %v", err)), nil
	}
	cfg.ComputeBest = true
	cfg.DiffLevel = schema.NoneLevel

	result, err := core.CompareVariants(ctx, cfg, contract.NewLocalGitClient())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}
	if limit := request.GetInt("limit", 0); limit > 0 && limit < len(result.Candidates) {
		result.Candidates = result.Candidates[:limit]
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDiffVariants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyCommonArgs(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scan parameters: %v", err)), nil
	}
	cfg.ComputeBest = true

	level := schema.DiffLevel(request.GetString("level", string(schema.PerFileLevel)))
	if _, ok := schema.ValidDiffLevels[level]; !ok || level == schema.NoneLevel {
		return mcp.NewToolResultError(fmt.Sprintf("invalid diff level %q", level)), nil
	}
	cfg.DiffLevel = level

	if pattern := request.GetString("pattern", ""); pattern != "" {
		if _, err := filepath.Match(pattern, "x"); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid pattern %q: %v", pattern, err)), nil
		}
		cfg.DiffPatterns = append(cfg.DiffPatterns, pattern)
	}
	cfg.Checksum = request.GetBool("checksum", cfg.Checksum)

	// The base config's stamp dates from server startup; reusing it would
	// make every full-level request overwrite the previous artifacts.
	cfg.RunStamp = contract.NewRunStamp()

	result, err := core.CompareVariants(ctx, cfg, contract.NewLocalGitClient())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleForensicTimeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyCommonArgs(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scan parameters: %v", err)), nil
	}
	cfg.ComputeBest = true
	cfg.DiffLevel = schema.NoneLevel

	result, err := core.CompareVariants(ctx, cfg, contract.NewLocalGitClient())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}
	result.Forensic = core.BuildForensicReport(result.Candidates)

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
