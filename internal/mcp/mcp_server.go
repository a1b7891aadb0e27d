// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samhoang/repotwin/internal/contract"
)

// NewMCPServer initializes and configures the repotwin MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Repotwin Variant Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: rank_variants ---
	s.AddTool(mcp.NewTool("rank_variants",
		mcp.WithDescription("Discover all copies of a repository under a root path and rank them by local activity."),
		mcp.WithString("root_path", mcp.Description("Directory to scan for repository variants."), mcp.Required()),
		mcp.WithString("name", mcp.Description("Substring that variant directory names must contain.")),
		mcp.WithNumber("max_depth", mcp.Description("Maximum directory depth to descend below the root.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked variants returned.")),
	), h.handleRankVariants)

	// --- 2. Tool: diff_variants ---
	s.AddTool(mcp.NewTool("diff_variants",
		mcp.WithDescription("Rank repository variants and tree-diff the best copy against every other copy."),
		mcp.WithString("root_path", mcp.Description("Directory to scan for repository variants."), mcp.Required()),
		mcp.WithString("name", mcp.Description("Substring that variant directory names must contain.")),
		mcp.WithString("level", mcp.Description("Diff granularity (summary, per-file, full). Defaults to 'per-file'."), mcp.Enum("summary", "per-file", "full")),
		mcp.WithString("pattern", mcp.Description("Glob pattern limiting which relative paths are compared.")),
		mcp.WithBoolean("checksum", mcp.Description("Attach content digests to records whose content differs.")),
	), h.handleDiffVariants)

	// --- 3. Tool: forensic_timeline ---
	s.AddTool(mcp.NewTool("forensic_timeline",
		mcp.WithDescription("Build an activity timeline across repository variants and name the probable last active copy."),
		mcp.WithString("root_path", mcp.Description("Directory to scan for repository variants."), mcp.Required()),
		mcp.WithString("name", mcp.Description("Substring that variant directory names must contain.")),
		mcp.WithNumber("max_depth", mcp.Description("Maximum directory depth to descend below the root.")),
	), h.handleForensicTimeline)

	return s
}

// StartMCPServer starts the repotwin MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
