package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samhoang/repotwin/internal/contract"
	mcp_internal "github.com/samhoang/repotwin/internal/mcp"
	"github.com/samhoang/repotwin/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		MaxDepth:    contract.DefaultMaxDepth,
		Workers:     2,
		RepoTimeout: contract.DefaultRepoTimeout,
		Output:      schema.TableOut,
	}

	s := mcp_internal.NewMCPServer(baseCfg)
	ctx := context.Background()

	t.Run("rank_variants missing root_path", func(t *testing.T) {
		tool := s.GetTool("rank_variants")
		require.NotNil(t, tool, "Tool rank_variants should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "rank_variants",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "root_path is required")
	})

	t.Run("diff_variants invalid level", func(t *testing.T) {
		tool := s.GetTool("diff_variants")
		require.NotNil(t, tool, "Tool diff_variants should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "diff_variants",
				Arguments: map[string]any{
					"root_path": ".",
					"level":     "everything", // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid diff level")
	})

	t.Run("diff_variants rejects level none", func(t *testing.T) {
		tool := s.GetTool("diff_variants")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "diff_variants",
				Arguments: map[string]any{
					"root_path": ".",
					"level":     "none", // A diff with no diff makes no sense
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid diff level")
	})

	t.Run("diff_variants invalid pattern", func(t *testing.T) {
		tool := s.GetTool("diff_variants")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "diff_variants",
				Arguments: map[string]any{
					"root_path": ".",
					"pattern":   "[invalid", // Unclosed character class
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid pattern")
	})

	t.Run("forensic_timeline missing root_path", func(t *testing.T) {
		tool := s.GetTool("forensic_timeline")
		require.NotNil(t, tool, "Tool forensic_timeline should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "forensic_timeline",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "root_path is required")
	})
}
