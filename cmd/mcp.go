package cmd

import (
	"github.com/samhoang/repotwin/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Repotwin MCP server",
	Long:  `Launch an MCP server that allows AI agents to locate, rank and diff repository variants via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdout carries the protocol in MCP mode, so setup must not
		// print anything there.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
