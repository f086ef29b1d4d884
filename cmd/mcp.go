package cmd

import (
	"github.com/mpetrulis/lexirank/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Lexirank MCP server",
	Long:  `Launch an MCP server that allows AI agents to query word rankings and corpus status via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so setup must not print to stdout.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, store)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
