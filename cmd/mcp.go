package cmd

import (
	"github.com/huangsam/rollcast/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp <series-file>",
	Short: "Start the Rollcast MCP server",
	Long:  `Launch an MCP server that allows AI agents to run forecasts, evaluations, and window sweeps via standard tools.`,
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, runManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
