package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/hiring-mcp/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP tool server",
	Long:  "Serve the hiring tools and resources over streamable HTTP on /mcp/stream. TOOLS_BACKEND selects in-process services (local) or the HTTP services (remote).",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, logger, done, err := bootstrap(ctx, "mcp")
	if err != nil {
		return err
	}
	defer done()

	res, cleanup, err := mcp.InitializeResources(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize MCP resources: %w", err)
	}
	defer cleanup()

	return runServers(ctx, logger, mcp.NewServer(cfg, res, logger))
}
