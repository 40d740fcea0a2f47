package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/honeycarbs/hiring-mcp/internal/agent"
	"github.com/honeycarbs/hiring-mcp/internal/mcp/tools"
)

var smokeEndpoint string

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Check a running MCP server",
	Long:  "Connect to the MCP server, list its tools, read the departments resource and run one skill search. Nothing is sent.",
	Args:  cobra.NoArgs,
	RunE:  runSmoke,
}

func init() {
	smokeCmd.Flags().StringVar(&smokeEndpoint, "endpoint", "http://localhost:8080", "MCP server URL")
	rootCmd.AddCommand(smokeCmd)
}

func runSmoke(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "hiring-smoke",
		Version: version,
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: agent.StreamEndpoint(smokeEndpoint),
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = session.Close() }()

	fmt.Fprintf(out, "Connected to server (session ID: %s)\n", session.ID())

	toolList, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}
	fmt.Fprintln(out, "\nTools:")
	for _, t := range toolList.Tools {
		fmt.Fprintf(out, "  - %s\n", t.Name)
	}

	deps, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: tools.DepartmentsURI})
	if err != nil {
		return fmt.Errorf("read departments: %w", err)
	}
	var departments []string
	if len(deps.Contents) > 0 {
		if err := json.Unmarshal([]byte(deps.Contents[0].Text), &departments); err != nil {
			return fmt.Errorf("decode departments: %w", err)
		}
	}
	fmt.Fprintf(out, "\nDepartments: %v\n", departments)

	if len(departments) == 0 {
		return nil
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "find_candidate_by_skills",
		Arguments: map[string]any{
			"department":      departments[0],
			"required_skills": []string{"Go", "Python", "React"},
		},
	})
	if err != nil {
		return fmt.Errorf("find_candidate_by_skills: %w", err)
	}
	printContent(out, res)
	return nil
}

func printContent(out io.Writer, res *mcp.CallToolResult) {
	fmt.Fprintln(out, "\nfind_candidate_by_skills:")
	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			fmt.Fprintf(out, "  %s\n", text.Text)
		}
	}
}
