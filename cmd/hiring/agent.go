package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/hiring-mcp/internal/agent"
)

var (
	agentEndpoint string
	agentModel    string
	agentSheetsID string
	agentYes      bool
)

var agentCmd = &cobra.Command{
	Use:   "agent [query]",
	Short: "Talk to the hiring tools through a Gemini agent",
	Long:  "Run one query, or an interactive session when no query is given. Emails are sent only after confirmation unless --yes is set.",
	RunE:  runAgent,
}

func init() {
	agentCmd.Flags().StringVar(&agentEndpoint, "endpoint", os.Getenv("MCP_URL"), "MCP server URL (default http://localhost:8080)")
	agentCmd.Flags().StringVar(&agentModel, "model", os.Getenv("GOOGLE_MODEL"), "Gemini model (default gemini-2.5-flash)")
	agentCmd.Flags().StringVar(&agentSheetsID, "sheets-id", os.Getenv("GOOGLE_SHEETS_ID"), "spreadsheet used by export_shortlist")
	agentCmd.Flags().BoolVarP(&agentYes, "yes", "y", false, "send emails without asking")
	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, done, err := bootstrap(ctx, "agent")
	if err != nil {
		return err
	}
	defer done()

	apiKey := cfg.Gemini.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}

	out := cmd.OutOrStdout()
	var confirm agent.Confirmer = agent.PromptConfirmer{Out: out}
	if agentYes {
		confirm = agent.AutoApprove{}
	}

	a, err := agent.Dial(ctx, agent.Config{
		Endpoint: agentEndpoint,
		APIKey:   apiKey,
		Model:    agentModel,
		SheetsID: agentSheetsID,
	}, agent.WithConfirmer(confirm), agent.WithOutput(out), agent.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("agent close failed", "err", err)
		}
	}()

	fmt.Fprintf(out, "Loaded %d tools:\n", len(a.Tools()))
	for i, tool := range a.Tools() {
		fmt.Fprintf(out, "  %d. %s\n", i+1, tool.Name)
	}

	if len(args) > 0 {
		answer, err := a.RunQuery(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, answer)
		return nil
	}
	return a.Interactive(ctx, cmd.InOrStdin())
}
