package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/hiring-mcp/internal/app"
	"github.com/honeycarbs/hiring-mcp/internal/config"
	"github.com/honeycarbs/hiring-mcp/internal/http/handler"
	"github.com/honeycarbs/hiring-mcp/internal/http/router"
	"github.com/honeycarbs/hiring-mcp/internal/http/server"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

var serveCmd = &cobra.Command{
	Use:       "serve candidates|tailor|email|all",
	Short:     "Run the hiring HTTP services",
	Long:      "Run POST /find-candidate (CANDIDATE_PORT), POST /tailor-message (TAILOR_PORT) and POST /send-email (EMAIL_PORT), one of them or all three in one process.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"candidates", "tailor", "email", "all"},
	RunE:      runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	which := args[0]
	ctx := cmd.Context()

	cfg, logger, done, err := bootstrap(ctx, "serve-"+which)
	if err != nil {
		return err
	}
	defer done()

	svc, cleanup, err := app.InitializeServices(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer cleanup()

	var servers []*server.Server
	if which == "candidates" || which == "all" {
		servers = append(servers, newHTTPServer(cfg, logger, "candidates", cfg.CandidatePort, router.Handlers{
			Candidate: handler.NewCandidateHandler(svc.Finder),
		}))
	}
	if which == "tailor" || which == "all" {
		servers = append(servers, newHTTPServer(cfg, logger, "tailor", cfg.TailorPort, router.Handlers{
			Message: handler.NewMessageHandler(svc.Tailor),
		}))
	}
	if which == "email" || which == "all" {
		servers = append(servers, newHTTPServer(cfg, logger, "email", cfg.EmailPort, router.Handlers{
			Email: handler.NewEmailHandler(svc.Gateway),
		}))
	}

	return runServers(ctx, logger, servers...)
}

func newHTTPServer(cfg config.Config, logger *logging.Logger, name, port string, h router.Handlers) *server.Server {
	engine := router.NewEngine(cfg.Otel.ServiceName+"-"+name, logger)
	router.SetupRoutes(engine, h)
	return server.New(name, net.JoinHostPort(cfg.Host, port), engine, logger)
}
