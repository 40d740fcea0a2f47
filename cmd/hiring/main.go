// Command hiring runs the hiring services, the MCP tool server and the agent CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/hiring-mcp/internal/config"
	"github.com/honeycarbs/hiring-mcp/internal/http/server"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
	"github.com/honeycarbs/hiring-mcp/pkg/shutdown"
	"github.com/honeycarbs/hiring-mcp/pkg/telemetry"
)

var (
	version = "dev"

	cfgFile string

	shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP}
)

var rootCmd = &cobra.Command{
	Use:           "hiring",
	Short:         "Hiring assistant services and MCP tool server",
	Long:          "hiring finds candidates for a role, writes outreach messages and sends them, over HTTP and as MCP tools for an agent.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file; environment variables override it")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and sets up logging and tracing for one subcommand
func bootstrap(ctx context.Context, component string) (config.Config, *logging.Logger, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, nil, nil, err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat).With("component", component)

	tel, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       cfg.Otel.Endpoint,
		Headers:        cfg.Otel.Headers,
		ServiceName:    cfg.Otel.ServiceName,
		ServiceVersion: version,
	})
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
	} else if tel != nil {
		logger.Info("tracing enabled", "endpoint", cfg.Otel.Endpoint)
	}

	cleanup := func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown failed", "err", err)
		}
		_ = logger.Sync()
	}
	return cfg, logger, cleanup, nil
}

// runServers runs every server until a signal arrives or one of them fails
func runServers(ctx context.Context, logger *logging.Logger, servers ...*server.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	group := make(shutdown.Group, 0, len(servers))
	for _, s := range servers {
		group = append(group, s)
		g.Go(s.Run)
		logger.Info("server initialized and starting", "server", s.Name(), "addr", s.Addr())
	}

	g.Go(func() error {
		shutdown.Graceful(gctx, shutdownSignals, group, 10*time.Second, logger)
		return nil
	})

	return g.Wait()
}
