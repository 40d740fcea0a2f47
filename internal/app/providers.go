// Package app assembles the hiring services from configuration.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/honeycarbs/hiring-mcp/internal/config"
	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/delivery"
	arcadeProvider "github.com/honeycarbs/hiring-mcp/internal/domain/delivery/providers/arcade"
	"github.com/honeycarbs/hiring-mcp/internal/domain/match"
	"github.com/honeycarbs/hiring-mcp/internal/domain/outreach"
	"github.com/honeycarbs/hiring-mcp/internal/domain/profile"
	"github.com/honeycarbs/hiring-mcp/internal/llm"
	"github.com/honeycarbs/hiring-mcp/internal/storage/file"
	graph "github.com/honeycarbs/hiring-mcp/internal/storage/neo4j"
	"github.com/honeycarbs/hiring-mcp/internal/storage/postgres"
	"github.com/honeycarbs/hiring-mcp/pkg/arcade"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
	n4j "github.com/honeycarbs/hiring-mcp/pkg/neo4j"
)

// Services are the in-process implementations behind the HTTP and MCP surfaces
type Services struct {
	Profiles *profile.Store
	Finder   match.Service
	Tailor   *outreach.Service
	Gateway  *delivery.Gateway
}

// provideProfileSources opens every source listed in PROFILE_SOURCES
func provideProfileSources(ctx context.Context, cfg config.Config, logger *logging.Logger) ([]profile.Source, func(), error) {
	var (
		sources []profile.Source
		closers []func()
		cleanup = func() {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	)

	for _, name := range cfg.Profile.Sources {
		switch name {
		case "dir":
			src, err := file.NewSource(cfg.Profile.Dir, file.WithLogger(logger.Named("profiles")))
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			sources = append(sources, src)
		case "seed":
			sources = append(sources, file.Seed())
		case "neo4j":
			client, err := n4j.NewClient(ctx, n4j.Config{
				URI:      cfg.Neo4j.URI,
				Username: cfg.Neo4j.Username,
				Password: cfg.Neo4j.Password,
			}, cfg.DelegateTimeout)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			closers = append(closers, func() { _ = client.Close(context.Background()) })
			logger.Info("Neo4j client initialized", "uri", cfg.Neo4j.URI)
			sources = append(sources, graph.NewCandidateSource(client))
		case "postgres":
			src, err := postgres.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			closers = append(closers, src.Close)
			if err := src.EnsureSchema(ctx); err != nil {
				cleanup()
				return nil, nil, err
			}
			sources = append(sources, src)
		default:
			cleanup()
			return nil, nil, fmt.Errorf("unknown profile source %q", name)
		}
	}

	return sources, cleanup, nil
}

func provideProfileStore(ctx context.Context, logger *logging.Logger, sources []profile.Source) *profile.Store {
	return profile.NewStore(ctx, logger.Named("profiles"), sources...)
}

// provideGenerator returns nil when no configured strategy needs text generation.
// A generator that cannot be built is replaced by one failing with the same
// error, so the missing credential surfaces on the request that needs it.
func provideGenerator(ctx context.Context, cfg config.Config, logger *logging.Logger) (llm.Generator, func(), error) {
	if strings.EqualFold(cfg.Match.Strategy, match.StrategySkills) && strings.EqualFold(cfg.Compose.Strategy, outreach.StrategyTemplate) {
		return nil, func() {}, nil
	}

	gen, cleanup, err := llm.New(ctx, cfg, logger.Named("llm"))
	if err != nil {
		if !errors.Is(err, domain.ErrNotConfigured) {
			return nil, nil, err
		}
		logger.Warn("text generator not configured", "error", err, "hints", domain.Hints(err))
		return llm.GeneratorFunc(func(context.Context, string, string) (string, error) {
			return "", err
		}), func() {}, nil
	}
	return gen, cleanup, nil
}

func provideMatcher(cfg config.Config, gen llm.Generator) (match.Matcher, error) {
	return match.New(match.Config{
		Strategy:         cfg.Match.Strategy,
		RequireQualified: cfg.Match.RequireQualified,
	}, gen)
}

func provideMatchService(cfg config.Config, store *profile.Store, matcher match.Matcher, logger *logging.Logger) (match.Service, error) {
	return match.NewService(store, matcher,
		match.WithLinkBase(cfg.CandidateLinkBase),
		match.WithLogger(logger.Named("match")),
	)
}

func provideComposer(cfg config.Config, gen llm.Generator) (outreach.Composer, error) {
	return outreach.NewComposer(cfg.Compose.Strategy, gen)
}

// provideGateway binds the delivery gateway to Arcade, or to a provider that
// reports the missing key when ARCADE_API_KEY is unset
func provideGateway(cfg config.Config, logger *logging.Logger) (*delivery.Gateway, error) {
	opts := []delivery.Option{
		delivery.WithToolName(cfg.Arcade.ToolName),
		delivery.WithAuthTimeout(cfg.AuthTimeout),
		delivery.WithDelegateTimeout(cfg.DelegateTimeout),
		delivery.WithLogger(logger.Named("delivery")),
		delivery.WithAuthorizationURLHook(func(url string) {
			fmt.Fprintf(os.Stderr, "Click this link to authorize: %s\n", url)
		}),
	}

	if cfg.Arcade.APIKey == "" {
		logger.Warn("mail provider not configured", "hint", "set ARCADE_API_KEY")
		return delivery.NewGateway(delivery.Unconfigured{Hint: "set ARCADE_API_KEY"}, cfg.Arcade.UserID, opts...), nil
	}

	client, err := arcade.NewClient(arcade.Config{
		APIKey:  cfg.Arcade.APIKey,
		BaseURL: cfg.Arcade.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	provider, err := arcadeProvider.NewProvider(client)
	if err != nil {
		return nil, err
	}
	return delivery.NewGateway(provider, cfg.Arcade.UserID, opts...), nil
}
