// Package llm binds the text-generation delegate to a configured backend.
package llm

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/honeycarbs/hiring-mcp/internal/config"
	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// Generator turns a system and user prompt into text
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}

// New builds the generator selected by LLM_PROVIDER, decorated with tracing, a
// per-call timeout and, when REDIS_URL is set, a response cache. The returned
// cleanup closes the redis client.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (Generator, func(), error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var (
		base Generator
		name string
		err  error
	)
	switch strings.ToLower(cfg.LLM.Provider) {
	case "groq":
		name = "groq/" + cfg.Groq.Model
		base, err = NewOpenAI(OpenAIConfig{
			APIKey:  cfg.Groq.APIKey,
			BaseURL: cfg.Groq.BaseURL,
			Model:   cfg.Groq.Model,
			KeyEnv:  "GROQ_API_KEY",
		})
	case "gemini":
		name = "gemini/" + cfg.Gemini.Model
		base, err = NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	default:
		name = "openai/" + cfg.OpenAI.Model
		base, err = NewOpenAI(OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			KeyEnv:  "OPENAI_API_KEY",
		})
	}
	if err != nil {
		return nil, func() {}, err
	}

	gen := WithTracing(WithTimeout(base, cfg.DelegateTimeout), name)
	cleanup := func() {}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, cleanup, errors.Wrap(err, "parse REDIS_URL")
		}
		rdb := redis.NewClient(opts)
		cleanup = func() { _ = rdb.Close() }
		gen = WithCache(gen, NewRedisCache(rdb, cfg.LLM.CacheTTL), name, logger)
		logger.Info("llm response cache enabled", "ttl", cfg.LLM.CacheTTL.String())
	}

	logger.Info("llm generator ready", "backend", name)
	return gen, cleanup, nil
}

// WithTimeout bounds every call; a deadline hit is reported as a delegate failure
func WithTimeout(next Generator, timeout time.Duration) Generator {
	if timeout <= 0 {
		return next
	}
	return GeneratorFunc(func(ctx context.Context, system, user string) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		out, err := next.Generate(ctx, system, user)
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", domain.DelegateFailure(err, "generation timed out after "+timeout.String())
		}
		return out, err
	})
}
