package llm

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/honeycarbs/hiring-mcp/pkg/telemetry"
)

// WithTracing records one client span per generation
func WithTracing(next Generator, backend string) Generator {
	return GeneratorFunc(func(ctx context.Context, system, user string) (string, error) {
		ctx, span := telemetry.Tracer().Start(ctx, "llm.generate",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("llm.backend", backend),
				attribute.Int("llm.prompt_chars", len(system)+len(user)),
			),
		)
		defer span.End()

		out, err := next.Generate(ctx, system, user)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return "", err
		}
		span.SetAttributes(attribute.Int("llm.response_chars", len(out)))
		return out, nil
	})
}
