package handler_test

import (
	"context"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/match"
	"github.com/honeycarbs/hiring-mcp/internal/domain/outreach"
)

type mockFinder struct {
	findFn func(ctx context.Context, q domain.MatchQuery) (match.FindResult, error)
}

func (m *mockFinder) FindCandidate(ctx context.Context, q domain.MatchQuery) (match.FindResult, error) {
	return m.findFn(ctx, q)
}

type mockTailor struct {
	tailorFn func(ctx context.Context, req domain.ComposeRequest) (outreach.Draft, error)
}

func (m *mockTailor) Tailor(ctx context.Context, req domain.ComposeRequest) (outreach.Draft, error) {
	return m.tailorFn(ctx, req)
}

type mockSender struct {
	sendFn func(ctx context.Context, msg domain.OutreachMessage) (domain.DeliveryReceipt, error)
}

func (m *mockSender) Send(ctx context.Context, msg domain.OutreachMessage) (domain.DeliveryReceipt, error) {
	return m.sendFn(ctx, msg)
}
