package delivery

import (
	"context"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

// Unconfigured is the provider used when mail credentials are absent; every
// call fails with ErrNotConfigured so the gap surfaces on the first send
type Unconfigured struct {
	Hint string
}

var _ MailProvider = Unconfigured{}

func (u Unconfigured) Authorize(context.Context, string, string) (AuthStatus, error) {
	return AuthStatus{}, u.err()
}

func (u Unconfigured) WaitForCompletion(context.Context, AuthStatus) (AuthStatus, error) {
	return AuthStatus{}, u.err()
}

func (u Unconfigured) Execute(context.Context, string, map[string]any, string) (map[string]any, error) {
	return nil, u.err()
}

func (u Unconfigured) err() error {
	return domain.NotConfigured("mail provider is not configured", u.Hint)
}
