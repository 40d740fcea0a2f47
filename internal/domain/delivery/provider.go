package delivery

import (
	"context"
)

// Authorization states reported by a mail provider
const (
	AuthPending   = "pending"
	AuthCompleted = "completed"
	AuthFailed    = "failed"
)

// AuthStatus is one step of the provider's authorization handshake
type AuthStatus struct {
	ID     string
	Status string
	URL    string // where the user grants access while pending
}

func (a AuthStatus) Completed() bool {
	return a.Status == AuthCompleted
}

// MailProvider is the external mail-sending delegate
type MailProvider interface {
	// Authorize requests permission for toolName on behalf of userID
	Authorize(ctx context.Context, userID, toolName string) (AuthStatus, error)
	// WaitForCompletion blocks until the authorization is no longer pending or ctx ends
	WaitForCompletion(ctx context.Context, status AuthStatus) (AuthStatus, error)
	Execute(ctx context.Context, toolName string, input map[string]any, userID string) (map[string]any, error)
}
