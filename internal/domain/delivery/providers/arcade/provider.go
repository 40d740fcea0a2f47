package arcade

import (
	"context"
	"fmt"

	"github.com/honeycarbs/hiring-mcp/internal/domain/delivery"
	"github.com/honeycarbs/hiring-mcp/pkg/arcade"
)

// toolClient describes the subset of the Arcade client used by the provider
type toolClient interface {
	Authorize(ctx context.Context, toolName, userID string) (arcade.AuthorizationResponse, error)
	WaitForCompletion(ctx context.Context, auth arcade.AuthorizationResponse) (arcade.AuthorizationResponse, error)
	Execute(ctx context.Context, toolName string, input map[string]any, userID string) (arcade.ExecuteResponse, error)
}

// Provider implements delivery.MailProvider using Arcade tools
type Provider struct {
	client toolClient
}

func NewProvider(client toolClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("arcade provider: client is required")
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Authorize(ctx context.Context, userID, toolName string) (delivery.AuthStatus, error) {
	resp, err := p.client.Authorize(ctx, toolName, userID)
	if err != nil {
		return delivery.AuthStatus{}, err
	}
	return toStatus(resp), nil
}

func (p *Provider) WaitForCompletion(ctx context.Context, status delivery.AuthStatus) (delivery.AuthStatus, error) {
	resp, err := p.client.WaitForCompletion(ctx, arcade.AuthorizationResponse{
		ID:     status.ID,
		Status: status.Status,
		URL:    status.URL,
	})
	if err != nil {
		return toStatus(resp), err
	}
	return toStatus(resp), nil
}

func (p *Provider) Execute(ctx context.Context, toolName string, input map[string]any, userID string) (map[string]any, error) {
	resp, err := p.client.Execute(ctx, toolName, input, userID)
	if err != nil {
		return nil, err
	}

	out := map[string]any{
		"id":           resp.ID,
		"execution_id": resp.ExecutionID,
		"status":       resp.Status,
		"success":      resp.Success,
	}
	if resp.Output != nil && resp.Output.Value != nil {
		out["output"] = resp.Output.Value
	}
	return out, nil
}

func toStatus(r arcade.AuthorizationResponse) delivery.AuthStatus {
	return delivery.AuthStatus{ID: r.ID, Status: r.Status, URL: r.URL}
}

var _ delivery.MailProvider = (*Provider)(nil)
