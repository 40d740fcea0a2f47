package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// EmailSender delivers an outreach message
type EmailSender interface {
	SendEmail(ctx context.Context, msg domain.OutreachMessage) (dto.SendEmailResponse, error)
}

// SendEmailParams defines the arguments for the send_email tool
type SendEmailParams struct {
	Subject   string `json:"subject" jsonschema:"Email subject line"`
	Body      string `json:"body" jsonschema:"Email body"`
	Recipient string `json:"recipient" jsonschema:"Recipient email address"`
}

type emailTool struct {
	sender EmailSender
	logger *logging.Logger
}

// WithSendEmail registers the send_email tool
func WithSendEmail(sender EmailSender) Option {
	return func(reg *registry) {
		handler := emailTool{sender: sender, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "send_email",
			Description: "Send an email through the connected mail account. The first send may require the user to authorize the account.",
		}, handler.handle)
		reg.added("send_email")
	}
}

func (t emailTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params SendEmailParams) (*sdkmcp.CallToolResult, dto.SendEmailResponse, error) {
	t.logger.Debug("send_email called", "recipient", params.Recipient)

	res, err := t.sender.SendEmail(ctx, domain.OutreachMessage{
		Subject:        params.Subject,
		Body:           params.Body,
		RecipientEmail: params.Recipient,
	})
	if err != nil {
		t.logger.Warn("email delivery failed", "error", err)
		out := dto.SendEmailResponse{Status: StatusError, Message: failure("Failed to send email", err)}
		return jsonResult(out), out, nil
	}
	return jsonResult(res), res, nil
}
