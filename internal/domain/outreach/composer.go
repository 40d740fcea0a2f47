// Package outreach composes recruiting messages.
package outreach

import (
	"context"
	"strings"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/llm"
)

// Draft is a composed subject and body
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// Composer writes a draft for a request
type Composer interface {
	Compose(ctx context.Context, req domain.ComposeRequest) (Draft, error)
}

const (
	StrategyGenerative = "generative"
	StrategyTemplate   = "template"
)

// Signature closes every outreach message
const Signature = "Best regards,\nThe MCP for Hiring Team"

// NewComposer selects the composing strategy; the generative one needs a generator
func NewComposer(strategy string, gen llm.Generator) (Composer, error) {
	switch strings.ToLower(strategy) {
	case StrategyTemplate:
		return NewTemplate(), nil
	case StrategyGenerative, "":
		if gen == nil {
			return nil, domain.NotConfigured("generative composing needs a text generator", "set LLM_PROVIDER and its API key, or COMPOSE_STRATEGY=template")
		}
		return NewGenerative(gen), nil
	default:
		return nil, domain.Invalidf("unknown compose strategy %q", strategy)
	}
}

func withDefaults(req domain.ComposeRequest) domain.ComposeRequest {
	if strings.TrimSpace(req.Salary) == "" {
		req.Salary = domain.DefaultSalary
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		req.CompanyName = domain.DefaultCompany
	}
	if strings.TrimSpace(req.CandidateName) == "" {
		req.CandidateName = domain.DefaultGreeting
	}
	return req
}
