package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// MessageTailor writes an outreach message
type MessageTailor interface {
	TailorMessage(ctx context.Context, req domain.ComposeRequest) (dto.TailorMessageResponse, error)
}

type JobDetails struct {
	Title       string `json:"title" jsonschema:"Job title"`
	Salary      string `json:"salary,omitempty" jsonschema:"Salary range; Competitive when omitted"`
	Description string `json:"description,omitempty" jsonschema:"Short description of the role"`
}

type Organization struct {
	Name string `json:"name,omitempty" jsonschema:"Hiring company name"`
}

type CandidateProfile struct {
	Name  string `json:"name,omitempty" jsonschema:"Candidate name used in the greeting"`
	Email string `json:"email,omitempty" jsonschema:"Candidate email address"`
}

// TailorMessageParams defines the arguments for the tailor_message tool
type TailorMessageParams struct {
	JobDetails       JobDetails       `json:"job_details" jsonschema:"The position being offered"`
	Organization     Organization     `json:"organization,omitempty" jsonschema:"The hiring organization"`
	CandidateProfile CandidateProfile `json:"candidate_profile,omitempty" jsonschema:"The candidate being contacted"`
}

func (p TailorMessageParams) composeRequest() domain.ComposeRequest {
	return domain.NewComposeRequest(
		domain.JobDetails{Title: p.JobDetails.Title, Salary: p.JobDetails.Salary, Description: p.JobDetails.Description},
		domain.Organization{Name: p.Organization.Name},
		domain.CandidateRef{Name: p.CandidateProfile.Name, Email: p.CandidateProfile.Email},
	)
}

type messageTool struct {
	tailor MessageTailor
	logger *logging.Logger
}

// WithTailorMessage registers the tailor_message tool
func WithTailorMessage(tailor MessageTailor) Option {
	return func(reg *registry) {
		handler := messageTool{tailor: tailor, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "tailor_message",
			Description: "Write a personalized outreach email (subject and body) for a candidate and a position.",
		}, handler.handle)
		reg.added("tailor_message")
	}
}

func (t messageTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params TailorMessageParams) (*sdkmcp.CallToolResult, dto.TailorMessageResponse, error) {
	t.logger.Debug("tailor_message called", "job_title", params.JobDetails.Title, "candidate", params.CandidateProfile.Name)

	res, err := t.tailor.TailorMessage(ctx, params.composeRequest())
	if err != nil {
		t.logger.Warn("message tailoring failed", "error", err)
		out := dto.TailorMessageResponse{Status: StatusError, Message: failure("Failed to generate message", err)}
		return jsonResult(out), out, nil
	}
	return jsonResult(res), res, nil
}
