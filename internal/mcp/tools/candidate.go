package tools

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// CandidateFinder runs a candidate search
type CandidateFinder interface {
	FindCandidate(ctx context.Context, query domain.MatchQuery) (dto.FindCandidateResponse, error)
}

// FindCandidateParams defines the arguments for the find_candidate tool
type FindCandidateParams struct {
	SearchQuery string `json:"search_query" jsonschema:"Description of the role and the ideal candidate"`
}

// FindBySkillsParams defines the arguments for the find_candidate_by_skills tool
type FindBySkillsParams struct {
	Department     string   `json:"department" jsonschema:"Department name, e.g. Engineering or Marketing"`
	RequiredSkills []string `json:"required_skills" jsonschema:"Skills required for the position"`
}

type candidateTool struct {
	finder CandidateFinder
	logger *logging.Logger
}

// WithFindCandidate registers the find_candidate tool
func WithFindCandidate(finder CandidateFinder) Option {
	return func(reg *registry) {
		handler := candidateTool{finder: finder, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "find_candidate",
			Description: "Find the best candidate for a position from a free-text search query. Returns the analysis and a link to the candidate's profile.",
		}, handler.handle)
		reg.added("find_candidate")
	}
}

// WithFindCandidateBySkills registers the find_candidate_by_skills tool
func WithFindCandidateBySkills(finder CandidateFinder) Option {
	return func(reg *registry) {
		handler := candidateTool{finder: finder, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "find_candidate_by_skills",
			Description: "Find the best candidate in a department by counting how many of the required skills they list.",
		}, handler.handleSkills)
		reg.added("find_candidate_by_skills")
	}
}

func (t candidateTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params FindCandidateParams) (*sdkmcp.CallToolResult, dto.FindCandidateResponse, error) {
	t.logger.Debug("find_candidate called", "query", logging.Truncate(params.SearchQuery, 120))

	if strings.TrimSpace(params.SearchQuery) == "" {
		return t.fail(domain.Invalidf("search_query is required"))
	}
	return t.find(ctx, domain.MatchQuery{SearchQuery: params.SearchQuery})
}

func (t candidateTool) handleSkills(ctx context.Context, _ *sdkmcp.CallToolRequest, params FindBySkillsParams) (*sdkmcp.CallToolResult, dto.FindCandidateResponse, error) {
	t.logger.Debug("find_candidate_by_skills called", "department", params.Department, "skills", params.RequiredSkills)

	if len(params.RequiredSkills) == 0 {
		return t.fail(domain.Invalidf("required_skills must list at least one skill"))
	}
	return t.find(ctx, domain.MatchQuery{Department: params.Department, RequiredSkills: params.RequiredSkills})
}

func (t candidateTool) find(ctx context.Context, q domain.MatchQuery) (*sdkmcp.CallToolResult, dto.FindCandidateResponse, error) {
	res, err := t.finder.FindCandidate(ctx, q)
	if err != nil {
		return t.fail(err)
	}
	return jsonResult(res), res, nil
}

func (t candidateTool) fail(err error) (*sdkmcp.CallToolResult, dto.FindCandidateResponse, error) {
	t.logger.Warn("candidate search failed", "error", err)
	out := dto.FindCandidateResponse{Status: StatusError, Message: failure("Failed to find candidate", err)}
	return jsonResult(out), out, nil
}
