package dto

import (
	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/match"
)

type FindCandidateRequest struct {
	SearchQuery    string   `json:"search_query,omitempty" jsonschema:"description=Free-text description of the role and the ideal candidate"`
	Department     string   `json:"department,omitempty" jsonschema:"description=Department the candidate must belong to (skill matching)"`
	RequiredSkills []string `json:"required_skills,omitempty" jsonschema:"description=Skills the candidate should list (skill matching)"`
}

func (r FindCandidateRequest) Query() domain.MatchQuery {
	return domain.MatchQuery{
		SearchQuery:    r.SearchQuery,
		Department:     r.Department,
		RequiredSkills: r.RequiredSkills,
	}
}

type FindCandidateResponse struct {
	Status              string   `json:"status"`
	Analysis            string   `json:"analysis,omitempty"`
	CandidateLink       string   `json:"candidate_link,omitempty"`
	SelectedCandidateID string   `json:"selected_candidate_id,omitempty"`
	CandidateName       string   `json:"candidate_name,omitempty"`
	CandidateTitle      string   `json:"candidate_title,omitempty"`
	CandidateEmail      string   `json:"candidate_email,omitempty"`
	Outcome             string   `json:"outcome,omitempty"`
	Score               int      `json:"score,omitempty"`
	MatchingPoints      []string `json:"matching_points,omitempty"`
	Gaps                []string `json:"gaps,omitempty"`
	Warning             string   `json:"warning,omitempty"`
	Message             string   `json:"message,omitempty"`
}

// ToFindCandidateResponse maps a search result onto the wire shape
func ToFindCandidateResponse(res match.FindResult) FindCandidateResponse {
	out := FindCandidateResponse{
		Status:              res.Status,
		Analysis:            res.Analysis,
		CandidateLink:       res.CandidateLink,
		SelectedCandidateID: res.Result.SelectedCandidateID,
		Outcome:             string(res.Result.Outcome),
		Score:               res.Result.Score,
		MatchingPoints:      res.Result.MatchingPoints,
		Gaps:                res.Result.Gaps,
		Warning:             res.Result.Warning,
	}
	if res.Candidate != nil {
		out.CandidateName = res.Candidate.Name
		out.CandidateTitle = res.Candidate.Title
		out.CandidateEmail = res.Candidate.Email
	}
	if res.Status == match.StatusNotFound {
		out.Message = res.Result.Rationale
		if out.Message == "" {
			out.Message = "No suitable candidate found"
		}
	}
	return out
}
