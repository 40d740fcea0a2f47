package domain

import (
	"strings"
)

// CandidateProfile is a person the matcher can select
type CandidateProfile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Department      string   `json:"department"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	ProfileSummary  string   `json:"profile_summary"`
	Email           string   `json:"email,omitempty"`
	Headline        string   `json:"headline,omitempty"`
	LinkedInURL     string   `json:"linkedin_url,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// HasSkill reports whether the profile lists skill, ignoring case
func (p CandidateProfile) HasSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	for _, s := range p.Skills {
		if strings.EqualFold(strings.TrimSpace(s), skill) {
			return true
		}
	}
	return false
}

// Validate checks the fields every source must provide
func (p CandidateProfile) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return Invalidf("profile id is empty")
	case strings.TrimSpace(p.Name) == "":
		return Invalidf("profile %s has no name", p.ID)
	case p.ExperienceYears < 0:
		return Invalidf("profile %s has negative experience", p.ID)
	}
	return nil
}

// MatchQuery carries either a structured filter or free text
type MatchQuery struct {
	Department     string   `json:"department,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	SearchQuery    string   `json:"search_query,omitempty"`
}

func (q MatchQuery) IsStructured() bool {
	return strings.TrimSpace(q.Department) != "" || len(q.RequiredSkills) > 0
}

func (q MatchQuery) IsFreeText() bool {
	return strings.TrimSpace(q.SearchQuery) != ""
}

// MatchOutcome classifies a MatchResult
type MatchOutcome string

const (
	OutcomeSelected             MatchOutcome = "selected"
	OutcomeNoMatch              MatchOutcome = "no_match"
	OutcomeNoQualifiedCandidate MatchOutcome = "no_qualified_candidate"
)

// MatchResult is what a matching strategy decided
type MatchResult struct {
	SelectedCandidateID string       `json:"selected_candidate_id,omitempty"`
	Outcome             MatchOutcome `json:"outcome"`
	Score               int          `json:"score,omitempty"`
	Rationale           string       `json:"rationale,omitempty"`
	MatchingPoints      []string     `json:"matching_points,omitempty"`
	Gaps                []string     `json:"gaps,omitempty"`
	Warning             string       `json:"warning,omitempty"`
	Analysis            string       `json:"analysis,omitempty"`
}

// Selected reports whether a candidate was picked
func (r MatchResult) Selected() bool {
	return r.Outcome == OutcomeSelected && r.SelectedCandidateID != ""
}

// OutreachMessage is a composed message ready for delivery
type OutreachMessage struct {
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	RecipientEmail string `json:"recipient"`
}

type JobDetails struct {
	Title       string `json:"title"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description,omitempty"`
}

type Organization struct {
	Name string `json:"name"`
}

type CandidateRef struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

const (
	DefaultSalary   = "Competitive"
	DefaultCompany  = "Our company"
	DefaultGreeting = "there"
)

// ComposeRequest is the flat input of a message composer
type ComposeRequest struct {
	CompanyName    string `json:"company_name" validate:"max=200"`
	JobTitle       string `json:"job_title" validate:"required,max=200"`
	Salary         string `json:"salary" validate:"max=200"`
	CandidateName  string `json:"candidate_name" validate:"max=200"`
	Description    string `json:"description" validate:"max=8000"`
	CandidateEmail string `json:"candidate_email,omitempty" validate:"omitempty,email"`
}

// NewComposeRequest flattens the three tool records; salary falls back to DefaultSalary
func NewComposeRequest(job JobDetails, org Organization, candidate CandidateRef) ComposeRequest {
	salary := strings.TrimSpace(job.Salary)
	if salary == "" {
		salary = DefaultSalary
	}
	return ComposeRequest{
		CompanyName:    strings.TrimSpace(org.Name),
		JobTitle:       strings.TrimSpace(job.Title),
		Salary:         salary,
		CandidateName:  strings.TrimSpace(candidate.Name),
		Description:    strings.TrimSpace(job.Description),
		CandidateEmail: strings.TrimSpace(candidate.Email),
	}
}

// DeliveryReceipt is returned by a successful send
type DeliveryReceipt struct {
	Status         string         `json:"status"`
	ProviderResult map[string]any `json:"result,omitempty"`
}
