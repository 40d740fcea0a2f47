package hiringapi

import (
	"net/http"
	"time"
)

// Config points the client at the three hiring services
type Config struct {
	CandidateURL string // base URL of the candidate service
	TailorURL    string
	EmailURL     string
	// LinkBase builds candidate links when the service response lacks one
	LinkBase   string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client calls the hiring HTTP services
type Client struct {
	candidateURL string
	tailorURL    string
	emailURL     string
	linkBase     string
	httpClient   *http.Client
}

type FindCandidateRequest struct {
	SearchQuery    string   `json:"search_query,omitempty"`
	Department     string   `json:"department,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

type FindCandidateResult struct {
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

type TailorMessageRequest struct {
	CompanyName    string `json:"company_name"`
	JobTitle       string `json:"job_title"`
	Salary         string `json:"salary"`
	CandidateName  string `json:"candidate_name"`
	Description    string `json:"description"`
	CandidateEmail string `json:"candidate_email,omitempty"`
}

type TailorMessageResult struct {
	Status  string `json:"status"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type SendEmailRequest struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Recipient string `json:"recipient"`
}

type SendEmailResult struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Result  map[string]any `json:"result,omitempty"`
}

type errorBody struct {
	Detail any `json:"detail"`
}
