package dto

import (
	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

type TailorMessageRequest struct {
	CompanyName    string `json:"company_name"`
	JobTitle       string `json:"job_title" binding:"required"`
	Salary         string `json:"salary"`
	CandidateName  string `json:"candidate_name"`
	Description    string `json:"description"`
	CandidateEmail string `json:"candidate_email,omitempty"`
}

func (r TailorMessageRequest) ComposeRequest() domain.ComposeRequest {
	return domain.NewComposeRequest(
		domain.JobDetails{Title: r.JobTitle, Salary: r.Salary, Description: r.Description},
		domain.Organization{Name: r.CompanyName},
		domain.CandidateRef{Name: r.CandidateName, Email: r.CandidateEmail},
	)
}

type TailorMessageResponse struct {
	Status  string `json:"status"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type SendEmailRequest struct {
	Subject   string `json:"subject"`
	Body      string `json:"body" binding:"required"`
	Recipient string `json:"recipient" binding:"required,email"`
}

func (r SendEmailRequest) Message() domain.OutreachMessage {
	return domain.OutreachMessage{Subject: r.Subject, Body: r.Body, RecipientEmail: r.Recipient}
}

type SendEmailResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Result  map[string]any `json:"result,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Detail string `json:"detail"`
}
