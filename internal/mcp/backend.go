package mcp

import (
	"context"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/match"
	"github.com/honeycarbs/hiring-mcp/internal/domain/outreach"
	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
	"github.com/honeycarbs/hiring-mcp/internal/mcp/tools"
	"github.com/honeycarbs/hiring-mcp/pkg/hiringapi"
)

// Backend serves the three hiring operations behind the tools
type Backend interface {
	tools.CandidateFinder
	tools.MessageTailor
	tools.EmailSender
}

type messageTailor interface {
	Tailor(ctx context.Context, req domain.ComposeRequest) (outreach.Draft, error)
}

type emailSender interface {
	Send(ctx context.Context, msg domain.OutreachMessage) (domain.DeliveryReceipt, error)
}

// LocalBackend runs the operations in-process
type LocalBackend struct {
	finder match.Service
	tailor messageTailor
	sender emailSender
}

var _ Backend = (*LocalBackend)(nil)

func NewLocalBackend(finder match.Service, tailor messageTailor, sender emailSender) *LocalBackend {
	return &LocalBackend{finder: finder, tailor: tailor, sender: sender}
}

func (b *LocalBackend) FindCandidate(ctx context.Context, query domain.MatchQuery) (dto.FindCandidateResponse, error) {
	res, err := b.finder.FindCandidate(ctx, query)
	if err != nil {
		return dto.FindCandidateResponse{}, err
	}
	return dto.ToFindCandidateResponse(res), nil
}

func (b *LocalBackend) TailorMessage(ctx context.Context, req domain.ComposeRequest) (dto.TailorMessageResponse, error) {
	draft, err := b.tailor.Tailor(ctx, req)
	if err != nil {
		return dto.TailorMessageResponse{}, err
	}
	return dto.TailorMessageResponse{Status: "success", Subject: draft.Subject, Message: draft.Body}, nil
}

func (b *LocalBackend) SendEmail(ctx context.Context, msg domain.OutreachMessage) (dto.SendEmailResponse, error) {
	receipt, err := b.sender.Send(ctx, msg)
	if err != nil {
		return dto.SendEmailResponse{}, err
	}
	return dto.SendEmailResponse{Status: receipt.Status, Message: "Email sent successfully", Result: receipt.ProviderResult}, nil
}

// RemoteBackend forwards the operations to the hiring HTTP services
type RemoteBackend struct {
	client *hiringapi.Client
}

var _ Backend = (*RemoteBackend)(nil)

func NewRemoteBackend(client *hiringapi.Client) *RemoteBackend {
	return &RemoteBackend{client: client}
}

func (b *RemoteBackend) FindCandidate(ctx context.Context, query domain.MatchQuery) (dto.FindCandidateResponse, error) {
	res, err := b.client.FindCandidate(ctx, hiringapi.FindCandidateRequest{
		SearchQuery:    query.SearchQuery,
		Department:     query.Department,
		RequiredSkills: query.RequiredSkills,
	})
	if err != nil {
		return dto.FindCandidateResponse{}, domain.DelegateFailure(err, "candidate service")
	}
	return dto.FindCandidateResponse(res), nil
}

func (b *RemoteBackend) TailorMessage(ctx context.Context, req domain.ComposeRequest) (dto.TailorMessageResponse, error) {
	res, err := b.client.TailorMessage(ctx, hiringapi.TailorMessageRequest{
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		Salary:         req.Salary,
		CandidateName:  req.CandidateName,
		Description:    req.Description,
		CandidateEmail: req.CandidateEmail,
	})
	if err != nil {
		return dto.TailorMessageResponse{}, domain.DelegateFailure(err, "tailor service")
	}
	return dto.TailorMessageResponse(res), nil
}

func (b *RemoteBackend) SendEmail(ctx context.Context, msg domain.OutreachMessage) (dto.SendEmailResponse, error) {
	res, err := b.client.SendEmail(ctx, hiringapi.SendEmailRequest{
		Subject:   msg.Subject,
		Body:      msg.Body,
		Recipient: msg.RecipientEmail,
	})
	if err != nil {
		return dto.SendEmailResponse{}, domain.DelegateFailure(err, "email service")
	}
	return dto.SendEmailResponse(res), nil
}
