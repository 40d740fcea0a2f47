package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
)

// ProfileLister is the read side of the profile store
type ProfileLister interface {
	LoadAll() []domain.CandidateProfile
}

// FindResult is the outward view of one candidate search
type FindResult struct {
	Status        string
	Analysis      string
	CandidateLink string
	Candidate     *domain.CandidateProfile
	Result        domain.MatchResult
}

type Service interface {
	FindCandidate(ctx context.Context, query domain.MatchQuery) (FindResult, error)
}

// Option configures Service
type Option func(*serviceConfig)

type serviceConfig struct {
	linkBase string
	logger   *logging.Logger
}

// WithLinkBase sets the web base the candidate link points to
func WithLinkBase(base string) Option {
	return func(c *serviceConfig) {
		c.linkBase = base
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(c *serviceConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type service struct {
	profiles ProfileLister
	matcher  Matcher
	linkBase string
	logger   *logging.Logger
}

// NewService glues the profile store to a matcher
func NewService(profiles ProfileLister, matcher Matcher, opts ...Option) (Service, error) {
	if profiles == nil {
		return nil, fmt.Errorf("match.Service: profile store is required")
	}
	if matcher == nil {
		return nil, fmt.Errorf("match.Service: matcher is required")
	}

	cfg := &serviceConfig{linkBase: "http://localhost:3000", logger: logging.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &service{
		profiles: profiles,
		matcher:  matcher,
		linkBase: strings.TrimSuffix(cfg.linkBase, "/"),
		logger:   cfg.logger,
	}, nil
}

func (s *service) FindCandidate(ctx context.Context, query domain.MatchQuery) (FindResult, error) {
	candidates := s.profiles.LoadAll()

	if p, ok := s.matcher.(pairwise); ok {
		n := p.CandidateCount()
		if len(candidates) < n {
			return FindResult{}, domain.NotConfigured(
				fmt.Sprintf("insufficient data: %d valid candidate profiles loaded, %d required", len(candidates), n),
				"check PROFILE_DIR and PROFILE_SOURCES",
			)
		}
		candidates = candidates[:n]
	}

	res, err := s.matcher.Match(ctx, query, candidates)
	if err != nil {
		s.logger.Error("candidate match failed", "error", err)
		return FindResult{}, err
	}
	if res.Warning != "" {
		s.logger.Warn("candidate match degraded", "warning", res.Warning)
	}

	out := FindResult{Result: res, Analysis: res.Analysis}
	if out.Analysis == "" {
		out.Analysis = res.Rationale
	}

	if !res.Selected() {
		out.Status = StatusNotFound
		s.logger.Info("no candidate selected", "outcome", string(res.Outcome))
		return out, nil
	}

	out.Status = StatusSuccess
	out.CandidateLink = s.Link(res.SelectedCandidateID)
	for i := range candidates {
		if candidates[i].ID == res.SelectedCandidateID {
			c := candidates[i]
			out.Candidate = &c
			break
		}
	}

	s.logger.Info("candidate selected", "candidate_id", res.SelectedCandidateID, "outcome", string(res.Outcome))
	return out, nil
}

// Link builds the profile page URL of a candidate
func (s *service) Link(id string) string {
	return CandidateLink(s.linkBase, id)
}

func CandidateLink(base, id string) string {
	return strings.TrimSuffix(base, "/") + "/candidate/" + id
}
