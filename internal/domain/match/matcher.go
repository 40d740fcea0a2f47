// Package match selects the best candidate for a query.
package match

import (
	"context"
	"strings"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/llm"
)

// Matcher picks at most one candidate out of candidates for query
type Matcher interface {
	Match(ctx context.Context, query domain.MatchQuery, candidates []domain.CandidateProfile) (domain.MatchResult, error)
}

// pairwise is implemented by strategies that compare a fixed number of candidates
type pairwise interface {
	CandidateCount() int
}

const (
	StrategyNarrative = "narrative"
	StrategySkills    = "skills"
)

type Config struct {
	Strategy         string
	RequireQualified bool
}

// New selects the matching strategy; the narrative strategy needs a generator
func New(cfg Config, gen llm.Generator) (Matcher, error) {
	switch strings.ToLower(cfg.Strategy) {
	case StrategySkills:
		return SkillOverlap{}, nil
	case StrategyNarrative, "":
		if gen == nil {
			return nil, domain.NotConfigured("narrative matching needs a text generator", "set LLM_PROVIDER and its API key")
		}
		return &Narrative{gen: gen, requireQualified: cfg.RequireQualified}, nil
	default:
		return nil, domain.Invalidf("unknown match strategy %q", cfg.Strategy)
	}
}
