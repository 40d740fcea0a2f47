package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

// SkillOverlap scores candidates of the requested department by the number of
// required skills they list. Ties go to the earliest candidate.
type SkillOverlap struct{}

func (SkillOverlap) Match(_ context.Context, query domain.MatchQuery, candidates []domain.CandidateProfile) (domain.MatchResult, error) {
	if !query.IsStructured() {
		return domain.MatchResult{}, domain.Invalidf("skill matching needs a department or required skills")
	}

	best := -1
	bestScore := 0
	var bestMatched []string

	for i, c := range candidates {
		if query.Department != "" && !strings.EqualFold(strings.TrimSpace(c.Department), strings.TrimSpace(query.Department)) {
			continue
		}

		matched := make([]string, 0, len(query.RequiredSkills))
		for _, skill := range query.RequiredSkills {
			if c.HasSkill(skill) {
				matched = append(matched, skill)
			}
		}

		if len(matched) > bestScore {
			best, bestScore, bestMatched = i, len(matched), matched
		}
	}

	if best < 0 {
		return domain.MatchResult{
			Outcome:   domain.OutcomeNoMatch,
			Rationale: NoMatchMessage(query),
		}, nil
	}

	c := candidates[best]
	return domain.MatchResult{
		SelectedCandidateID: c.ID,
		Outcome:             domain.OutcomeSelected,
		Score:               bestScore,
		Rationale: fmt.Sprintf("%s (%s) matches %d of %d required skills: %s",
			c.Name, c.Title, bestScore, len(query.RequiredSkills), strings.Join(bestMatched, ", ")),
		MatchingPoints: bestMatched,
	}, nil
}

// NoMatchMessage explains an empty structured search
func NoMatchMessage(query domain.MatchQuery) string {
	dept := query.Department
	if dept == "" {
		dept = "any"
	}
	return fmt.Sprintf("No suitable candidate found for %s department with required skills: %s",
		dept, strings.Join(query.RequiredSkills, ", "))
}
