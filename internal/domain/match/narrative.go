package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/llm"
)

const narrativeSystemPrompt = "You are an expert recruiter AI that analyzes candidate profiles against job requirements to find the best matches."

const narrativeCandidates = 2

// Narrative asks the text generator to compare two candidates against a free-text query
type Narrative struct {
	gen              llm.Generator
	requireQualified bool
}

func NewNarrative(gen llm.Generator, requireQualified bool) *Narrative {
	return &Narrative{gen: gen, requireQualified: requireQualified}
}

func (n *Narrative) CandidateCount() int {
	return narrativeCandidates
}

func (n *Narrative) Match(ctx context.Context, query domain.MatchQuery, candidates []domain.CandidateProfile) (domain.MatchResult, error) {
	if len(candidates) != narrativeCandidates {
		return domain.MatchResult{}, domain.NotConfigured(
			fmt.Sprintf("insufficient data: narrative matching compares exactly %d candidates, got %d", narrativeCandidates, len(candidates)),
			"provide at least two valid candidate profiles",
		)
	}
	if !query.IsFreeText() {
		return domain.MatchResult{}, domain.Invalidf("search query is required")
	}

	text, err := n.gen.Generate(ctx, narrativeSystemPrompt, n.prompt(query.SearchQuery, candidates))
	if err != nil {
		return domain.MatchResult{}, domain.DelegateFailure(err, "compare candidates")
	}

	analysis := ParseAnalysis(text)
	result := domain.MatchResult{
		Rationale:      analysis.Reason,
		MatchingPoints: analysis.MatchingPoints,
		Gaps:           analysis.Gaps,
		Analysis:       text,
	}

	sel, found := parseSelectionValue(analysis.Selection)
	if found && sel.None {
		if n.requireQualified {
			result.Outcome = domain.OutcomeNoQualifiedCandidate
			return result, nil
		}
		found = false
	}

	idx := -1
	if found {
		idx, found = sel.Resolve(candidates)
	}
	if !found {
		idx = 0
		result.Warning = fmt.Sprintf("%s: no usable SELECTED marker (%q), defaulted to the first candidate",
			domain.ErrMalformedDelegateResponse, analysis.Selection)
	}

	result.Outcome = domain.OutcomeSelected
	result.SelectedCandidateID = candidates[idx].ID
	return result, nil
}

func (n *Narrative) prompt(query string, candidates []domain.CandidateProfile) string {
	var b strings.Builder

	b.WriteString("Given the following job search criteria and two candidate profiles, determine which candidate is the better match.\n\n")
	b.WriteString("Search Criteria:\n")
	b.WriteString(strings.TrimSpace(query))
	b.WriteString("\n")

	for i, c := range candidates {
		fmt.Fprintf(&b, "\nCandidate %d Profile (id: %s):\n", i+1, c.ID)
		fmt.Fprintf(&b, "Name: %s\n", c.Name)
		if c.Title != "" {
			fmt.Fprintf(&b, "Title: %s\n", c.Title)
		}
		b.WriteString(summaryOf(c))
		b.WriteString("\n")
	}

	b.WriteString("\nPlease analyze both candidates against the search criteria and:\n")
	if n.requireQualified {
		b.WriteString("1. Decide whether each candidate meets the minimum qualifications; if neither does, select NONE\n")
		b.WriteString("2. Otherwise determine which candidate is a better match\n")
		b.WriteString("3. Provide a brief explanation of your decision\n")
		b.WriteString("4. List the key matching points and, when selecting NONE, the qualification gaps\n\n")
	} else {
		b.WriteString("1. Determine which candidate is a better match\n")
		b.WriteString("2. Provide a brief explanation of why they are the better match\n")
		b.WriteString("3. List the key matching points\n\n")
	}

	b.WriteString("Format your response as:\n")
	if n.requireQualified {
		b.WriteString("SELECTED: [candidate id, or NONE]\n")
	} else {
		b.WriteString("SELECTED: [candidate id]\n")
	}
	b.WriteString("REASON: [Your explanation]\n")
	b.WriteString("MATCHING POINTS: [Bullet points of matching criteria]")
	if n.requireQualified {
		b.WriteString("\nGAPS: [Bullet points of missing qualifications, only when SELECTED is NONE]")
	}
	return b.String()
}

// summaryOf falls back to title and skills when a profile carries no summary
func summaryOf(c domain.CandidateProfile) string {
	if s := strings.TrimSpace(c.ProfileSummary); s != "" {
		return s
	}
	parts := make([]string, 0, 3)
	if c.Title != "" {
		parts = append(parts, c.Title)
	}
	if c.ExperienceYears > 0 {
		parts = append(parts, fmt.Sprintf("%d years of experience", c.ExperienceYears))
	}
	if len(c.Skills) > 0 {
		parts = append(parts, "skills: "+strings.Join(c.Skills, ", "))
	}
	return strings.Join(parts, "; ")
}
