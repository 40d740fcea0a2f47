package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/match"
	"github.com/honeycarbs/hiring-mcp/internal/mcp/tools"
)

const defaultShortlistTab = "Shortlist"

var shortlistHeader = []any{"ID", "Name", "Title", "Department", "Experience (years)", "Skills", "Email", "Profile"}

// sheetsWriter describes the subset of the Sheets client used by the exporter
type sheetsWriter interface {
	ClearValues(ctx context.Context, spreadsheetID, rangeA1 string) error
	UpdateValues(ctx context.Context, spreadsheetID, rangeA1 string, values [][]any) error
}

type profileReader interface {
	LoadAll() []domain.CandidateProfile
	FindByID(id string) (domain.CandidateProfile, error)
}

// shortlistExporter writes candidate profiles to one tab, header first
type shortlistExporter struct {
	client   sheetsWriter
	profiles profileReader
	linkBase string
}

var _ tools.ShortlistExporter = (*shortlistExporter)(nil)

func (e *shortlistExporter) ExportShortlist(ctx context.Context, params tools.ExportShortlistParams) (tools.ExportShortlistResult, error) {
	tab := strings.TrimSpace(params.Tab)
	if tab == "" {
		tab = defaultShortlistTab
	}
	result := tools.ExportShortlistResult{SpreadsheetID: params.SpreadsheetID, Tab: tab}

	if e.client == nil {
		return result, domain.NotConfigured("Google Sheets client not configured", "set GOOGLE_SHEETS_CREDENTIALS_PATH")
	}

	candidates, err := e.selectCandidates(params.CandidateIDs)
	if err != nil {
		return result, err
	}

	if err := e.client.ClearValues(ctx, params.SpreadsheetID, fmt.Sprintf("%s!A1:Z", tab)); err != nil {
		return result, domain.DelegateFailure(err, "clear shortlist tab")
	}
	if err := e.client.UpdateValues(ctx, params.SpreadsheetID, fmt.Sprintf("%s!A1", tab), e.rows(candidates)); err != nil {
		return result, domain.DelegateFailure(err, "write shortlist rows")
	}

	result.Status = "success"
	result.WrittenRows = len(candidates)
	result.Message = fmt.Sprintf("exported %d candidates to %s", len(candidates), tab)
	return result, nil
}

func (e *shortlistExporter) selectCandidates(ids []string) ([]domain.CandidateProfile, error) {
	if len(ids) == 0 {
		return e.profiles.LoadAll(), nil
	}

	out := make([]domain.CandidateProfile, 0, len(ids))
	var missing []string
	for _, id := range ids {
		p, err := e.profiles.FindByID(id)
		if err != nil {
			missing = append(missing, id)
			continue
		}
		out = append(out, p)
	}
	if len(missing) > 0 {
		return nil, domain.Invalidf("unknown candidate ids: %s", strings.Join(missing, ", "))
	}
	return out, nil
}

func (e *shortlistExporter) rows(candidates []domain.CandidateProfile) [][]any {
	values := make([][]any, 0, len(candidates)+1)
	values = append(values, shortlistHeader)
	for _, c := range candidates {
		values = append(values, []any{
			c.ID,
			c.Name,
			c.Title,
			c.Department,
			c.ExperienceYears,
			strings.Join(c.Skills, ", "),
			c.Email,
			match.CandidateLink(e.linkBase, c.ID),
		})
	}
	return values
}
