package tools

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// ShortlistExporter writes candidate rows to a spreadsheet
type ShortlistExporter interface {
	ExportShortlist(ctx context.Context, params ExportShortlistParams) (ExportShortlistResult, error)
}

// ExportShortlistParams defines the arguments for the export_shortlist tool
type ExportShortlistParams struct {
	SpreadsheetID string   `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string   `json:"tab,omitempty" jsonschema:"Tab to write; Shortlist when omitted"`
	CandidateIDs  []string `json:"candidate_ids,omitempty" jsonschema:"Candidates to export; every loaded candidate when empty"`
}

// ExportShortlistResult summarizes an export
type ExportShortlistResult struct {
	Status        string `json:"status"`
	SpreadsheetID string `json:"spreadsheet_id,omitempty"`
	Tab           string `json:"tab,omitempty"`
	WrittenRows   int    `json:"written_rows,omitempty" jsonschema:"Candidate rows written, header excluded"`
	Message       string `json:"message,omitempty"`
}

type shortlistTool struct {
	exporter ShortlistExporter
	logger   *logging.Logger
}

// WithExportShortlist registers the export_shortlist tool
func WithExportShortlist(exporter ShortlistExporter) Option {
	return func(reg *registry) {
		handler := shortlistTool{exporter: exporter, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "export_shortlist",
			Description: "Export candidate profiles to a Google Sheets tab, replacing its previous content.",
		}, handler.handle)
		reg.added("export_shortlist")
	}
}

func (t shortlistTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params ExportShortlistParams) (*sdkmcp.CallToolResult, ExportShortlistResult, error) {
	t.logger.Debug("export_shortlist called", "spreadsheet_id", params.SpreadsheetID, "candidates", len(params.CandidateIDs))

	if strings.TrimSpace(params.SpreadsheetID) == "" {
		return t.fail(domain.Invalidf("spreadsheet_id is required"))
	}

	res, err := t.exporter.ExportShortlist(ctx, params)
	if err != nil {
		return t.fail(err)
	}
	return jsonResult(res), res, nil
}

func (t shortlistTool) fail(err error) (*sdkmcp.CallToolResult, ExportShortlistResult, error) {
	t.logger.Warn("shortlist export failed", "error", err)
	out := ExportShortlistResult{Status: StatusError, Message: failure("Failed to export shortlist", err)}
	return jsonResult(out), out, nil
}
