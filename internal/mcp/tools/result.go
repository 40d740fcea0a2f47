package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

// StatusError is the status every failed tool call reports
const StatusError = "error"

// jsonResult returns the structured output as a single text block
func jsonResult(v any) *sdkmcp.CallToolResult {
	raw, err := json.Marshal(v)
	if err != nil {
		return textResult(fmt.Sprintf("failed to encode result: %v", err))
	}
	return textResult(string(raw))
}

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// failure renders err for the agent, hints included
func failure(prefix string, err error) string {
	msg := prefix + ": " + err.Error()
	if hints := domain.Hints(err); len(hints) > 0 {
		msg += " (" + strings.Join(hints, "; ") + ")"
	}
	return msg
}
