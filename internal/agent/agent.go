// Package agent drives the hiring MCP tools with a Gemini tool-calling loop.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/generative-ai-go/genai"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/option"

	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

const (
	maxIterations   = 10
	toolCallTimeout = 5 * time.Minute
	sendEmailTool   = "send_email"
)

// Config holds the agent connection settings
type Config struct {
	Endpoint string // MCP server URL; /mcp/stream is appended when missing
	APIKey   string
	Model    string
	SheetsID string
}

type chatSession interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type toolCaller interface {
	CallTool(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error)
}

// Agent runs one Gemini conversation per query against the MCP tools
type Agent struct {
	caller  toolCaller
	newChat func() chatSession
	tools   []*mcp.Tool

	confirm Confirmer
	out     io.Writer
	logger  *logging.Logger

	closers []func() error
}

// Option configures Agent
type Option func(*Agent)

func WithConfirmer(c Confirmer) Option {
	return func(a *Agent) {
		if c != nil {
			a.confirm = c
		}
	}
}

func WithOutput(w io.Writer) Option {
	return func(a *Agent) {
		if w != nil {
			a.out = w
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(a *Agent) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func newAgent(caller toolCaller, newChat func() chatSession, tools []*mcp.Tool, opts ...Option) *Agent {
	a := &Agent{
		caller:  caller,
		newChat: newChat,
		tools:   tools,
		confirm: AutoApprove{},
		out:     io.Discard,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// StreamEndpoint normalizes a server URL to its streamable MCP endpoint
func StreamEndpoint(endpoint string) string {
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}
	if strings.HasSuffix(endpoint, "/mcp/stream") {
		return endpoint
	}
	return strings.TrimSuffix(endpoint, "/") + "/mcp/stream"
}

// Dial connects to the MCP server, lists its tools and prepares the Gemini model
func Dial(ctx context.Context, cfg Config, opts ...Option) (*Agent, error) {
	if cfg.APIKey == "" {
		return nil, errors.WithHint(errors.New("gemini api key is missing"), "set GEMINI_API_KEY or GOOGLE_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "hiring-agent",
		Version: "0.1.0",
	}, nil)

	endpoint := StreamEndpoint(cfg.Endpoint)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: endpoint}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to MCP server at %s", endpoint)
	}

	toolsResp, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		_ = session.Close()
		return nil, errors.Wrap(err, "failed to list tools")
	}

	gemini, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		_ = session.Close()
		return nil, errors.Wrap(err, "failed to initialize Gemini")
	}

	model := gemini.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt(cfg.SheetsID))},
	}
	if tools := buildGeminiTools(toolsResp.Tools); len(tools) > 0 {
		model.Tools = tools
	}

	a := newAgent(session, func() chatSession { return model.StartChat() }, toolsResp.Tools, opts...)
	a.closers = []func() error{gemini.Close, session.Close}
	a.logger.Info("agent connected", "endpoint", endpoint, "session", session.ID(), "tools", len(toolsResp.Tools))
	return a, nil
}

func (a *Agent) Tools() []*mcp.Tool {
	return a.tools
}

func (a *Agent) Close() error {
	var errs error
	for _, c := range a.closers {
		errs = errors.CombineErrors(errs, c())
	}
	return errs
}

// RunQuery answers one user request, calling tools until the model replies with text
func (a *Agent) RunQuery(ctx context.Context, query string) (string, error) {
	chat := a.newChat()
	parts := []genai.Part{genai.Text(query)}

	for iteration := 1; iteration <= maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if iteration == 1 {
			fmt.Fprintln(a.out, "[Agent] Analyzing your request...")
		} else {
			fmt.Fprintf(a.out, "[Agent] Processing step %d...\n", iteration)
		}

		resp, err := chat.SendMessage(ctx, parts...)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", errors.Wrap(err, "gemini API error")
		}

		var (
			text      strings.Builder
			responses []genai.Part
		)
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				switch p := part.(type) {
				case genai.FunctionCall:
					responses = append(responses, genai.FunctionResponse{
						Name:     p.Name,
						Response: a.handleCall(ctx, p),
					})
				case genai.Text:
					text.WriteString(string(p))
				}
			}
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if len(responses) > 0 {
			parts = responses
			continue
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
		if len(resp.Candidates) == 0 {
			return "", errors.New("unexpected response format from Gemini")
		}
	}

	return "", errors.Newf("max iterations (%d) reached", maxIterations)
}

func (a *Agent) handleCall(ctx context.Context, fc genai.FunctionCall) map[string]any {
	args := fc.Args
	if args == nil {
		args = map[string]any{}
	}

	if fc.Name == sendEmailTool {
		email, err := DecodeEmailArgs(args)
		if err != nil {
			return map[string]any{"status": "error", "message": err.Error()}
		}
		ok, err := a.confirm.Confirm(email)
		if err != nil {
			return map[string]any{"status": "error", "message": "confirmation failed: " + err.Error()}
		}
		if !ok {
			fmt.Fprintln(a.out, "[Agent] Email not sent")
			return map[string]any{"status": "cancelled", "message": "The user declined to send this email"}
		}
	}

	fmt.Fprintf(a.out, "\n[Tool] Calling %s...\n", fc.Name)
	result, err := a.callTool(ctx, fc.Name, args)
	if err != nil {
		a.logger.Warn("tool call failed", "tool", fc.Name, "error", err)
		fmt.Fprintf(a.out, "[Error] Tool error: %v\n", err)
		return map[string]any{"error": err.Error()}
	}

	fmt.Fprintf(a.out, "[Success] %s completed\n", fc.Name)
	return result
}

func (a *Agent) callTool(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	known := false
	for _, t := range a.tools {
		if t.Name == name {
			known = true
			break
		}
	}
	if !known {
		return nil, errors.Newf("tool %s not found", name)
	}

	toolCtx, cancel := context.WithTimeout(ctx, toolCallTimeout)
	defer cancel()

	result, err := a.caller.CallTool(toolCtx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, err
	}

	if m, ok := result.StructuredContent.(map[string]any); ok {
		return m, nil
	}

	var texts []string
	for _, content := range result.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			texts = append(texts, tc.Text)
		}
	}
	if len(texts) == 0 {
		return map[string]any{"result": "Tool executed successfully"}, nil
	}
	return map[string]any{"result": strings.Join(texts, "\n")}, nil
}

// Interactive reads requests from in until EOF, quit or ctx cancellation
func (a *Agent) Interactive(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(a.out, "Type 'quit' or 'exit' to end the session.")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(a.out, "\nYour request: ")

		select {
		case <-ctx.Done():
			return nil
		case input, ok := <-lines:
			if !ok {
				return nil
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			switch strings.ToLower(input) {
			case "quit", "exit", "q":
				fmt.Fprintln(a.out, "\nGoodbye.")
				return nil
			}

			answer, err := a.RunQuery(ctx, input)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				fmt.Fprintf(a.out, "\nAn error occurred: %v\n", err)
				continue
			}
			fmt.Fprintf(a.out, "\n%s\n", answer)
		}
	}
}
