package llm

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Gemini generates text with the Gemini API
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, domain.NotConfigured("gemini api key is missing", "set GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create genai client")
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var cfg *genai.GenerateContentConfig
	if systemPrompt != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", domain.DelegateFailure(err, "gemini generate content")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", domain.DelegateFailure(
			errors.Mark(errors.New("empty response"), domain.ErrMalformedDelegateResponse),
			"gemini generate content",
		)
	}
	return text, nil
}
