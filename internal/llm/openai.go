package llm

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string // set for OpenAI compatible APIs such as Groq
	Model   string
	KeyEnv  string // env var named in the not-configured hint
}

// OpenAI generates text with the chat completions API
type OpenAI struct {
	client openai.Client
	model  string
}

func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		env := cfg.KeyEnv
		if env == "" {
			env = "OPENAI_API_KEY"
		}
		return nil, domain.NotConfigured("llm api key is missing", "set "+env)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = openai.ChatModelGPT3_5Turbo
	}

	return &OpenAI{client: openai.NewClient(opts...), model: model}, nil
}

func (o *OpenAI) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    o.model,
		Messages: messages,
	})
	if err != nil {
		return "", domain.DelegateFailure(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", domain.DelegateFailure(
			errors.Mark(errors.New("no choices in response"), domain.ErrMalformedDelegateResponse),
			"chat completion",
		)
	}
	return resp.Choices[0].Message.Content, nil
}
