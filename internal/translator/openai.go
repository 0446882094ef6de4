package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider translates text via the OpenAI chat completions API
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIProvider creates a new OpenAI translation provider
func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}

	model := config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIProvider{
		client:      openai.NewClient(config.APIKey),
		model:       model,
		temperature: config.Temperature,
	}, nil
}

// Translate translates the request text into the target language
func (p *OpenAIProvider) Translate(ctx context.Context, req Request) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(req.Text, req.TargetLanguage),
			},
		},
		Temperature: p.temperature,
		MaxTokens:   2000,
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", ErrEmptyResponse
	}

	return translation, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}
