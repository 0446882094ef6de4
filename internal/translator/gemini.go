package translator

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider translates text via the Google Gemini API
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiProvider creates a new Gemini translation provider
func NewGeminiProvider(config *Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: config.Temperature,
	}, nil
}

// Translate translates the request text into the target language
func (p *GeminiProvider) Translate(ctx context.Context, req Request) (string, error) {
	temperature := p.temperature
	resp, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text(buildPrompt(req.Text, req.TargetLanguage)),
		&genai.GenerateContentConfig{
			Temperature:       &temperature,
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", ErrEmptyResponse
	}

	return translation, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}
