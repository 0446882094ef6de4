package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing OpenAI models usable for translation
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels prints the chat models available to the current API
// key, translation-capable models first
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .csvtrans.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	otherModels := []string{}

	for _, model := range models.Models {
		modelID := model.ID
		if strings.Contains(modelID, "gpt") || strings.Contains(modelID, "chat") {
			chatModels = append(chatModels, modelID)
		} else {
			otherModels = append(otherModels, modelID)
		}
	}

	sort.Strings(chatModels)
	sort.Strings(otherModels)

	fmt.Println("Available OpenAI Models:")
	fmt.Println("\nChat Models (usable for translation, pass via --model):")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	if len(otherModels) > 0 {
		fmt.Printf("\nOther models: %d (not usable for translation)\n", len(otherModels))
	}

	return nil
}
