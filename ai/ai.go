package ai

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"employeehub/config"

	"github.com/sashabaranov/go-openai"
)

// AIService talks to a local model served through an OpenAI-compatible API (Ollama /v1).
type AIService struct {
	client    *openai.Client
	modelName string
	baseURL   string
}

func New(cfg config.LLMConfig) (*AIService, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("LLM model name is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
	}

	return &AIService{
		client:    openai.NewClientWithConfig(clientConfig),
		modelName: cfg.Model,
		baseURL:   clientConfig.BaseURL,
	}, nil
}

func (a *AIService) Close() error {
	// HTTP client doesn't require explicit closing
	return nil
}

func (a *AIService) ModelName() string {
	return a.modelName
}

// Provider describes where completions come from, for status responses.
func (a *AIService) Provider() string {
	if strings.Contains(a.baseURL, "11434") || strings.Contains(strings.ToLower(a.baseURL), "ollama") {
		return "Ollama (local)"
	}
	return "OpenAI-compatible"
}

// Generate sends a single user prompt with temperature 0 and returns the raw completion text.
func (a *AIService) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.modelName,
		// A plain 0 is dropped by omitempty and the server default applies.
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI model")
	}

	log.Printf("LLM %s answered in %v", a.modelName, time.Since(start).Round(time.Millisecond))
	return resp.Choices[0].Message.Content, nil
}
