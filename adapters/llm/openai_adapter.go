package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/application/service"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/config"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type openAITextGenAdapter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     logger.Logger
}

// NewOpenAITextGenAdapter talks to any OpenAI-compatible completion
// endpoint (the hosted inference router in production, a local model in
// development). Every request carries its own timeout so one slow
// generation cannot stall the whole enrichment pass.
func NewOpenAITextGenAdapter(cfg config.Config, log logger.Logger) (service.TextGenerator, error) {
	if cfg.TextGen.BaseURL == "" {
		return nil, fmt.Errorf("textgen base_url is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.TextGen.APIKey)
	clientConfig.BaseURL = cfg.TextGen.BaseURL

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("Text generation adapter initialized")
	return &openAITextGenAdapter{
		client:  client,
		model:   cfg.TextGen.Model,
		timeout: cfg.TextGen.Timeout,
		log:     log,
	}, nil
}

func (a *openAITextGenAdapter) GenerateText(ctx context.Context, prompt string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("text generation request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("text generation returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("text generation returned empty content")
	}

	return text, nil
}
