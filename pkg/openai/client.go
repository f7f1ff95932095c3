package openai

import (
	"context"
	"errors"
	"strings"

	openailib "github.com/sashabaranov/go-openai"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/config"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

var errAPIKeyRequired = errors.New("openai api key is required")

// Client wraps the completion API client plus the model settings applied to
// every request.
type Client struct {
	api       *openailib.Client
	model     string
	maxTokens int
}

// NewClient initializes the completion client once from config.
func NewClient(ctx context.Context, cfg config.OpenAIConfig, logg *logger.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = openailib.GPT4o
	}

	if logg != nil {
		logg.Info(ctx, "openai client initialized")
	}

	return &Client{
		api:       openailib.NewClient(apiKey),
		model:     model,
		maxTokens: cfg.MaxCompletionTokens,
	}, nil
}

// API returns the underlying completion API client.
func (c *Client) API() *openailib.Client {
	if c == nil {
		return nil
	}
	return c.api
}

// Model reports the configured completion model.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// MaxCompletionTokens reports the per-request completion token cap.
func (c *Client) MaxCompletionTokens() int {
	if c == nil {
		return 0
	}
	return c.maxTokens
}
