// Package codex implements the completion client against an OpenAI style
// text completion endpoint.
package codex

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"gitbench/internal/completion"
	"gitbench/internal/log"
)

const (
	// DefaultModel is the completion model used when none is configured.
	DefaultModel = "code-davinci-002"

	defaultTimeout = 30 * time.Second

	// Fixed sampling parameters of the benchmark agent.
	temperature = 0.5
	maxTokens   = 500
)

// stop cuts the completion at the first blank line.
var stop = []string{"\n\n"}

// ClientConfig is the configuration for the codex completion client.
type ClientConfig struct {
	// APIKey is the credential for the completion endpoint. Required.
	APIKey string
	// Model is the completion model identifier.
	Model string
	// BaseURL overrides the API base URL (e.g. for a proxy or a test server).
	BaseURL string
	// Timeout bounds the whole completion HTTP call.
	Timeout time.Duration
	Logger  log.Logger
}

func (c *ClientConfig) defaults() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is required (set it explicitly or via OPENAI_API_KEY)")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "completion.Codex"})
	return nil
}

// Client is a completion.Completer on top of a remote completion endpoint.
type Client struct {
	client *openai.Client
	model  string
	logger log.Logger
}

var _ completion.Completer = (*Client)(nil)

// NewClient creates a new codex completion client. It fails fast when no
// API key is configured, before any network call is attempted.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	oaiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaiCfg.BaseURL = cfg.BaseURL
	}
	oaiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		client: openai.NewClientWithConfig(oaiCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}, nil
}

// Complete sends the prompt to the completion endpoint with the fixed
// sampling parameters and returns the first choice's text.
//
// Any remote failure (timeout, network error, non-2xx, malformed response)
// is swallowed and surfaced as an empty completion: the caller cannot and
// must not distinguish "model declined" from "call failed".
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       c.model,
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stop:        stop,
	})
	if err != nil {
		c.logger.Warningf("Completion call failed: %s", err)
		return "", nil
	}

	if len(resp.Choices) == 0 {
		c.logger.Warningf("Completion response had no choices")
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Text), nil
}
