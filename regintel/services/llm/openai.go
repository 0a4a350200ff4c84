package llm

import (
	"context"
	"net/http"

	"github.com/markboenigk/regintel/regintel/types"
	"github.com/markboenigk/regintel/regintel/utils/httpx"
	"github.com/markboenigk/regintel/regintel/utils/logging"

	"go.uber.org/zap"
)

const (
	defaultModel = "gpt-4"
	temperature  = 0.7
	maxTokens    = 1000
)

// Client issues chat completion requests against the OpenAI API. One call,
// no retries; failures come back as a tagged Result, never a panic.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = httpx.DefaultClient
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

type chatRequest struct {
	Model       string              `json:"model"`
	Messages    []types.ChatMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message types.ChatMessage `json:"message"`
	} `json:"choices"`
}

// Complete runs one chat completion over the given messages.
func (c *Client) Complete(ctx context.Context, messages []types.ChatMessage) Result {
	defer logging.LogDuration(ctx, "llm_complete")()

	if c.apiKey == "" {
		return Errf(ErrConfig, "OpenAI API key is not configured")
	}

	req := chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	var resp chatResponse
	err := httpx.PostJSON(ctx, c.httpClient, c.baseURL+"/chat/completions", httpx.BearerHeaders(c.apiKey), req, &resp)
	if err != nil {
		logging.ErrorLogger.Error("chat completion failed", zap.Error(err))
		return Errf(ErrRequest, "%s", err.Error())
	}
	if len(resp.Choices) == 0 {
		logging.ErrorLogger.Error("chat completion returned no choices")
		return Errf(ErrResponse, "no content in completion response")
	}
	return Ok(resp.Choices[0].Message.Content)
}
