package embedding

import (
	"context"
	"net/http"

	"github.com/markboenigk/regintel/regintel/utils/httpx"
	"github.com/markboenigk/regintel/regintel/utils/logging"

	"go.uber.org/zap"
)

const defaultModel = "text-embedding-3-large"

// Client computes query embeddings through the OpenAI embeddings API.
// Without an API key the client is inert and every call returns an empty
// vector, which callers treat as "skip retrieval".
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

// Embed returns the embedding vector for text, or an empty slice on any
// failure. Errors never cross this boundary.
func (c *Client) Embed(ctx context.Context, text string) []float32 {
	defer logging.LogDuration(ctx, "embedding_embed")()

	if c.apiKey == "" {
		logging.AppLogger.Info("embedding skipped: no API key configured")
		return nil
	}

	body := map[string]any{
		"model": c.model,
		"input": text,
	}
	var resp struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	err := httpx.PostJSON(ctx, c.httpClient, c.baseURL+"/embeddings", httpx.BearerHeaders(c.apiKey), body, &resp)
	if err != nil {
		logging.ErrorLogger.Error("embedding request failed", zap.Error(err))
		return nil
	}
	if len(resp.Data) == 0 {
		logging.ErrorLogger.Error("embedding response contained no data")
		return nil
	}
	return resp.Data[0].Embedding
}
