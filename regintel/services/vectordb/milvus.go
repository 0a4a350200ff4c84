package vectordb

import (
	"context"
	"net/http"

	"github.com/markboenigk/regintel/regintel/utils/httpx"
	"github.com/markboenigk/regintel/regintel/utils/logging"

	"go.uber.org/zap"
)

const (
	describePath = "/v2/vectordb/collections/describe"
	loadPath     = "/v2/vectordb/collections/load"
	searchPath   = "/v2/vectordb/entities/search"

	// Load state value Milvus reports for a collection that is not in memory.
	loadStateNotLoaded = "LoadStateNotLoad"

	vectorField = "text_vector"
)

// Hit is one raw search result as returned by Milvus, keyed by output field.
type Hit = map[string]any

// Client is a minimal REST client for the Milvus v2 vector database API.
// All failures degrade to empty results; the search path never returns an
// error to its caller.
type Client struct {
	uri        string
	token      string
	httpClient *http.Client
}

type Config struct {
	URI        string
	Token      string
	HTTPClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = httpx.DefaultClient
	}
	return &Client{
		uri:        cfg.URI,
		token:      cfg.Token,
		httpClient: cfg.HTTPClient,
	}
}

func (c *Client) configured() bool {
	return c.uri != "" && c.token != ""
}

// Search runs a cosine similarity search over collection. An empty vector
// short-circuits without touching the network. A non-200 status or a
// non-zero API code in the body yields an empty result. Result ordering is
// whatever Milvus returned.
func (c *Client) Search(ctx context.Context, vector []float32, collection string, limit int, outputFields []string) []Hit {
	defer logging.LogDuration(ctx, "vectordb_search")()

	if len(vector) == 0 {
		return nil
	}
	if !c.configured() {
		logging.AppLogger.Info("vector search skipped: Milvus not configured")
		return nil
	}

	c.ensureLoaded(ctx, collection)

	body := map[string]any{
		"collectionName": collection,
		"data":           [][]float32{vector},
		"limit":          limit,
		"outputFields":   outputFields,
		"metricType":     "COSINE",
		"params":         map[string]any{"nprobe": 10},
		"fieldName":      vectorField,
	}
	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    []Hit  `json:"data"`
	}
	err := httpx.PostJSON(ctx, c.httpClient, c.uri+searchPath, httpx.BearerHeaders(c.token), body, &resp)
	if err != nil {
		logging.ErrorLogger.Error("vector search failed",
			zap.String("collection", collection), zap.Error(err))
		return nil
	}
	if resp.Code != 0 {
		logging.ErrorLogger.Error("vector search returned API error",
			zap.String("collection", collection),
			zap.Int("code", resp.Code), zap.String("message", resp.Message))
		return nil
	}
	return resp.Data
}

// ensureLoaded warms up the collection before searching. The load call is
// best effort: the search proceeds whether or not it succeeds.
func (c *Client) ensureLoaded(ctx context.Context, collection string) {
	req := map[string]any{"collectionName": collection}
	var resp struct {
		Code int `json:"code"`
		Data struct {
			Load string `json:"load"`
		} `json:"data"`
	}
	err := httpx.PostJSON(ctx, c.httpClient, c.uri+describePath, httpx.BearerHeaders(c.token), req, &resp)
	if err != nil {
		logging.AppLogger.Warn("collection describe failed",
			zap.String("collection", collection), zap.Error(err))
		return
	}
	if resp.Data.Load != loadStateNotLoaded {
		return
	}
	logging.AppLogger.Info("loading collection", zap.String("collection", collection))
	if err := httpx.PostJSON(ctx, c.httpClient, c.uri+loadPath, httpx.BearerHeaders(c.token), req, nil); err != nil {
		logging.AppLogger.Warn("collection load failed",
			zap.String("collection", collection), zap.Error(err))
	}
}
