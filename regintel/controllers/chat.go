package controllers

import (
	"context"
	"fmt"

	"github.com/markboenigk/regintel/regintel/rag"
	"github.com/markboenigk/regintel/regintel/services/llm"
	"github.com/markboenigk/regintel/regintel/types"
	"github.com/markboenigk/regintel/regintel/utils/logging"

	"go.uber.org/zap"
)

// defaultTopK is the search result limit; only the first rag.MaxSources of
// those make it into the prompt, but all of them are returned to the caller.
const defaultTopK = 5

type Embedder interface {
	Embed(ctx context.Context, text string) []float32
}

type Searcher interface {
	Search(ctx context.Context, vector []float32, collection string, limit int, outputFields []string) []map[string]any
}

type Completer interface {
	Complete(ctx context.Context, messages []types.ChatMessage) llm.Result
}

// ChatController runs the retrieval-augmented chat pipeline: embed the
// query, search the target collection, normalize the hits, assemble the
// bounded context, and ask the chat model. Every stage degrades to an empty
// value on failure; the pipeline always produces a ChatResponse.
type ChatController struct {
	embedder  Embedder
	searcher  Searcher
	completer Completer
	prompts   *rag.Prompts
}

func NewChatController(embedder Embedder, searcher Searcher, completer Completer, prompts *rag.Prompts) *ChatController {
	return &ChatController{
		embedder:  embedder,
		searcher:  searcher,
		completer: completer,
		prompts:   prompts,
	}
}

func (c *ChatController) Chat(ctx context.Context, collection string, req types.ChatRequest) types.ChatResponse {
	defer logging.LogDuration(ctx, "chat_pipeline")()

	sources := c.retrieve(ctx, req.Message, collection, defaultTopK)
	answer := c.respond(ctx, req, sources, rag.ContentPreviewChars)
	if sources == nil {
		sources = []types.SourceRecord{}
	}
	return types.ChatResponse{Response: answer, Sources: sources}
}

// DebugContext exposes the assembled context with the wider content bound,
// for inspecting what a query would put in front of the model.
func (c *ChatController) DebugContext(ctx context.Context, collection string, query string) map[string]any {
	sources := c.retrieve(ctx, query, collection, defaultTopK)
	contextBlock, promptKey := rag.BuildContext(sources, rag.DebugContentChars)
	if sources == nil {
		sources = []types.SourceRecord{}
	}
	return map[string]any{
		"collection":    collection,
		"sources":       sources,
		"context":       contextBlock,
		"system_prompt": c.prompts.System(promptKey),
	}
}

// retrieve embeds the query and searches the collection. An empty embedding
// means retrieval is skipped entirely; no search call is made.
func (c *ChatController) retrieve(ctx context.Context, query, collection string, topK int) []types.SourceRecord {
	vector := c.embedder.Embed(ctx, query)
	if len(vector) == 0 {
		logging.AppLogger.Info("skipping retrieval: no embedding",
			zap.String("collection", collection))
		return nil
	}
	schema := rag.SchemaFor(collection)
	hits := c.searcher.Search(ctx, vector, collection, topK, schema.OutputFields())
	sources := make([]types.SourceRecord, 0, len(hits))
	for _, hit := range hits {
		sources = append(sources, rag.Normalize(hit, collection))
	}
	return sources
}

// respond assembles the prompt and calls the chat model. Failures are
// rendered as answer text so the endpoint still returns a ChatResponse.
func (c *ChatController) respond(ctx context.Context, req types.ChatRequest, sources []types.SourceRecord, maxContentChars int) string {
	contextBlock, promptKey := rag.BuildContext(sources, maxContentChars)

	history := req.ConversationHistory
	if len(history) > rag.MaxHistory {
		history = history[len(history)-rag.MaxHistory:]
	}

	content := req.Message
	if contextBlock != "" {
		content += "\n\n" + contextBlock
	}

	messages := make([]types.ChatMessage, 0, len(history)+2)
	messages = append(messages, types.ChatMessage{Role: types.RoleSystem, Content: c.prompts.System(promptKey)})
	messages = append(messages, history...)
	messages = append(messages, types.ChatMessage{Role: types.RoleUser, Content: content})

	result := c.completer.Complete(ctx, messages)
	if result.Err == nil {
		return result.Text
	}
	logging.ErrorLogger.Error("chat generation failed",
		zap.String("kind", string(result.Err.Kind)),
		zap.String("detail", result.Err.Detail))
	if result.Err.Kind == llm.ErrConfig {
		return "OpenAI client not available. Please check your API key configuration."
	}
	return fmt.Sprintf("I encountered an error while processing your request: %s", result.Err.Detail)
}
