// Command-line smoke check for the retrieval pipeline: embeds a query,
// searches a collection, and prints the sources plus the model's answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/markboenigk/regintel/regintel/config"
	"github.com/markboenigk/regintel/regintel/controllers"
	"github.com/markboenigk/regintel/regintel/rag"
	"github.com/markboenigk/regintel/regintel/services/embedding"
	"github.com/markboenigk/regintel/regintel/services/llm"
	"github.com/markboenigk/regintel/regintel/services/vectordb"
	"github.com/markboenigk/regintel/regintel/types"
	"github.com/markboenigk/regintel/regintel/utils/logging"
)

func main() {
	query := flag.String("query", "What news about Stryker?", "query to run")
	collection := flag.String("collection", "", "target collection (default: configured default)")
	debug := flag.Bool("debug", false, "print the assembled context instead of chatting")
	flag.Parse()

	logging.InitLogger()
	cfg := config.LoadConfig()

	target := *collection
	if target == "" {
		target = cfg.DefaultCollection
	}

	embedder := embedding.NewClient(embedding.Config{APIKey: cfg.OpenAIAPIKey})
	searcher := vectordb.NewClient(vectordb.Config{URI: cfg.MilvusURI, Token: cfg.MilvusToken})
	completer := llm.NewClient(llm.Config{APIKey: cfg.OpenAIAPIKey})
	prompts := rag.LoadPrompts(cfg.PromptsFile)
	ctrl := controllers.NewChatController(embedder, searcher, completer, prompts)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("Query: %s\nCollection: %s\n\n", *query, target)

	if *debug {
		out := ctrl.DebugContext(ctx, target, *query)
		sources, _ := out["sources"].([]types.SourceRecord)
		fmt.Printf("Sources fetched: %d\n", len(sources))
		fmt.Printf("\n--- Context ---\n%s\n", out["context"])
		fmt.Printf("\n--- System prompt ---\n%s\n", out["system_prompt"])
		os.Exit(0)
	}

	resp := ctrl.Chat(ctx, target, types.ChatRequest{Message: *query})
	fmt.Printf("Sources fetched: %d\n", len(resp.Sources))
	for i, src := range resp.Sources {
		fmt.Printf("  %d. %s (%s)\n", i+1, src.Title, src.Collection)
	}
	fmt.Printf("\n--- Chat Response ---\n\n%s\n", resp.Response)
}
