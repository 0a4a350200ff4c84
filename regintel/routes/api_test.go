package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/markboenigk/regintel/regintel/config"
	"github.com/markboenigk/regintel/regintel/controllers"
	"github.com/markboenigk/regintel/regintel/rag"
	"github.com/markboenigk/regintel/regintel/services/llm"
	"github.com/markboenigk/regintel/regintel/types"
)

type fakeEmbedder struct {
	vector []float32
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) []float32 {
	return f.vector
}

type fakeSearcher struct {
	hitsByCollection map[string][]map[string]any
}

func (f *fakeSearcher) Search(ctx context.Context, vector []float32, collection string, limit int, outputFields []string) []map[string]any {
	return f.hitsByCollection[collection]
}

type fakeCompleter struct {
	result llm.Result
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []types.ChatMessage) llm.Result {
	return f.result
}

func testRouter(embedder controllers.Embedder, searcher controllers.Searcher, completer controllers.Completer) http.Handler {
	cfg := config.Config{DefaultCollection: rag.CollectionRSSFeeds}
	chatCtrl := controllers.NewChatController(embedder, searcher, completer, rag.LoadPrompts(""))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/api", APIRoutes(chatCtrl, controllers.NewCollectionsController(),
		controllers.NewFeedsController(), controllers.NewHealthController(), cfg))
	r.Mount("/auth", AuthRoutes(controllers.NewAuthController()))
	return r
}

func defaultRouter() http.Handler {
	return testRouter(
		&fakeEmbedder{vector: []float32{0.1}},
		&fakeSearcher{hitsByCollection: map[string][]map[string]any{
			rag.CollectionRSSFeeds: {
				{"text_content": "chunk", "article_title": "A title"},
			},
		}},
		&fakeCompleter{result: llm.Ok("an answer")},
	)
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, h http.Handler, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if out != nil {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return w
}

func TestHealthEndpoint(t *testing.T) {
	var body map[string]string
	w := getJSON(t, defaultRouter(), "/api/health", &body)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q, want healthy", body["status"])
	}
	if body["message"] == "" {
		t.Error("message field is empty")
	}
}

func TestChatEndpointRoundTrip(t *testing.T) {
	w := postJSON(t, defaultRouter(), "/api/chat", types.ChatRequest{Message: "hello"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp types.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Response != "an answer" {
		t.Errorf("response = %q", resp.Response)
	}
	if len(resp.Sources) > 5 {
		t.Errorf("len(sources) = %d, want at most the requested top-k", len(resp.Sources))
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Title != "A title" {
		t.Errorf("sources = %v", resp.Sources)
	}
}

func TestChatEndpointBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("{nope")))
	w := httptest.NewRecorder()
	defaultRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChatUnknownCollectionStill200(t *testing.T) {
	w := postJSON(t, defaultRouter(), "/api/chat/unknown_collection", types.ChatRequest{Message: "anything"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp types.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Sources) != 0 {
		t.Errorf("sources = %v, want empty for unknown collection", resp.Sources)
	}
}

func TestChatCollectionEndpointSelectsCollection(t *testing.T) {
	router := testRouter(
		&fakeEmbedder{vector: []float32{0.1}},
		&fakeSearcher{hitsByCollection: map[string][]map[string]any{
			rag.CollectionFDAWarningLetters: {
				{"text_content": "letter", "company_name": "Acme Corp"},
			},
		}},
		&fakeCompleter{result: llm.Ok("compliance answer")},
	)
	w := postJSON(t, router, "/api/chat/fda_warning_letters", types.ChatRequest{Message: "violations?"})

	var resp types.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Title != "Acme Corp" {
		t.Errorf("sources = %v", resp.Sources)
	}
	if resp.Sources[0].Collection != rag.CollectionFDAWarningLetters {
		t.Errorf("collection = %q", resp.Sources[0].Collection)
	}
}

func TestCollectionsEndpoint(t *testing.T) {
	var body map[string][]controllers.CollectionDescriptor
	w := getJSON(t, defaultRouter(), "/api/collections", &body)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if len(body["collections"]) != 2 {
		t.Fatalf("got %d collections, want 2", len(body["collections"]))
	}
	if body["collections"][0].ID != rag.CollectionRSSFeeds {
		t.Errorf("first collection = %q", body["collections"][0].ID)
	}
}

func TestLatestFeedsLimitClamp(t *testing.T) {
	var body map[string][]controllers.FeedItem
	getJSON(t, defaultRouter(), "/api/rss-feeds/latest?limit=100", &body)
	if got := len(body["feeds"]); got != 5 {
		t.Errorf("limit=100 returned %d items, want 5", got)
	}

	body = nil
	getJSON(t, defaultRouter(), "/api/rss-feeds/latest?limit=2", &body)
	if got := len(body["feeds"]); got != 2 {
		t.Errorf("limit=2 returned %d items, want 2", got)
	}

	// Default limit is 10, clamped to 5.
	body = nil
	getJSON(t, defaultRouter(), "/api/rss-feeds/latest", &body)
	if got := len(body["feeds"]); got != 5 {
		t.Errorf("default limit returned %d items, want 5", got)
	}
}

func TestLatestWarningLettersEndpoint(t *testing.T) {
	var body map[string][]controllers.WarningLetterItem
	w := getJSON(t, defaultRouter(), "/api/warning-letters/latest?limit=100", &body)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if got := len(body["warning_letters"]); got != 5 {
		t.Errorf("got %d letters, want 5", got)
	}
}

func TestDebugContextEndpoint(t *testing.T) {
	w := postJSON(t, defaultRouter(), "/api/debug/context", map[string]string{
		"message": "what happened?",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["collection"] != rag.CollectionRSSFeeds {
		t.Errorf("collection = %v, want default", body["collection"])
	}
	if body["context"] == "" {
		t.Error("context is empty")
	}
}

func TestAuthPlaceholders(t *testing.T) {
	var me map[string]any
	w := getJSON(t, defaultRouter(), "/auth/me", &me)
	if w.Code != http.StatusOK {
		t.Errorf("/auth/me status = %d", w.Code)
	}
	if authed, _ := me["authenticated"].(bool); authed {
		t.Error("placeholder auth reports authenticated")
	}
	if me["user"] != nil {
		t.Errorf("user = %v, want null", me["user"])
	}

	var login map[string]any
	w = getJSON(t, defaultRouter(), "/auth/login", &login)
	if w.Code != http.StatusOK {
		t.Errorf("/auth/login status = %d", w.Code)
	}
	if login["message"] == "" {
		t.Error("login message is empty")
	}
}
