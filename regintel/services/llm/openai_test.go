package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/markboenigk/regintel/regintel/types"
)

func TestCompleteRequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body struct {
			Model       string              `json:"model"`
			Messages    []types.ChatMessage `json:"messages"`
			MaxTokens   int                 `json:"max_tokens"`
			Temperature float64             `json:"temperature"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if body.Model != "gpt-4" {
			t.Errorf("model = %q", body.Model)
		}
		if body.MaxTokens != 1000 {
			t.Errorf("max_tokens = %d", body.MaxTokens)
		}
		if body.Temperature != 0.7 {
			t.Errorf("temperature = %v", body.Temperature)
		}
		if len(body.Messages) != 2 || body.Messages[0].Role != types.RoleSystem {
			t.Errorf("messages = %v", body.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "hello there"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	result := c.Complete(context.Background(), []types.ChatMessage{
		{Role: types.RoleSystem, Content: "system"},
		{Role: types.RoleUser, Content: "hi"},
	})

	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Text != "hello there" {
		t.Errorf("text = %q", result.Text)
	}
}

func TestCompleteWithoutKeyReturnsConfigError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	result := c.Complete(context.Background(), nil)

	if result.Err == nil || result.Err.Kind != ErrConfig {
		t.Fatalf("result = %+v, want config error", result)
	}
	if calls != 0 {
		t.Errorf("inert client made %d calls", calls)
	}
}

func TestCompleteNon200ReturnsRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	result := c.Complete(context.Background(), nil)

	if result.Err == nil || result.Err.Kind != ErrRequest {
		t.Fatalf("result = %+v, want request error", result)
	}
}

func TestCompleteEmptyChoicesReturnsResponseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	result := c.Complete(context.Background(), nil)

	if result.Err == nil || result.Err.Kind != ErrResponse {
		t.Fatalf("result = %+v, want response error", result)
	}
}
