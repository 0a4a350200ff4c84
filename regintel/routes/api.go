package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/markboenigk/regintel/regintel/config"
	"github.com/markboenigk/regintel/regintel/controllers"
	"github.com/markboenigk/regintel/regintel/types"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			if status >= http.StatusInternalServerError {
				// never leak handler internals on a 500
				http.Error(w, "Internal server error", status)
				return
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

func limitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func APIRoutes(
	chatCtrl *controllers.ChatController,
	collectionsCtrl *controllers.CollectionsController,
	feedsCtrl *controllers.FeedsController,
	healthCtrl *controllers.HealthController,
	cfg config.Config,
) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", healthCtrl.HealthCheck)

	// POST /api/chat : chat against the default collection
	r.Post("/chat", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		return chatCtrl.Chat(r.Context(), cfg.DefaultCollection, req), http.StatusOK, nil
	}))

	// POST /api/chat/{collection} : chat against a caller-chosen collection.
	// The identifier is not validated; an unknown collection simply finds
	// nothing downstream.
	r.Post("/chat/{collection}", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		collection := chi.URLParam(r, "collection")
		return chatCtrl.Chat(r.Context(), collection, req), http.StatusOK, nil
	}))

	// POST /api/debug/context : assembled prompt context for a query,
	// with the wider per-source content bound
	r.Post("/debug/context", handleJSON(func(r *http.Request) (any, int, error) {
		var req struct {
			Message    string `json:"message"`
			Collection string `json:"collection"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		collection := req.Collection
		if collection == "" {
			collection = cfg.DefaultCollection
		}
		return chatCtrl.DebugContext(r.Context(), collection, req.Message), http.StatusOK, nil
	}))

	r.Get("/collections", handleJSON(func(r *http.Request) (any, int, error) {
		return collectionsCtrl.List(), http.StatusOK, nil
	}))

	r.Get("/rss-feeds/latest", handleJSON(func(r *http.Request) (any, int, error) {
		return feedsCtrl.LatestRSSFeeds(limitParam(r, 10)), http.StatusOK, nil
	}))

	r.Get("/warning-letters/latest", handleJSON(func(r *http.Request) (any, int, error) {
		return feedsCtrl.LatestWarningLetters(limitParam(r, 10)), http.StatusOK, nil
	}))

	return r
}
