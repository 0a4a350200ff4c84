package web

import (
	"embed"
	"net/http"
)

//go:embed index.html
var content embed.FS

// Index serves the chat interface page.
func Index(w http.ResponseWriter, r *http.Request) {
	page, err := content.ReadFile("index.html")
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
