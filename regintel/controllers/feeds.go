package controllers

import (
	"fmt"
)

// maxLatestItems caps the latest-items endpoints regardless of the
// requested limit.
const maxLatestItems = 5

type FeedItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
}

type WarningLetterItem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	IssuedDate string   `json:"issued_date"`
	Company    string   `json:"company"`
	Violations []string `json:"violations"`
}

// FeedsController serves placeholder latest-item lists. The real feeds live
// in the vector database as chunks; these endpoints return mock previews
// until a dedicated listing index exists.
type FeedsController struct{}

func NewFeedsController() *FeedsController {
	return &FeedsController{}
}

func clampLimit(limit int) int {
	if limit > maxLatestItems {
		return maxLatestItems
	}
	if limit < 0 {
		return 0
	}
	return limit
}

func (f *FeedsController) LatestRSSFeeds(limit int) map[string][]FeedItem {
	n := clampLimit(limit)
	feeds := make([]FeedItem, 0, n)
	for i := 1; i <= n; i++ {
		feeds = append(feeds, FeedItem{
			ID:          fmt.Sprintf("feed_%d", i),
			Title:       fmt.Sprintf("Regulatory Update %d", i),
			Content:     "Latest regulatory news and updates from various sources",
			PublishedAt: "2025-08-18T20:00:00Z",
			Source:      "Regulatory News Feed",
		})
	}
	return map[string][]FeedItem{"feeds": feeds}
}

func (f *FeedsController) LatestWarningLetters(limit int) map[string][]WarningLetterItem {
	n := clampLimit(limit)
	letters := make([]WarningLetterItem, 0, n)
	for i := 1; i <= n; i++ {
		letters = append(letters, WarningLetterItem{
			ID:         fmt.Sprintf("wl_%d", i),
			Title:      fmt.Sprintf("FDA Warning Letter %d", i),
			Content:    "FDA warning letter regarding compliance issues",
			IssuedDate: "2025-08-18",
			Company:    fmt.Sprintf("Company %d", i),
			Violations: []string{"Quality System", "Documentation"},
		})
	}
	return map[string][]WarningLetterItem{"warning_letters": letters}
}
