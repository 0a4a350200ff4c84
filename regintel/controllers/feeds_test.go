package controllers

import "testing"

func TestLatestRSSFeedsClamp(t *testing.T) {
	f := NewFeedsController()

	tests := []struct {
		limit int
		want  int
	}{
		{100, 5},
		{5, 5},
		{2, 2},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		got := len(f.LatestRSSFeeds(tt.limit)["feeds"])
		if got != tt.want {
			t.Errorf("LatestRSSFeeds(%d) returned %d items, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestLatestWarningLettersClamp(t *testing.T) {
	f := NewFeedsController()

	letters := f.LatestWarningLetters(10)["warning_letters"]
	if len(letters) != 5 {
		t.Fatalf("got %d letters, want 5", len(letters))
	}
	if letters[0].ID != "wl_1" || letters[4].ID != "wl_5" {
		t.Errorf("letter ids = %q..%q", letters[0].ID, letters[4].ID)
	}
	if len(letters[0].Violations) == 0 {
		t.Error("letter has no violations listed")
	}
}
