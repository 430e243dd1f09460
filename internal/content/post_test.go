package content

import (
	"strings"
	"testing"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"one word", "hello", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"just over one minute", strings.Repeat("word ", 201), 2},
		{"three minutes", strings.Repeat("word ", 450), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.content); got != tt.want {
				t.Errorf("ReadingTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSignificanceLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{10, "Critical"},
		{9, "Critical"},
		{8, "Major"},
		{7, "Major"},
		{6, "Notable"},
		{4, "Notable"},
		{3, "Minor"},
		{0, "Minor"},
		// Out-of-range scores pass through with last-bucket-wins labels.
		{15, "Critical"},
		{-2, "Minor"},
	}
	for _, tt := range tests {
		if got := SignificanceLabel(tt.score); got != tt.want {
			t.Errorf("SignificanceLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel("ai-research"); got != "AI Research" {
		t.Errorf("expected 'AI Research', got %q", got)
	}
	if got := CategoryLabel("open-source"); got != "Open Source" {
		t.Errorf("expected 'Open Source', got %q", got)
	}
	if got := CategoryLabel("underwater-basket-weaving"); got != "underwater-basket-weaving" {
		t.Errorf("expected unknown category passed through, got %q", got)
	}
}

func TestResourceTypeLabel(t *testing.T) {
	if got := ResourceTypeLabel("paper"); got != "Paper" {
		t.Errorf("expected 'Paper', got %q", got)
	}
	if got := ResourceTypeLabel("mixtape"); got != "mixtape" {
		t.Errorf("expected unknown type passed through, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-01-07"); got != "January 7, 2024" {
		t.Errorf("expected 'January 7, 2024', got %q", got)
	}
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("expected unparsable date returned unchanged, got %q", got)
	}
	if got := FormatDate(""); got != "" {
		t.Errorf("expected empty date returned unchanged, got %q", got)
	}
}
