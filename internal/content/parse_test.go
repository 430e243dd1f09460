package content

import (
	"testing"
)

const fullDoc = `---
title: "AI & Tech Weekly Digest — Week of January 7, 2024"
date: "2024-01-07"
week_number: 1
year: 2024
summary: "Big week for open models."
categories:
  - ai-research
  - tech
top_stories:
  - title: "New reasoning model released"
    category: ai-research
    significance: 9
    source_url: "https://example.com/model"
  - title: "Chip shortage easing"
    category: hardware
    source_url: "https://example.com/chips"
resources:
  - title: "Attention survey"
    url: "https://example.com/survey"
    type: paper
    description: "A survey."
  - title: "Weird link"
    url: "https://example.com/weird"
    type: hologram
    description: "Unknown type."
---

## Top Stories

Body text goes here.
`

func TestParseSlugFromFilename(t *testing.T) {
	post := Parse("2024-w01", []byte(fullDoc))
	if post == nil {
		t.Fatal("expected post, got nil")
	}
	if post.Slug != "2024-w01" {
		t.Errorf("expected slug from filename, got %q", post.Slug)
	}
}

func TestParseFullDocument(t *testing.T) {
	post := Parse("2024-01-07", []byte(fullDoc))
	if post == nil {
		t.Fatal("expected post, got nil")
	}

	if post.Title != "AI & Tech Weekly Digest — Week of January 7, 2024" {
		t.Errorf("unexpected title: %q", post.Title)
	}
	if post.Date != "2024-01-07" {
		t.Errorf("unexpected date: %q", post.Date)
	}
	if post.WeekNumber != 1 || post.Year != 2024 {
		t.Errorf("unexpected week/year: %d/%d", post.WeekNumber, post.Year)
	}
	if len(post.Categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(post.Categories))
	}
	if len(post.TopStories) != 2 {
		t.Fatalf("expected 2 stories, got %d", len(post.TopStories))
	}
	if post.TopStories[0].Significance != 9 {
		t.Errorf("expected significance 9, got %d", post.TopStories[0].Significance)
	}
	if len(post.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(post.Resources))
	}
	if post.ReadingTime < 1 {
		t.Errorf("expected reading time >= 1, got %d", post.ReadingTime)
	}
}

func TestParseNormalizesStoryAndResourceFields(t *testing.T) {
	post := Parse("2024-01-07", []byte(fullDoc))
	if post == nil {
		t.Fatal("expected post, got nil")
	}

	// Unknown category falls back to tech; missing significance reads as 5.
	second := post.TopStories[1]
	if second.Category != "tech" {
		t.Errorf("expected unknown category to default to tech, got %q", second.Category)
	}
	if second.Significance != 5 {
		t.Errorf("expected default significance 5, got %d", second.Significance)
	}

	if post.Resources[1].Type != "article" {
		t.Errorf("expected unknown resource type to default to article, got %q", post.Resources[1].Type)
	}
}

func TestParseEmptyFrontMatter(t *testing.T) {
	post := Parse("2024-01-07", []byte("---\n---\n\nJust a body with a few words.\n"))
	if post == nil {
		t.Fatal("expected post, got nil")
	}
	if post.Title != "" || post.Date != "" || post.Summary != "" {
		t.Error("expected empty string defaults for missing fields")
	}
	if post.WeekNumber != 0 || post.Year != 0 {
		t.Errorf("expected zero week/year, got %d/%d", post.WeekNumber, post.Year)
	}
	if len(post.Categories) != 0 || len(post.TopStories) != 0 || len(post.Resources) != 0 {
		t.Error("expected empty lists for missing fields")
	}
	if post.ReadingTime < 1 {
		t.Errorf("expected reading time >= 1 for non-empty body, got %d", post.ReadingTime)
	}
}

func TestParseEmptyBody(t *testing.T) {
	post := Parse("2024-01-07", []byte("---\ntitle: Empty\n---\n"))
	if post == nil {
		t.Fatal("expected post, got nil")
	}
	if post.ReadingTime != 0 {
		t.Errorf("expected reading time 0 for empty body, got %d", post.ReadingTime)
	}
}

func TestParseMalformedFrontMatter(t *testing.T) {
	post := Parse("2024-01-07", []byte("---\ntitle: [unclosed\n---\nbody\n"))
	if post != nil {
		t.Errorf("expected nil for malformed front matter, got %+v", post)
	}
}

func TestParseNoFrontMatter(t *testing.T) {
	post := Parse("2024-01-07", []byte("Plain body without any metadata block.\n"))
	if post == nil {
		t.Fatal("expected post, got nil")
	}
	if post.Title != "" {
		t.Errorf("expected empty title, got %q", post.Title)
	}
	if post.Content == "" {
		t.Error("expected full text as body")
	}
}
