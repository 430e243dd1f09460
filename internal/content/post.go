// Package content implements the digest content model: parsing front-matter
// markdown documents into typed posts and deriving the ordered corpus.
package content

import (
	"strings"
	"time"
)

// Words-per-minute assumed when deriving reading time.
const readingWPM = 200

// CategoryTech is the fallback category for top stories.
const CategoryTech = "tech"

// ResourceTypeArticle is the fallback type for per-post resources.
const ResourceTypeArticle = "article"

// DigestPost is one weekly digest, parsed from a front-matter markdown file.
type DigestPost struct {
	Slug        string
	Title       string
	Date        string
	WeekNumber  int
	Year        int
	Summary     string
	Categories  []string
	TopStories  []TopStory
	Resources   []Resource
	Content     string
	ReadingTime int
}

// TopStory is a headline item within a digest.
type TopStory struct {
	Title        string `yaml:"title"`
	Category     string `yaml:"category"`
	Significance int    `yaml:"significance"`
	SourceURL    string `yaml:"source_url"`
}

// Resource is a curated link attached to a digest.
type Resource struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

var storyCategories = map[string]string{
	"ai-research": "AI Research",
	"ai-industry": "AI Industry",
	"tech":        "Tech",
	"open-source": "Open Source",
	"policy":      "Policy",
}

var resourceTypes = map[string]string{
	"paper":      "Paper",
	"article":    "Article",
	"tool":       "Tool",
	"repo":       "Repo",
	"video":      "Video",
	"podcast":    "Podcast",
	"newsletter": "Newsletter",
}

// ValidCategory reports whether c is one of the closed story category set.
func ValidCategory(c string) bool {
	_, ok := storyCategories[c]
	return ok
}

// ValidResourceType reports whether t is one of the closed resource type set.
func ValidResourceType(t string) bool {
	_, ok := resourceTypes[t]
	return ok
}

// CategoryLabel returns the display label for a story category.
// Unknown categories are shown as-is.
func CategoryLabel(c string) string {
	if label, ok := storyCategories[c]; ok {
		return label
	}
	return c
}

// ResourceTypeLabel returns the display label for a resource type.
func ResourceTypeLabel(t string) string {
	if label, ok := resourceTypes[t]; ok {
		return label
	}
	return t
}

// SignificanceLabel maps a story significance score to its display label.
// Out-of-range scores are not clamped; anything below 4 reads as Minor.
func SignificanceLabel(score int) string {
	switch {
	case score >= 9:
		return "Critical"
	case score >= 7:
		return "Major"
	case score >= 4:
		return "Notable"
	default:
		return "Minor"
	}
}

// ReadingTime estimates minutes to read content at 200 words per minute.
// Empty content yields 0; any non-empty content yields at least 1.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	minutes := (words + readingWPM - 1) / readingWPM
	if minutes < 1 {
		return 1
	}
	return minutes
}

// FormatDate renders an ISO date string as e.g. "January 7, 2024".
// Strings that do not parse are returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}
