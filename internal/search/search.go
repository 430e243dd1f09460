// Package search builds a lightweight searchable projection of the digest
// corpus and answers substring queries against it. Matching is
// existence-based, not ranked: results keep corpus recency order.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/aitechdigest/digest/internal/content"
)

const (
	// Queries with fewer characters than this (after trimming) return
	// nothing, which suppresses noisy single-character matches while typing.
	minQueryLength = 2

	// MaxResults caps how many matches a query returns.
	MaxResults = 5

	// DebounceMillis is the recommended keystroke debounce for interactive
	// callers. Query itself is synchronous and pure; the debounce is
	// caller-side policy.
	DebounceMillis = 300
)

// Record is the searchable projection of one post.
type Record struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Date           string   `json:"date"`
	Summary        string   `json:"summary"`
	StoryHeadlines []string `json:"storyHeadlines"`

	haystack string
}

// BuildIndex projects the corpus into search records, preserving order.
func BuildIndex(posts []*content.DigestPost) []Record {
	records := make([]Record, 0, len(posts))
	for _, p := range posts {
		r := Record{
			Slug:    p.Slug,
			Title:   p.Title,
			Date:    p.Date,
			Summary: p.Summary,
		}
		for _, s := range p.TopStories {
			r.StoryHeadlines = append(r.StoryHeadlines, s.Title)
		}
		parts := append([]string{r.Title, r.Summary}, r.StoryHeadlines...)
		r.haystack = strings.ToLower(strings.Join(parts, " "))
		records = append(records, r)
	}
	return records
}

// Query returns the records whose title, summary or story headlines contain
// the query text, case-insensitively, capped at MaxResults and in index
// order.
func Query(index []Record, query string) []Record {
	// The length gate counts characters of the trimmed text; matching keeps
	// the query's own whitespace.
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minQueryLength {
		return nil
	}
	q := strings.ToLower(query)

	var matches []Record
	for _, r := range index {
		if strings.Contains(r.haystack, q) {
			matches = append(matches, r)
			if len(matches) == MaxResults {
				break
			}
		}
	}
	return matches
}
