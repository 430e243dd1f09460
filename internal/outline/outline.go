// Package outline derives a flat table of contents from markdown body text.
package outline

import (
	"regexp"
	"strings"
)

// Item is one heading anchor in a document outline.
type Item struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Go's \s covers ASCII only; heading text can carry Unicode spaces such as
// U+00A0, which must strip and collapse like any other whitespace.
const spaceClass = `\t\n\v\f\r \p{Zs}\x{2028}\x{2029}\x{feff}`

// Level 2 and 3 headings only; the level-1 document title is not navigable.
var headingPattern = regexp.MustCompile(`(?m)^(#{2,3})[` + spaceClass + `]+(.+)$`)

var (
	slugStrip    = regexp.MustCompile(`[^\w` + spaceClass + `-]`)
	slugCollapse = regexp.MustCompile(`[` + spaceClass + `]+`)
)

// Extract scans a markdown body for ## and ### headings and returns them in
// document order. No matching headings yields an empty outline, which callers
// treat as "no navigation aid" rather than an error.
func Extract(content string) []Item {
	matches := headingPattern.FindAllStringSubmatch(content, -1)
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		text := strings.TrimSpace(m[2])
		items = append(items, Item{
			ID:    Slugify(text),
			Text:  text,
			Level: len(m[1]),
		})
	}
	return items
}

// Slugify derives the anchor ID for a heading: lowercase, strip everything
// outside word characters, whitespace and hyphens, then collapse whitespace
// runs into single hyphens. The markdown renderer assigns heading IDs with
// this exact function so TOC links always land on their target.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugStrip.ReplaceAllString(s, "")
	return slugCollapse.ReplaceAllString(s, "-")
}
