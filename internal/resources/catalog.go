// Package resources loads the curated resource catalog, a single JSON file
// of external links grouped by category.
package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one curated external resource.
type Entry struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Frequency   string `json:"frequency,omitempty"`
}

// Index is the catalog-wide snapshot: a last-updated date and an ordered
// mapping from category key to entries.
type Index struct {
	LastUpdated string     `json:"last_updated"`
	Categories  Categories `json:"categories"`
}

// Categories is an ordered mapping from category key to resource entries.
// The key set is open-ended; keys keep the order they appear in the file.
type Categories struct {
	keys    []string
	entries map[string][]Entry
}

// Keys returns the category keys in file order.
func (c Categories) Keys() []string {
	return c.keys
}

// Get returns the entries for a category key, or nil if absent.
func (c Categories) Get(key string) []Entry {
	return c.entries[key]
}

// Len returns the number of categories.
func (c Categories) Len() int {
	return len(c.keys)
}

// EntryCount returns the total number of entries across all categories.
func (c Categories) EntryCount() int {
	var n int
	for _, key := range c.keys {
		n += len(c.entries[key])
	}
	return n
}

// UnmarshalJSON decodes a JSON object while recording key order, which the
// standard map type would discard.
func (c *Categories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}

	c.keys = nil
	c.entries = make(map[string][]Entry)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var entries []Entry
		if err := dec.Decode(&entries); err != nil {
			return err
		}
		if _, seen := c.entries[key]; !seen {
			c.keys = append(c.keys, key)
		}
		c.entries[key] = entries
	}
	return nil
}

// MarshalJSON encodes the categories preserving file order.
func (c Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Load reads the catalog file. A missing or unparsable file yields an empty
// index rather than an error: unlike posts there is no per-field defaulting,
// the catalog is trusted to be well-formed or ignored wholesale.
func Load(path string) Index {
	empty := Index{Categories: Categories{entries: map[string][]Entry{}}}

	data, err := os.ReadFile(path)
	if err != nil {
		return empty
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return empty
	}
	if idx.Categories.entries == nil {
		idx.Categories.entries = map[string][]Entry{}
	}
	return idx
}

var categoryLabels = map[string]string{
	"newsletters":       "Newsletters",
	"podcasts":          "Podcasts",
	"youtube_channels":  "YouTube Channels",
	"blogs":             "Blogs",
	"research_trackers": "Research Trackers",
	"tools":             "Tools",
	"communities":       "Communities",
}

// CategoryLabel returns the display label for a catalog category key.
// Unknown keys are shown as-is so new categories need no code change.
func CategoryLabel(key string) string {
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	return key
}
