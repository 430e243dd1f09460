package content

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// postMeta mirrors the front-matter data contract shared with the
// publishing pipeline. Every field is optional.
type postMeta struct {
	Title      string     `yaml:"title"`
	Date       string     `yaml:"date"`
	WeekNumber int        `yaml:"week_number"`
	Year       int        `yaml:"year"`
	Summary    string     `yaml:"summary"`
	Categories []string   `yaml:"categories"`
	TopStories []TopStory `yaml:"top_stories"`
	Resources  []Resource `yaml:"resources"`
}

// Parse turns one raw front-matter markdown document into a DigestPost.
// The slug comes from the storage name, never from metadata, so renaming a
// post's title cannot break its URL. Missing metadata fields get zero-value
// defaults; a malformed front-matter block yields nil rather than an error,
// so one bad document never takes down the corpus.
func Parse(slug string, raw []byte) *DigestPost {
	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return nil
	}

	content := string(body)
	return &DigestPost{
		Slug:        slug,
		Title:       meta.Title,
		Date:        meta.Date,
		WeekNumber:  meta.WeekNumber,
		Year:        meta.Year,
		Summary:     meta.Summary,
		Categories:  meta.Categories,
		TopStories:  normalizeStories(meta.TopStories),
		Resources:   normalizeResources(meta.Resources),
		Content:     content,
		ReadingTime: ReadingTime(content),
	}
}

// normalizeStories applies the per-field story defaults: unknown or missing
// categories become "tech", an absent significance reads as 5. Out-of-range
// significance values pass through untouched; the presentation layer maps
// them with last-bucket-wins label semantics.
func normalizeStories(stories []TopStory) []TopStory {
	out := make([]TopStory, 0, len(stories))
	for _, s := range stories {
		if !ValidCategory(s.Category) {
			s.Category = CategoryTech
		}
		if s.Significance == 0 {
			s.Significance = 5
		}
		out = append(out, s)
	}
	return out
}

func normalizeResources(resources []Resource) []Resource {
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if !ValidResourceType(r.Type) {
			r.Type = ResourceTypeArticle
		}
		out = append(out, r)
	}
	return out
}
