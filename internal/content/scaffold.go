package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const draftBody = `## This Week in AI

Write this week's analysis here.
`

// MostRecentSunday returns the most recent Sunday on or before now, at
// midnight UTC. Digests publish on Sundays, so that date names the week.
func MostRecentSunday(now time.Time) time.Time {
	now = now.UTC()
	sunday := now.AddDate(0, 0, -int(now.Weekday()))
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, time.UTC)
}

// NewWeeklyDraft builds a skeleton post for the week of the given date.
func NewWeeklyDraft(date time.Time) *DigestPost {
	_, week := date.ISOWeek()
	dateStr := date.Format("2006-01-02")
	return &DigestPost{
		Slug:       dateStr,
		Title:      fmt.Sprintf("AI & Tech Weekly Digest — Week of %s", date.Format("January 2, 2006")),
		Date:       dateStr,
		WeekNumber: week,
		Year:       date.Year(),
		Content:    draftBody,
	}
}

// WritePost serializes a post as front-matter markdown into the store,
// named by its slug. Unlike the tolerant read path, writing is strict:
// story categories and resource types are forced into their closed sets,
// significance is clamped to 1-10, and the categories list is rebuilt from
// the stories. Refuses to overwrite an existing document.
func (s *Store) WritePost(post *DigestPost) (string, error) {
	if post.Slug == "" {
		return "", fmt.Errorf("post has no slug")
	}

	meta := postMeta{
		Title:      post.Title,
		Date:       post.Date,
		WeekNumber: post.WeekNumber,
		Year:       post.Year,
		Summary:    post.Summary,
		TopStories: normalizeStories(post.TopStories),
		Resources:  normalizeResources(post.Resources),
	}
	for i, story := range meta.TopStories {
		meta.TopStories[i].Significance = clampSignificance(story.Significance)
	}
	meta.Categories = storyCategorySet(meta.TopStories)

	fm, err := yaml.Marshal(&meta)
	if err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating posts directory: %w", err)
	}

	path := filepath.Join(s.dir, post.Slug+postExt)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("post already exists: %s", path)
	}

	doc := fmt.Sprintf("---\n%s---\n\n%s", fm, post.Content)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing post: %w", err)
	}
	return path, nil
}

func clampSignificance(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// storyCategorySet derives the post's category tags from its stories,
// de-duplicated and sorted.
func storyCategorySet(stories []TopStory) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, s := range stories {
		if !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
