package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const postExt = ".md"

// Store reads digest posts from a directory of markdown files, one per week,
// each named by its slug. Every read re-parses from disk; there is no cache,
// so concurrent readers never contend and edits show up on the next load.
type Store struct {
	dir string
}

// NewStore creates a Store over the given posts directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the backing posts directory.
func (s *Store) Dir() string {
	return s.dir
}

// LoadAll parses every markdown document in the store and returns the corpus
// sorted by date descending, newest first. Documents that fail to parse are
// dropped silently; a missing directory yields an empty corpus. Posts sharing
// a date sort by ascending slug so the order is stable across runs.
func (s *Store) LoadAll() []*DigestPost {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var posts []*DigestPost
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, postExt) {
			continue
		}
		if post := s.parseFile(name); post != nil {
			posts = append(posts, post)
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts
}

// GetBySlug re-parses the single matching document directly, without a full
// corpus load. Returns nil if the document is absent or malformed.
func (s *Store) GetBySlug(slug string) *DigestPost {
	if slug == "" || strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return nil
	}
	return s.parseFile(slug + postExt)
}

// Adjacent returns the chronological neighbors of the post with the given
// slug: prev is the newer post, next the older one. Either side is nil at the
// corpus boundary; both are nil when the slug is unknown.
func (s *Store) Adjacent(slug string) (prev, next *DigestPost) {
	posts := s.LoadAll()
	for i, p := range posts {
		if p.Slug != slug {
			continue
		}
		if i > 0 {
			prev = posts[i-1]
		}
		if i < len(posts)-1 {
			next = posts[i+1]
		}
		return prev, next
	}
	return nil, nil
}

func (s *Store) parseFile(name string) *DigestPost {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil
	}
	return Parse(strings.TrimSuffix(name, postExt), raw)
}
