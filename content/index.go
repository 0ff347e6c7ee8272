package content

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Metadata is the YAML front matter every post document starts with.
type Metadata struct {
	Title       string `yaml:"title"`
	PublishedAt string `yaml:"publishedAt"`
	Summary     string `yaml:"summary"`
	Image       string `yaml:"image"`
}

// Post is a parsed blog post ready for listing or rendering.
type Post struct {
	Slug        string
	Title       string
	PublishedAt time.Time
	Summary     string
	Image       string // optional path under the static dir
	Content     string // Markdown body, front matter stripped
}

// Link returns the site-relative URL of the post.
func (p Post) Link() string {
	return "/blog/" + p.Slug + "/"
}

// Index is the read-through view over the Store. It holds no state beyond
// the current call; callers wanting caching layer one on top.
type Index struct {
	store *Store
}

// NewIndex creates an Index backed by the given Store.
func NewIndex(s *Store) *Index {
	return &Index{store: s}
}

// List loads and parses every post. A document with malformed front matter
// or an unparseable date fails the whole load: bad dates are authoring bugs
// and should not be silently defaulted.
func (ix *Index) List() ([]Post, error) {
	raws, err := ix.store.LoadAll()
	if err != nil {
		return nil, err
	}
	posts := make([]Post, 0, len(raws))
	for _, raw := range raws {
		p, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Find returns the post with the exact slug, or ErrNotFound. Callers decide
// whether absence is a 404 or a soft case.
func (ix *Index) Find(slug string) (Post, error) {
	raw, err := ix.store.Load(slug)
	if err != nil {
		return Post{}, err
	}
	return Parse(raw)
}

// Sort orders posts by publication date, newest first. The sort is stable:
// posts sharing a date keep their input order. A positive limit truncates
// the result after sorting.
func Sort(posts []Post, limit int) []Post {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// Parse turns a raw document into a Post. Exposed so the admin surface can
// validate a document before persisting it.
func Parse(raw RawPost) (Post, error) {
	var meta Metadata
	body, err := frontmatter.Parse(strings.NewReader(raw.Content), &meta)
	if err != nil {
		return Post{}, fmt.Errorf("post %q: parse front matter: %w", raw.Slug, err)
	}
	published, err := ParseDate(meta.PublishedAt)
	if err != nil {
		return Post{}, fmt.Errorf("post %q: %w", raw.Slug, err)
	}
	return Post{
		Slug:        raw.Slug,
		Title:       meta.Title,
		PublishedAt: published,
		Summary:     meta.Summary,
		Image:       meta.Image,
		Content:     string(body),
	}, nil
}

// ParseDate parses a publishedAt value. A date without a time component is
// normalized to local midnight of that day, explicitly, so "time ago"
// formatting and sorting both work from the same instant.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("missing publishedAt date")
	}
	if !strings.Contains(value, "T") {
		value += "T00:00:00"
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid publishedAt date %q: %w", value, err)
	}
	return t, nil
}
