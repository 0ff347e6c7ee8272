package content

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func doc(title, publishedAt, summary string) string {
	return "---\ntitle: " + title + "\npublishedAt: " + publishedAt + "\nsummary: " + summary + "\n---\n\nBody of " + title + "."
}

func TestIndexListParsesMetadata(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.Save(RawPost{Slug: "hello", Content: doc("Hello", "2024-03-10", "First post")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	posts, err := NewIndex(s).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("List count = %d, want 1", len(posts))
	}

	p := posts[0]
	if p.Title != "Hello" {
		t.Errorf("Title = %q, want %q", p.Title, "Hello")
	}
	if p.Summary != "First post" {
		t.Errorf("Summary = %q, want %q", p.Summary, "First post")
	}
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	if !p.PublishedAt.Equal(want) {
		t.Errorf("PublishedAt = %v, want local midnight %v", p.PublishedAt, want)
	}
	if strings.Contains(p.Content, "---") {
		t.Errorf("Content should have front matter stripped: %q", p.Content)
	}
	if !strings.Contains(p.Content, "Body of Hello.") {
		t.Errorf("Content missing body: %q", p.Content)
	}
	if p.Link() != "/blog/hello/" {
		t.Errorf("Link = %q, want %q", p.Link(), "/blog/hello/")
	}
}

func TestIndexFind(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.Save(RawPost{Slug: "findable", Content: doc("Findable", "2024-01-01", "s")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	ix := NewIndex(s)
	got, err := ix.Find("findable")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if got.Title != "Findable" {
		t.Errorf("Title = %q, want %q", got.Title, "Findable")
	}

	_, err = ix.Find("absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(absent) should return ErrNotFound, got %v", err)
	}
}

func TestIndexListMalformedDateFailsLoudly(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.Save(RawPost{Slug: "bad", Content: doc("Bad", "not-a-date", "s")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := NewIndex(s).List(); err == nil {
		t.Fatal("List should fail on malformed publishedAt")
	}
}

func TestParseDateWithTimeComponent(t *testing.T) {
	got, err := ParseDate("2024-06-01T15:30:00")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	want := time.Date(2024, 6, 1, 15, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDateEmpty(t *testing.T) {
	if _, err := ParseDate(""); err == nil {
		t.Fatal("ParseDate should fail on empty value")
	}
}

func TestSortNewestFirst(t *testing.T) {
	posts := []Post{
		{Slug: "old", PublishedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local)},
		{Slug: "new", PublishedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)},
		{Slug: "mid", PublishedAt: time.Date(2023, 8, 1, 0, 0, 0, 0, time.Local)},
	}

	got := Sort(posts, 0)
	wantOrder := []string{"new", "mid", "old"}
	for i, slug := range wantOrder {
		if got[i].Slug != slug {
			t.Errorf("Sort[%d] = %q, want %q", i, got[i].Slug, slug)
		}
	}

	// Input must not be reordered.
	if posts[0].Slug != "old" {
		t.Errorf("Sort mutated its input: %v", posts)
	}
}

func TestSortIsStable(t *testing.T) {
	day := time.Date(2024, 2, 2, 0, 0, 0, 0, time.Local)
	posts := []Post{
		{Slug: "first", PublishedAt: day},
		{Slug: "second", PublishedAt: day},
		{Slug: "third", PublishedAt: day},
	}

	got := Sort(posts, 0)
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Slug != want {
			t.Errorf("Sort[%d] = %q, want %q (equal dates must keep input order)", i, got[i].Slug, want)
		}
	}
}

func TestSortLimit(t *testing.T) {
	posts := []Post{
		{Slug: "a", PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)},
		{Slug: "b", PublishedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)},
		{Slug: "c", PublishedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.Local)},
	}

	unlimited := Sort(posts, 0)
	limited := Sort(posts, 2)
	if len(limited) != 2 {
		t.Fatalf("Sort limit count = %d, want 2", len(limited))
	}
	for i := range limited {
		if limited[i].Slug != unlimited[i].Slug {
			t.Errorf("Sort limit[%d] = %q, want prefix of unlimited %q", i, limited[i].Slug, unlimited[i].Slug)
		}
	}

	// Limit larger than input returns everything.
	if got := Sort(posts, 10); len(got) != 3 {
		t.Errorf("Sort over-limit count = %d, want 3", len(got))
	}
}
