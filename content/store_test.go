package content

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	return s, func() { s.Close() }
}

const sampleDoc = `---
title: Test Post
publishedAt: 2024-01-15
summary: A test post summary
---

# Test Content

This is test content.`

func TestSaveAndLoad(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.Save(RawPost{Slug: "test-post", Content: sampleDoc}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load("test-post")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Slug != "test-post" {
		t.Errorf("Slug = %q, want %q", got.Slug, "test-post")
	}
	if got.Content != sampleDoc {
		t.Errorf("Content = %q, want %q", got.Content, sampleDoc)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.Save(RawPost{Slug: "p", Content: "original"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(RawPost{Slug: "p", Content: "updated"}); err != nil {
		t.Fatalf("Save update failed: %v", err)
	}

	got, err := s.Load("p")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Content != "updated" {
		t.Errorf("Content = %q, want %q", got.Content, "updated")
	}
}

func TestLoadNotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.Load("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadAllKeepsInsertionOrder(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	slugs := []string{"zebra", "alpha", "middle"}
	for _, slug := range slugs {
		if err := s.Save(RawPost{Slug: slug, Content: "c"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != len(slugs) {
		t.Fatalf("LoadAll count = %d, want %d", len(got), len(slugs))
	}
	for i, slug := range slugs {
		if got[i].Slug != slug {
			t.Errorf("LoadAll[%d].Slug = %q, want %q", i, got[i].Slug, slug)
		}
	}
}

func TestDelete(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.Save(RawPost{Slug: "to-delete", Content: "c"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Delete("to-delete"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Load("to-delete"); !errors.Is(err, ErrNotFound) {
		t.Errorf("post should not exist after delete, got err: %v", err)
	}
}

func TestDeleteNonexistent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.Delete("nonexistent"); err != nil {
		t.Errorf("Delete on nonexistent should not error, got: %v", err)
	}
}
