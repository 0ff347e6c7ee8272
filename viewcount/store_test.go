package viewcount

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "views.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	return s, func() { s.Close() }
}

func TestIncrementCreatesRecordAtOne(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.Increment("fresh-slug"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	records, err := s.SelectAll()
	if err != nil {
		t.Fatalf("SelectAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("SelectAll count = %d, want 1", len(records))
	}
	if records[0].Slug != "fresh-slug" || records[0].Count != 1 {
		t.Errorf("record = %+v, want {fresh-slug 1}", records[0])
	}
}

func TestIncrementAddsExactlyOne(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		if err := s.Increment("post"); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}

	records, err := s.SelectAll()
	if err != nil {
		t.Fatalf("SelectAll failed: %v", err)
	}
	if got := CountFor(records, "post"); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}

	if err := s.Increment("post"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	records, err = s.SelectAll()
	if err != nil {
		t.Fatalf("SelectAll failed: %v", err)
	}
	if got := CountFor(records, "post"); got != 4 {
		t.Errorf("count after one more increment = %d, want 4", got)
	}
}

func TestAggregateEqualsSumOfRecords(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	increments := map[string]int{"a": 2, "b": 5, "c": 1}
	for slug, n := range increments {
		for i := 0; i < n; i++ {
			if err := s.Increment(slug); err != nil {
				t.Fatalf("Increment failed: %v", err)
			}
		}
	}

	records, err := s.SelectAll()
	if err != nil {
		t.Fatalf("SelectAll failed: %v", err)
	}
	sum := 0
	for _, r := range records {
		sum += r.Count
	}

	total, err := s.Aggregate()
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if total != sum {
		t.Errorf("Aggregate = %d, want sum of records %d", total, sum)
	}
	if total != 8 {
		t.Errorf("Aggregate = %d, want 8", total)
	}
}

func TestAggregateEmpty(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	total, err := s.Aggregate()
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Aggregate on empty table = %d, want 0", total)
	}
}

func TestCountFor(t *testing.T) {
	records := []Record{{Slug: "a", Count: 7}, {Slug: "b", Count: 2}}
	if got := CountFor(records, "a"); got != 7 {
		t.Errorf("CountFor(a) = %d, want 7", got)
	}
	if got := CountFor(records, "missing"); got != 0 {
		t.Errorf("CountFor(missing) = %d, want 0", got)
	}
	if got := CountFor(nil, "a"); got != 0 {
		t.Errorf("CountFor(nil) = %d, want 0", got)
	}
}
