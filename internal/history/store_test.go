// internal/history/store_test.go
package history

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T, limit int) *Store {
	t.Helper()
	store, err := NewStoreAt(":memory:", limit)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAddAndRecent(t *testing.T) {
	store := newTestStore(t, 10)

	e := &Entry{Snippet: "Overlay.swift", Bytes: 412}
	if err := store.Add(e); err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.ID == 0 {
		t.Error("expected ID to be filled in")
	}
	if e.CopiedAt.IsZero() {
		t.Error("expected CopiedAt to be filled in")
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Snippet != "Overlay.swift" || entries[0].Bytes != 412 {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestRecentNewestFirst(t *testing.T) {
	store := newTestStore(t, 10)

	base := time.Now().UTC()
	for i, name := range []string{"a.swift", "b.swift", "c.swift"} {
		err := store.Add(&Entry{Snippet: name, Bytes: 1, CopiedAt: base.Add(time.Duration(i) * time.Second)})
		if err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Snippet != "c.swift" {
		t.Errorf("expected newest first, got %s", entries[0].Snippet)
	}
}

func TestLimitEnforced(t *testing.T) {
	store := newTestStore(t, 5)

	for i := 0; i < 12; i++ {
		if err := store.Add(&Entry{Snippet: "Overlay.swift", Bytes: i}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count > 5 {
		t.Errorf("expected at most 5 entries, got %d", count)
	}
}
