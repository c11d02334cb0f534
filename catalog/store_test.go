package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "sights.json"))
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty catalog, got %d entries", len(entries))
	}
}

func TestFileStoreInitCreatesDocument(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty document")
	}
	// Init on an existing document must not truncate it.
	if _, err := s.Append(context.Background(), Entry{Name: Bilingual{EN: "a", RU: "б"}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("second init: %v", err)
	}
	entries, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("init clobbered the document, got %d entries", len(entries))
	}
}

func TestFileStoreAppendAssignsMonotonicIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Append(ctx, Entry{Name: Bilingual{EN: "one", RU: "один"}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	second, err := s.Append(ctx, Entry{Name: Bilingual{EN: "two", RU: "два"}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}

	// Ids are never reused after a deletion.
	if err := s.RemoveByID(ctx, second.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	third, err := s.Append(ctx, Entry{Name: Bilingual{EN: "three", RU: "три"}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if third.ID != 2 {
		t.Fatalf("id after removing the max = %d, want 2", third.ID)
	}

	// But removing a lower id keeps the sequence above the surviving max.
	if err := s.RemoveByID(ctx, first.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	fourth, err := s.Append(ctx, Entry{Name: Bilingual{EN: "four", RU: "четыре"}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if fourth.ID != 3 {
		t.Fatalf("id = %d, want 3", fourth.ID)
	}
}

func TestFileStoreRemoveMissingIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Append(ctx, Entry{Name: Bilingual{EN: "keep", RU: "ост"}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.RemoveByID(ctx, 99); err != nil {
		t.Fatalf("removing a missing id must not fail: %v", err)
	}
	entries, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after no-op removal, got %d", len(entries))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := Entry{
		Name:        Bilingual{EN: "Lighthouse", RU: "Маяк"},
		Description: Bilingual{EN: "A tall tower", RU: "Высокая башня"},
		FunFact:     Bilingual{EN: "It glows", RU: "Он светится"},
		Photo:       "lighthouse.jpg",
		Location:    "https://maps.example/lighthouse",
	}
	stored, err := s.Append(ctx, in)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.ID != stored.ID {
		t.Fatalf("id = %d, want %d", got.ID, stored.ID)
	}
	if got.Name != in.Name || got.Description != in.Description || got.FunFact != in.FunFact {
		t.Fatalf("text fields did not survive the round trip: %+v", got)
	}
	if got.Photo != in.Photo || got.Location != in.Location {
		t.Fatalf("photo/location did not survive the round trip: %+v", got)
	}
}
