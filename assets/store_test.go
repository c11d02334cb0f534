package assets

import (
	"context"
	"os"
	"testing"
)

func TestDirStoreSaveAndRemove(t *testing.T) {
	ctx := context.Background()
	s := NewDirStore(t.TempDir())
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := s.Save(ctx, "lighthouse.jpg", []byte{0xff, 0xd8}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(s.Path("lighthouse.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("stored %d bytes, want 2", len(data))
	}

	if err := s.Remove(ctx, "lighthouse.jpg"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(s.Path("lighthouse.jpg")); !os.IsNotExist(err) {
		t.Fatal("file still present after removal")
	}
}

func TestDirStoreRemoveMissingFile(t *testing.T) {
	s := NewDirStore(t.TempDir())
	if err := s.Remove(context.Background(), "never-saved.jpg"); err != nil {
		t.Fatalf("removing a missing file must not fail: %v", err)
	}
}

func TestDirStorePathStripsDirectories(t *testing.T) {
	s := NewDirStore("images")
	if got := s.Path("../../etc/passwd"); got != "images/passwd" {
		t.Fatalf("Path = %q, traversal must be stripped", got)
	}
}
