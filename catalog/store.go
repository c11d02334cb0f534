package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arcticbots/sightsbot/core/logger"
	"log/slog"
)

// document is the persisted catalog representation.
type document struct {
	Sights []Entry `json:"sights"`
}

// FileStore persists the catalog as one JSON document. Every mutation is a
// full read-modify-write finished by an atomic rename, so readers never see a
// partial document. The mutex serializes writers inside this process only;
// concurrent writers from other processes remain an accepted limitation.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store over the given document path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document path.
func (s *FileStore) Path() string { return s.path }

// Init creates an empty catalog document when none exists yet.
func (s *FileStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("catalog stat: %w", err)
	}
	if err := s.write(document{Sights: []Entry{}}); err != nil {
		return err
	}
	logger.Info(ctx, "catalog", "store.init",
		slog.String("status", "ok"),
		slog.String("path", s.path),
	)
	return nil
}

// Load reads the full catalog from disk. A missing document is an empty
// catalog, not an error.
func (s *FileStore) Load(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		logger.Error(ctx, "catalog", "store.load",
			slog.String("status", "fail"),
			slog.String("path", s.path),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return doc.Sights, nil
}

// Append assigns the next id (max existing id + 1) and appends the entry in
// one read-modify-write. The stored entry is returned.
func (s *FileStore) Append(ctx context.Context, entry Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	doc, err := s.read()
	if err != nil {
		return Entry{}, err
	}
	entry.ID = NextID(doc.Sights)
	doc.Sights = append(doc.Sights, entry)
	if err := s.write(doc); err != nil {
		logger.Error(ctx, "catalog", "store.append",
			slog.String("status", "fail"),
			slog.Int64("sight_id", entry.ID),
			slog.String("err", err.Error()),
		)
		return Entry{}, err
	}
	logger.Info(ctx, "catalog", "store.append",
		slog.String("status", "ok"),
		slog.Int64("sight_id", entry.ID),
		slog.Int("count", len(doc.Sights)),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return entry, nil
}

// RemoveByID deletes the entry with the given id. Removing a non-existent id
// is a no-op, not a failure.
func (s *FileStore) RemoveByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	kept := doc.Sights[:0]
	removed := false
	for _, e := range doc.Sights {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		logger.Debug(ctx, "catalog", "store.remove",
			slog.String("status", "skip"),
			slog.Int64("sight_id", id),
		)
		return nil
	}
	doc.Sights = kept
	if err := s.write(doc); err != nil {
		logger.Error(ctx, "catalog", "store.remove",
			slog.String("status", "fail"),
			slog.Int64("sight_id", id),
			slog.String("err", err.Error()),
		)
		return err
	}
	logger.Info(ctx, "catalog", "store.remove",
		slog.String("status", "ok"),
		slog.Int64("sight_id", id),
		slog.Int("count", len(doc.Sights)),
	)
	return nil
}

func (s *FileStore) read() (document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return document{Sights: []Entry{}}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("catalog read: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("catalog parse: %w", err)
	}
	if doc.Sights == nil {
		doc.Sights = []Entry{}
	}
	return doc, nil
}

// write replaces the document atomically: marshal to a temp file in the same
// directory, then rename over the old one.
func (s *FileStore) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog marshal: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".sights-*.json")
	if err != nil {
		return fmt.Errorf("catalog temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("catalog write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("catalog close: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("catalog chmod: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("catalog rename: %w", err)
	}
	return nil
}
