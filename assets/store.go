package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcticbots/sightsbot/core/logger"
	"log/slog"
)

// DirStore keeps photo assets as files under a single directory.
type DirStore struct {
	dir string
}

// NewDirStore creates a store over the given directory.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Init ensures the asset directory exists.
func (s *DirStore) Init(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("assets dir: %w", err)
	}
	logger.Debug(ctx, "assets", "store.init",
		slog.String("status", "ok"),
		slog.String("path", s.dir),
	)
	return nil
}

// Path returns the on-disk location for a stored filename.
func (s *DirStore) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

// Save writes the photo bytes under the given filename.
func (s *DirStore) Save(ctx context.Context, filename string, data []byte) error {
	path := s.Path(filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error(ctx, "assets", "store.save",
			slog.String("status", "fail"),
			slog.String("filename", filename),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("asset save: %w", err)
	}
	logger.Info(ctx, "assets", "store.save",
		slog.String("status", "ok"),
		slog.String("filename", filename),
		slog.Int("count", len(data)),
	)
	return nil
}

// Remove deletes a stored photo. Callers treat failures as non-fatal; a
// missing file is not an error.
func (s *DirStore) Remove(ctx context.Context, filename string) error {
	path := s.Path(filename)
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		logger.Warn(ctx, "assets", "store.remove",
			slog.String("status", "fail"),
			slog.String("filename", filename),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("asset remove: %w", err)
	}
	logger.Debug(ctx, "assets", "store.remove",
		slog.String("status", "ok"),
		slog.String("filename", filename),
	)
	return nil
}
