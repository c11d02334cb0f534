// Package bootstrap wires the shared infrastructure every bot binary needs
// before the Telegram runtime starts: the structured logger, the catalog
// document store, and the photo asset store.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/arcticbots/sightsbot/assets"
	"github.com/arcticbots/sightsbot/catalog"
	coreconfig "github.com/arcticbots/sightsbot/core/config"
	"github.com/arcticbots/sightsbot/core/logger"
)

// Options control the generic bootstrap pipeline.
type Options struct {
	Config *coreconfig.Config

	LoggerInit  func(*coreconfig.Config) error
	OpenCatalog func(ctx context.Context, cfg coreconfig.CatalogConfig) (*catalog.FileStore, error)
	OpenAssets  func(ctx context.Context, cfg coreconfig.CatalogConfig) (*assets.DirStore, error)
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	Catalog *catalog.FileStore
	Assets  *assets.DirStore
}

// Run initializes the logger, opens the catalog document, and prepares the
// image directory.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	openCatalog := opts.OpenCatalog
	if openCatalog == nil {
		openCatalog = defaultOpenCatalog
	}
	cat, err := openCatalog(ctx, opts.Config.Catalog)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: catalog initialization failed: %w", err)
	}

	openAssets := opts.OpenAssets
	if openAssets == nil {
		openAssets = defaultOpenAssets
	}
	ast, err := openAssets(ctx, opts.Config.Catalog)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: asset store initialization failed: %w", err)
	}

	return &Result{Catalog: cat, Assets: ast}, nil
}

func defaultOpenCatalog(ctx context.Context, cfg coreconfig.CatalogConfig) (*catalog.FileStore, error) {
	store := catalog.NewFileStore(cfg.Path)
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func defaultOpenAssets(ctx context.Context, cfg coreconfig.CatalogConfig) (*assets.DirStore, error) {
	store := assets.NewDirStore(cfg.ImagesDir)
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
