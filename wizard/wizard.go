// Package wizard implements the multi-step guided conversations for adding
// and deleting catalog entries as explicit state machines. The machines are
// transport-agnostic: inputs come in as plain values, effects go out through
// the injected store and translator interfaces, and every transition returns
// the event the caller should render.
package wizard

import (
	"context"

	"github.com/arcticbots/sightsbot/catalog"
)

// CatalogStore is the catalog boundary the wizards mutate through.
type CatalogStore interface {
	Load(ctx context.Context) ([]catalog.Entry, error)
	Append(ctx context.Context, entry catalog.Entry) (catalog.Entry, error)
	RemoveByID(ctx context.Context, id int64) error
}

// AssetStore is the photo asset boundary.
type AssetStore interface {
	Save(ctx context.Context, filename string, data []byte) error
	Remove(ctx context.Context, filename string) error
}
