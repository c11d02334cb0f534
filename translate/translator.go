// Package translate synchronizes bilingual text fields by calling an external
// translation provider.
package translate

import (
	"context"
	"errors"

	"github.com/arcticbots/sightsbot/i18n"
)

// ErrUnavailable is returned whenever a provider call fails, times out, or
// produces an empty result. Callers must abort the active wizard: a
// half-translated entry is never committed.
var ErrUnavailable = errors.New("translation unavailable")

// Translator produces the equivalent text in the paired language. Results are
// not cached and repeated calls may phrase the translation differently; the
// only contract is a non-empty result or ErrUnavailable.
type Translator interface {
	Translate(ctx context.Context, text string, from, to i18n.Language) (string, error)
}
