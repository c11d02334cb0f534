package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcticbots/sightsbot/catalog"
	"github.com/arcticbots/sightsbot/core/logger"
	"github.com/arcticbots/sightsbot/i18n"
	"log/slog"
)

// ErrConfirmAmbiguous is returned when a confirmation is requested while more
// than one candidate is still pending. Confirmation is gated on exactly one
// candidate so the wrong entry can never be removed by guessing.
var ErrConfirmAmbiguous = errors.New("multiple delete candidates at confirmation")

// DeleteStep identifies a state of the delete wizard.
type DeleteStep int

const (
	DeleteStepSearch DeleteStep = iota
	DeleteStepConfirm
	DeleteStepDeleted
	DeleteStepCancelled
)

// SearchOutcome describes the result of a search input.
type SearchOutcome int

const (
	// SearchNoMatch means nothing matched; the wizard ended.
	SearchNoMatch SearchOutcome = iota
	// SearchNarrow means several entries matched; the caller should list
	// them and the wizard stays in the search state for a narrower query.
	SearchNarrow
	// SearchConfirm means exactly one entry matched and awaits confirmation.
	SearchConfirm
)

// Delete finds an entry by name and removes it after explicit confirmation.
type Delete struct {
	lang       i18n.Language
	step       DeleteStep
	candidates []catalog.Entry
	cat        CatalogStore
	ast        AssetStore
}

// NewDelete starts a delete wizard at the search step.
func NewDelete(lang i18n.Language, cat CatalogStore, ast AssetStore) *Delete {
	return &Delete{lang: lang, step: DeleteStepSearch, cat: cat, ast: ast}
}

// Step returns the current state.
func (w *Delete) Step() DeleteStep { return w.step }

// Candidates returns the matches from the most recent search.
func (w *Delete) Candidates() []catalog.Entry { return w.candidates }

// Target returns the single pending candidate when the wizard awaits
// confirmation.
func (w *Delete) Target() (catalog.Entry, bool) {
	if w.step == DeleteStepConfirm && len(w.candidates) == 1 {
		return w.candidates[0], true
	}
	return catalog.Entry{}, false
}

// Cancel ends the wizard from any non-terminal state without mutating the
// catalog.
func (w *Delete) Cancel() {
	if w.step != DeleteStepDeleted {
		w.step = DeleteStepCancelled
		w.candidates = nil
	}
}

// HandleSearch matches the query case-insensitively against both language
// variants of every entry name. Zero matches end the wizard; one match moves
// to confirmation; several matches re-enter the search state so the user can
// narrow the query.
func (w *Delete) HandleSearch(ctx context.Context, query string) (SearchOutcome, error) {
	if w.step != DeleteStepSearch {
		return SearchNoMatch, fmt.Errorf("delete wizard: search outside search state")
	}

	entries, err := w.cat.Load(ctx)
	if err != nil {
		w.Cancel()
		return SearchNoMatch, err
	}

	var matches []catalog.Entry
	for _, e := range entries {
		if e.MatchesName(query) {
			matches = append(matches, e)
		}
	}
	logger.Debug(ctx, "wizard", "del.search",
		slog.String("status", "ok"),
		slog.Int("matches", len(matches)),
	)

	switch len(matches) {
	case 0:
		w.step = DeleteStepCancelled
		w.candidates = nil
		return SearchNoMatch, nil
	case 1:
		w.candidates = matches
		w.step = DeleteStepConfirm
		return SearchConfirm, nil
	default:
		w.candidates = matches
		return SearchNarrow, nil
	}
}

// Confirm removes the pending candidate from the catalog and best-effort
// deletes its photo asset. An asset deletion failure is logged and swallowed;
// the catalog removal already happened.
func (w *Delete) Confirm(ctx context.Context) (catalog.Entry, error) {
	if w.step != DeleteStepConfirm {
		return catalog.Entry{}, fmt.Errorf("delete wizard: confirm outside confirm state")
	}
	if len(w.candidates) != 1 {
		w.step = DeleteStepCancelled
		return catalog.Entry{}, ErrConfirmAmbiguous
	}

	target := w.candidates[0]
	if err := w.cat.RemoveByID(ctx, target.ID); err != nil {
		w.step = DeleteStepCancelled
		return catalog.Entry{}, err
	}
	if target.Photo != "" {
		if err := w.ast.Remove(ctx, target.Photo); err != nil {
			logger.Warn(ctx, "wizard", "del.asset",
				slog.String("status", "fail"),
				slog.Int64("sight_id", target.ID),
				slog.String("filename", target.Photo),
				slog.String("err", err.Error()),
			)
		}
	}
	w.step = DeleteStepDeleted
	w.candidates = nil
	logger.Info(ctx, "wizard", "del.removed",
		slog.String("status", "ok"),
		slog.Int64("sight_id", target.ID),
	)
	return target, nil
}

// Decline ends the wizard at the confirmation step without mutating anything.
func (w *Delete) Decline() {
	w.Cancel()
}
