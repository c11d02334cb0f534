package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/arcticbots/sightsbot/assets"
	"github.com/arcticbots/sightsbot/catalog"
	"github.com/arcticbots/sightsbot/core/logger"
	"github.com/arcticbots/sightsbot/i18n"
	"github.com/arcticbots/sightsbot/translate"
	"log/slog"
)

// AddStep identifies a state of the add wizard.
type AddStep int

const (
	AddStepName AddStep = iota
	AddStepDescription
	AddStepFunFact
	AddStepPhoto
	AddStepLocation
	AddStepCommitted
	AddStepCancelled
)

// AddEvent tells the caller what to render after a transition.
type AddEvent int

const (
	// AddAskName re-prompts for the sight name.
	AddAskName AddEvent = iota
	// AddAskDescription asks for the description.
	AddAskDescription
	// AddAskFunFact asks for the fun fact.
	AddAskFunFact
	// AddAskPhoto asks for a photo attachment.
	AddAskPhoto
	// AddAskLocation asks for the map link.
	AddAskLocation
	// AddInvalidLocation re-prompts within the location state after a link
	// without an http(s) scheme.
	AddInvalidLocation
	// AddCommitted reports the entry was appended to the catalog.
	AddCommitted
)

// Add walks a new entry through name, description, fun fact, photo, and
// location. Every text step synchronizes both language variants before
// advancing; any translation or storage failure aborts the whole wizard and
// the draft is discarded.
type Add struct {
	lang       i18n.Language
	step       AddStep
	draft      catalog.Entry
	committed  catalog.Entry
	translator translate.Translator
	cat        CatalogStore
	ast        AssetStore
}

// NewAdd starts an add wizard at the name step.
func NewAdd(lang i18n.Language, tr translate.Translator, cat CatalogStore, ast AssetStore) *Add {
	return &Add{
		lang:       lang,
		step:       AddStepName,
		translator: tr,
		cat:        cat,
		ast:        ast,
	}
}

// Step returns the current state.
func (w *Add) Step() AddStep { return w.step }

// Committed returns the stored entry once the wizard reaches AddStepCommitted.
func (w *Add) Committed() catalog.Entry { return w.committed }

// Cancel discards the draft from any non-terminal state.
func (w *Add) Cancel() {
	if w.step != AddStepCommitted {
		w.step = AddStepCancelled
		w.draft = catalog.Entry{}
	}
}

// HandleText advances the wizard with a free-form text input. On failure the
// wizard is already terminal and the error describes why.
func (w *Add) HandleText(ctx context.Context, text string) (AddEvent, error) {
	text = strings.TrimSpace(text)

	switch w.step {
	case AddStepName:
		if text == "" {
			return AddAskName, nil
		}
		if err := w.synchronize(ctx, text, &w.draft.Name); err != nil {
			return AddAskName, err
		}
		w.step = AddStepDescription
		return AddAskDescription, nil

	case AddStepDescription:
		if text == "" {
			return AddAskDescription, nil
		}
		if err := w.synchronize(ctx, text, &w.draft.Description); err != nil {
			return AddAskDescription, err
		}
		w.step = AddStepFunFact
		return AddAskFunFact, nil

	case AddStepFunFact:
		if text == "" {
			return AddAskFunFact, nil
		}
		if err := w.synchronize(ctx, text, &w.draft.FunFact); err != nil {
			return AddAskFunFact, err
		}
		w.step = AddStepPhoto
		return AddAskPhoto, nil

	case AddStepPhoto:
		// Text while a photo is expected: repeat the prompt, stay put.
		return AddAskPhoto, nil

	case AddStepLocation:
		return w.commit(ctx, text)
	}

	return AddAskName, fmt.Errorf("add wizard: input in terminal state")
}

// HandlePhoto stores the photo asset and advances to the location step.
func (w *Add) HandlePhoto(ctx context.Context, data []byte) (AddEvent, error) {
	if w.step != AddStepPhoto {
		return w.prompt(), nil
	}

	filename := assets.FilenameFor(w.draft.Name)
	if err := w.ast.Save(ctx, filename, data); err != nil {
		w.abort(ctx, "photo_save", err)
		return AddAskPhoto, err
	}
	w.draft.Photo = filename
	w.step = AddStepLocation
	return AddAskLocation, nil
}

// synchronize fills both language variants of the field, aborting the wizard
// when the provider fails.
func (w *Add) synchronize(ctx context.Context, text string, field *catalog.Bilingual) error {
	translated, err := w.translator.Translate(ctx, text, w.lang, w.lang.Other())
	if err != nil {
		w.abort(ctx, "translate", err)
		return err
	}
	field.Set(w.lang, text)
	field.Set(w.lang.Other(), translated)
	return nil
}

// commit validates the location link and appends the finished entry. A link
// without an http(s) scheme re-prompts without leaving the state.
func (w *Add) commit(ctx context.Context, location string) (AddEvent, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		return AddInvalidLocation, nil
	}
	w.draft.Location = location

	stored, err := w.cat.Append(ctx, w.draft)
	if err != nil {
		w.abort(ctx, "append", err)
		return AddAskLocation, err
	}
	w.committed = stored
	w.draft = catalog.Entry{}
	w.step = AddStepCommitted
	logger.Info(ctx, "wizard", "add.committed",
		slog.String("status", "ok"),
		slog.Int64("sight_id", stored.ID),
		slog.String("lang", w.lang.String()),
	)
	return AddCommitted, nil
}

func (w *Add) abort(ctx context.Context, cause string, err error) {
	w.step = AddStepCancelled
	w.draft = catalog.Entry{}
	logger.Warn(ctx, "wizard", "add.aborted",
		slog.String("status", "cancelled"),
		slog.String("cause", cause),
		slog.String("err", err.Error()),
	)
}

func (w *Add) prompt() AddEvent {
	switch w.step {
	case AddStepDescription:
		return AddAskDescription
	case AddStepFunFact:
		return AddAskFunFact
	case AddStepPhoto:
		return AddAskPhoto
	case AddStepLocation:
		return AddAskLocation
	default:
		return AddAskName
	}
}
