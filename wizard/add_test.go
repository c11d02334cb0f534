package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/arcticbots/sightsbot/catalog"
	"github.com/arcticbots/sightsbot/i18n"
	"github.com/arcticbots/sightsbot/translate"
)

// mapTranslator resolves translations from a fixed table and fails on
// anything unknown.
type mapTranslator map[string]string

func (m mapTranslator) Translate(_ context.Context, text string, _, _ i18n.Language) (string, error) {
	if out, ok := m[text]; ok {
		return out, nil
	}
	return "", fmt.Errorf("%w: no mapping for %q", translate.ErrUnavailable, text)
}

type failTranslator struct{}

func (failTranslator) Translate(context.Context, string, i18n.Language, i18n.Language) (string, error) {
	return "", translate.ErrUnavailable
}

type memCatalog struct {
	entries    []catalog.Entry
	failAppend bool
}

func (m *memCatalog) Load(context.Context) ([]catalog.Entry, error) {
	return append([]catalog.Entry(nil), m.entries...), nil
}

func (m *memCatalog) Append(_ context.Context, e catalog.Entry) (catalog.Entry, error) {
	if m.failAppend {
		return catalog.Entry{}, errors.New("append failed")
	}
	e.ID = catalog.NextID(m.entries)
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memCatalog) RemoveByID(_ context.Context, id int64) error {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

type memAssets struct {
	saved    map[string][]byte
	removed  []string
	failSave bool
}

func newMemAssets() *memAssets {
	return &memAssets{saved: make(map[string][]byte)}
}

func (m *memAssets) Save(_ context.Context, filename string, data []byte) error {
	if m.failSave {
		return errors.New("save failed")
	}
	m.saved[filename] = data
	return nil
}

func (m *memAssets) Remove(_ context.Context, filename string) error {
	m.removed = append(m.removed, filename)
	return nil
}

var lighthouseTable = mapTranslator{
	"Lighthouse":   "Маяк",
	"A tall tower": "Высокая башня",
	"It glows":     "Он светится",
}

func TestAddHappyPath(t *testing.T) {
	ctx := context.Background()
	cat := &memCatalog{}
	ast := newMemAssets()
	w := NewAdd(i18n.English, lighthouseTable, cat, ast)

	steps := []struct {
		input string
		want  AddEvent
	}{
		{"Lighthouse", AddAskDescription},
		{"A tall tower", AddAskFunFact},
		{"It glows", AddAskPhoto},
	}
	for _, st := range steps {
		ev, err := w.HandleText(ctx, st.input)
		if err != nil {
			t.Fatalf("HandleText(%q): %v", st.input, err)
		}
		if ev != st.want {
			t.Fatalf("HandleText(%q) event = %v, want %v", st.input, ev, st.want)
		}
	}

	ev, err := w.HandlePhoto(ctx, []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("HandlePhoto: %v", err)
	}
	if ev != AddAskLocation {
		t.Fatalf("HandlePhoto event = %v, want AddAskLocation", ev)
	}
	if _, ok := ast.saved["lighthouse.jpg"]; !ok {
		t.Fatalf("expected photo saved as lighthouse.jpg, got %v", ast.saved)
	}

	ev, err = w.HandleText(ctx, "https://maps.example/lighthouse")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if ev != AddCommitted {
		t.Fatalf("commit event = %v, want AddCommitted", ev)
	}
	if w.Step() != AddStepCommitted {
		t.Fatalf("step = %v, want committed", w.Step())
	}

	stored := w.Committed()
	if stored.ID != 1 {
		t.Fatalf("stored id = %d, want 1", stored.ID)
	}
	if stored.Name.RU != "Маяк" || stored.Description.RU != "Высокая башня" || stored.FunFact.RU != "Он светится" {
		t.Fatalf("russian variants not synchronized: %+v", stored)
	}
	if !stored.Complete() {
		t.Fatalf("committed entry must be complete: %+v", stored)
	}
	if len(cat.entries) != 1 {
		t.Fatalf("catalog has %d entries, want 1", len(cat.entries))
	}
}

func TestAddEmptyInputRepeatsPrompt(t *testing.T) {
	w := NewAdd(i18n.English, lighthouseTable, &memCatalog{}, newMemAssets())

	ev, err := w.HandleText(context.Background(), "   ")
	if err != nil {
		t.Fatalf("HandleText: %v", err)
	}
	if ev != AddAskName {
		t.Fatalf("event = %v, want AddAskName", ev)
	}
	if w.Step() != AddStepName {
		t.Fatalf("step advanced on empty input: %v", w.Step())
	}
}

func TestAddTextDuringPhotoStepRepeatsPrompt(t *testing.T) {
	ctx := context.Background()
	w := NewAdd(i18n.English, lighthouseTable, &memCatalog{}, newMemAssets())
	mustAdvanceToPhoto(t, w)

	ev, err := w.HandleText(ctx, "here is some text instead")
	if err != nil {
		t.Fatalf("HandleText: %v", err)
	}
	if ev != AddAskPhoto {
		t.Fatalf("event = %v, want AddAskPhoto", ev)
	}
	if w.Step() != AddStepPhoto {
		t.Fatalf("step = %v, want photo", w.Step())
	}
}

func TestAddInvalidLocationRepromptsInPlace(t *testing.T) {
	ctx := context.Background()
	cat := &memCatalog{}
	w := NewAdd(i18n.English, lighthouseTable, cat, newMemAssets())
	mustAdvanceToPhoto(t, w)
	if _, err := w.HandlePhoto(ctx, []byte{1}); err != nil {
		t.Fatalf("HandlePhoto: %v", err)
	}

	ev, err := w.HandleText(ctx, "yandex.ru/maps/lighthouse")
	if err != nil {
		t.Fatalf("HandleText: %v", err)
	}
	if ev != AddInvalidLocation {
		t.Fatalf("event = %v, want AddInvalidLocation", ev)
	}
	if w.Step() != AddStepLocation {
		t.Fatalf("invalid link must not leave the location step, got %v", w.Step())
	}
	if len(cat.entries) != 0 {
		t.Fatal("nothing should be committed after an invalid link")
	}

	if ev, err = w.HandleText(ctx, "https://yandex.ru/maps/lighthouse"); err != nil || ev != AddCommitted {
		t.Fatalf("valid link after re-prompt: event %v err %v", ev, err)
	}
}

func TestAddTranslationFailureAborts(t *testing.T) {
	cat := &memCatalog{}
	w := NewAdd(i18n.Russian, failTranslator{}, cat, newMemAssets())

	_, err := w.HandleText(context.Background(), "Маяк")
	if !errors.Is(err, translate.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if w.Step() != AddStepCancelled {
		t.Fatalf("step = %v, want cancelled", w.Step())
	}
	if len(cat.entries) != 0 {
		t.Fatal("aborted wizard must not write to the catalog")
	}
}

func TestAddPhotoSaveFailureAborts(t *testing.T) {
	ctx := context.Background()
	ast := newMemAssets()
	ast.failSave = true
	w := NewAdd(i18n.English, lighthouseTable, &memCatalog{}, ast)
	mustAdvanceToPhoto(t, w)

	if _, err := w.HandlePhoto(ctx, []byte{1}); err == nil {
		t.Fatal("expected save failure")
	}
	if w.Step() != AddStepCancelled {
		t.Fatalf("step = %v, want cancelled", w.Step())
	}
}

func TestAddCancelDiscardsDraft(t *testing.T) {
	cat := &memCatalog{}
	w := NewAdd(i18n.English, lighthouseTable, cat, newMemAssets())
	mustAdvanceToPhoto(t, w)

	w.Cancel()
	if w.Step() != AddStepCancelled {
		t.Fatalf("step = %v, want cancelled", w.Step())
	}
	if len(cat.entries) != 0 {
		t.Fatal("cancelled wizard must not write to the catalog")
	}
}

func mustAdvanceToPhoto(t *testing.T, w *Add) {
	t.Helper()
	ctx := context.Background()
	for _, input := range []string{"Lighthouse", "A tall tower", "It glows"} {
		if _, err := w.HandleText(ctx, input); err != nil {
			t.Fatalf("advance %q: %v", input, err)
		}
	}
	if w.Step() != AddStepPhoto {
		t.Fatalf("step = %v, want photo", w.Step())
	}
}
