package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/arcticbots/sightsbot/catalog"
	"github.com/arcticbots/sightsbot/i18n"
)

func seededCatalog() *memCatalog {
	return &memCatalog{entries: []catalog.Entry{
		{ID: 1, Name: catalog.Bilingual{EN: "Old House", RU: "Старый дом"}, Photo: "old_house.jpg"},
		{ID: 2, Name: catalog.Bilingual{EN: "Guest House", RU: "Гостевой дом"}, Photo: "guest_house.jpg"},
		{ID: 3, Name: catalog.Bilingual{EN: "Lighthouse", RU: "Маяк"}, Photo: "lighthouse.jpg"},
	}}
}

func TestDeleteSearchNarrowsOnMultipleMatches(t *testing.T) {
	ctx := context.Background()
	w := NewDelete(i18n.English, seededCatalog(), newMemAssets())

	outcome, err := w.HandleSearch(ctx, "house")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if outcome != SearchNarrow {
		t.Fatalf("outcome = %v, want SearchNarrow", outcome)
	}
	// "house" is a substring of all three names, Lighthouse included.
	if len(w.Candidates()) != 3 {
		t.Fatalf("candidates = %d, want 3", len(w.Candidates()))
	}
	if w.Step() != DeleteStepSearch {
		t.Fatalf("narrowing must stay in the search state, got %v", w.Step())
	}

	// A narrower query from the same wizard resolves to one candidate.
	outcome, err = w.HandleSearch(ctx, "old")
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if outcome != SearchConfirm {
		t.Fatalf("outcome = %v, want SearchConfirm", outcome)
	}
	target, ok := w.Target()
	if !ok || target.ID != 1 {
		t.Fatalf("target = %+v ok=%v, want Old House", target, ok)
	}
}

func TestDeleteConfirmRemovesEntryAndAsset(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog()
	ast := newMemAssets()
	w := NewDelete(i18n.Russian, cat, ast)

	if outcome, err := w.HandleSearch(ctx, "маяк"); err != nil || outcome != SearchConfirm {
		t.Fatalf("search: outcome %v err %v", outcome, err)
	}

	removed, err := w.Confirm(ctx)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if removed.ID != 3 {
		t.Fatalf("removed id = %d, want 3", removed.ID)
	}
	if w.Step() != DeleteStepDeleted {
		t.Fatalf("step = %v, want deleted", w.Step())
	}
	for _, e := range cat.entries {
		if e.ID == 3 {
			t.Fatal("entry 3 still present after confirmation")
		}
	}
	if len(ast.removed) != 1 || ast.removed[0] != "lighthouse.jpg" {
		t.Fatalf("asset removals = %v, want [lighthouse.jpg]", ast.removed)
	}
}

func TestDeleteSearchNoMatchEndsWizard(t *testing.T) {
	cat := seededCatalog()
	w := NewDelete(i18n.English, cat, newMemAssets())

	outcome, err := w.HandleSearch(context.Background(), "castle")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if outcome != SearchNoMatch {
		t.Fatalf("outcome = %v, want SearchNoMatch", outcome)
	}
	if w.Step() != DeleteStepCancelled {
		t.Fatalf("step = %v, want cancelled", w.Step())
	}
	if len(cat.entries) != 3 {
		t.Fatal("no-match search must not mutate the catalog")
	}
}

func TestDeleteDeclineKeepsEntry(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog()
	ast := newMemAssets()
	w := NewDelete(i18n.English, cat, ast)

	if _, err := w.HandleSearch(ctx, "lighthouse"); err != nil {
		t.Fatalf("search: %v", err)
	}
	w.Decline()

	if w.Step() != DeleteStepCancelled {
		t.Fatalf("step = %v, want cancelled", w.Step())
	}
	if len(cat.entries) != 3 || len(ast.removed) != 0 {
		t.Fatal("decline must not mutate catalog or assets")
	}
}

func TestDeleteConfirmWithMultipleCandidatesFails(t *testing.T) {
	w := NewDelete(i18n.English, seededCatalog(), newMemAssets())
	w.step = DeleteStepConfirm
	w.candidates = []catalog.Entry{{ID: 1}, {ID: 2}}

	_, err := w.Confirm(context.Background())
	if !errors.Is(err, ErrConfirmAmbiguous) {
		t.Fatalf("expected ErrConfirmAmbiguous, got %v", err)
	}
	if w.Step() != DeleteStepCancelled {
		t.Fatalf("step = %v, want cancelled", w.Step())
	}
}

func TestDeleteConfirmOutsideConfirmState(t *testing.T) {
	w := NewDelete(i18n.English, seededCatalog(), newMemAssets())
	if _, err := w.Confirm(context.Background()); err == nil {
		t.Fatal("expected error when confirming before a search")
	}
}
