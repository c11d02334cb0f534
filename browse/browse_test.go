package browse

import (
	"errors"
	"testing"

	"github.com/arcticbots/sightsbot/catalog"
)

func makeEntries(n int) []catalog.Entry {
	entries := make([]catalog.Entry, n)
	for i := range entries {
		entries[i] = catalog.Entry{ID: int64(i + 1)}
	}
	return entries
}

func TestRenderPageWindows(t *testing.T) {
	entries := makeEntries(12)

	cases := []struct {
		page     int
		wantLen  int
		wantPrev bool
		wantNext bool
		firstID  int64
	}{
		{0, 5, false, true, 1},
		{1, 5, true, true, 6},
		{2, 2, true, false, 11},
		{3, 0, true, false, 0},
	}
	for _, tc := range cases {
		pg := RenderPage(entries, tc.page, 5)
		if len(pg.Items) != tc.wantLen {
			t.Fatalf("page %d: len = %d, want %d", tc.page, len(pg.Items), tc.wantLen)
		}
		if pg.HasPrev != tc.wantPrev || pg.HasNext != tc.wantNext {
			t.Fatalf("page %d: prev/next = %v/%v, want %v/%v",
				tc.page, pg.HasPrev, pg.HasNext, tc.wantPrev, tc.wantNext)
		}
		if tc.wantLen > 0 && pg.Items[0].ID != tc.firstID {
			t.Fatalf("page %d: first id = %d, want %d", tc.page, pg.Items[0].ID, tc.firstID)
		}
	}
}

func TestRenderPageCoversEveryEntryOnce(t *testing.T) {
	entries := makeEntries(13)
	seen := make(map[int64]int)
	for page := 0; ; page++ {
		pg := RenderPage(entries, page, 4)
		for _, e := range pg.Items {
			seen[e.ID]++
		}
		if !pg.HasNext {
			break
		}
	}
	if len(seen) != len(entries) {
		t.Fatalf("pages covered %d distinct entries, want %d", len(seen), len(entries))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("entry %d appeared %d times", id, n)
		}
	}
}

func TestRenderPageNegativeAndEmpty(t *testing.T) {
	pg := RenderPage(makeEntries(3), -2, 5)
	if pg.Index != 0 || len(pg.Items) != 3 {
		t.Fatalf("negative page should clamp to 0, got index %d len %d", pg.Index, len(pg.Items))
	}

	pg = RenderPage(nil, 0, 5)
	if len(pg.Items) != 0 || pg.HasPrev || pg.HasNext {
		t.Fatalf("empty catalog page should be empty: %+v", pg)
	}
}

func TestRenderDetail(t *testing.T) {
	entries := makeEntries(3)
	e, err := RenderDetail(entries, 2)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if e.ID != 2 {
		t.Fatalf("id = %d, want 2", e.ID)
	}

	_, err = RenderDetail(entries, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPageCursorSteps(t *testing.T) {
	if got := PrevPage(0); got != 0 {
		t.Fatalf("PrevPage(0) = %d", got)
	}
	if got := PrevPage(3); got != 2 {
		t.Fatalf("PrevPage(3) = %d", got)
	}
	if got := NextPage(3); got != 4 {
		t.Fatalf("NextPage(3) = %d", got)
	}
}
