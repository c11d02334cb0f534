// Package browse computes page windows and detail lookups over the catalog.
// Everything here is a pure function of its inputs; callers own the cursor.
package browse

import (
	"errors"

	"github.com/arcticbots/sightsbot/catalog"
)

// ErrNotFound is returned when a detail lookup references an id that is no
// longer in the catalog, e.g. a stale view racing a deletion.
var ErrNotFound = errors.New("sight not found")

// Page is one window over the catalog.
type Page struct {
	Items   []catalog.Entry
	Index   int
	HasPrev bool
	HasNext bool
}

// RenderPage slices the window [page*size, page*size+size) out of entries.
// A page beyond the catalog yields an empty window with HasNext false; the
// caller decides the fallback.
func RenderPage(entries []catalog.Entry, page, size int) Page {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		return Page{Index: page, HasPrev: page > 0}
	}

	start := page * size
	end := start + size
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}

	return Page{
		Items:   entries[start:end],
		Index:   page,
		HasPrev: page > 0,
		HasNext: (page+1)*size < len(entries),
	}
}

// RenderDetail finds the entry with the given id.
func RenderDetail(entries []catalog.Entry, id int64) (catalog.Entry, error) {
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return catalog.Entry{}, ErrNotFound
}

// PrevPage steps the cursor back, never below zero.
func PrevPage(page int) int {
	if page <= 0 {
		return 0
	}
	return page - 1
}

// NextPage steps the cursor forward.
func NextPage(page int) int { return page + 1 }
