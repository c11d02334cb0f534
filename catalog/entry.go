// Package catalog stores the ordered collection of sight entries as a single
// JSON document rewritten atomically on every mutation.
package catalog

import (
	"strings"

	"github.com/arcticbots/sightsbot/i18n"
)

// Bilingual carries both language variants of a text field. Committed entries
// always have both variants populated.
type Bilingual struct {
	EN string `json:"en"`
	RU string `json:"ru"`
}

// In returns the variant for the given language.
func (b Bilingual) In(lang i18n.Language) string {
	if lang == i18n.Russian {
		return b.RU
	}
	return b.EN
}

// Set stores the variant for the given language.
func (b *Bilingual) Set(lang i18n.Language, s string) {
	if lang == i18n.Russian {
		b.RU = s
		return
	}
	b.EN = s
}

// Complete reports whether both variants are non-empty.
func (b Bilingual) Complete() bool {
	return strings.TrimSpace(b.EN) != "" && strings.TrimSpace(b.RU) != ""
}

// Entry is one catalog record describing a point of interest.
type Entry struct {
	ID          int64     `json:"id"`
	Name        Bilingual `json:"name"`
	Description Bilingual `json:"description"`
	FunFact     Bilingual `json:"fun_fact"`
	Photo       string    `json:"photo"`
	Location    string    `json:"location"`
}

// Complete reports whether the entry satisfies the commit invariant: both
// language variants of every text field plus a photo reference.
func (e Entry) Complete() bool {
	return e.Name.Complete() &&
		e.Description.Complete() &&
		e.FunFact.Complete() &&
		strings.TrimSpace(e.Photo) != ""
}

// MatchesName reports whether query is a case-insensitive substring of either
// name variant.
func (e Entry) MatchesName(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(e.Name.EN), q) ||
		strings.Contains(strings.ToLower(e.Name.RU), q)
}

// NextID returns the id a new entry would receive: max existing id + 1, or 1
// for an empty catalog. Ids are never reused after deletion.
func NextID(entries []Entry) int64 {
	var max int64
	for _, e := range entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
