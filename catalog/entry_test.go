package catalog

import (
	"testing"

	"github.com/arcticbots/sightsbot/i18n"
)

func TestBilingualSetAndIn(t *testing.T) {
	var b Bilingual
	b.Set(i18n.English, "Lighthouse")
	b.Set(i18n.Russian, "Маяк")

	if got := b.In(i18n.English); got != "Lighthouse" {
		t.Fatalf("In(en) = %q", got)
	}
	if got := b.In(i18n.Russian); got != "Маяк" {
		t.Fatalf("In(ru) = %q", got)
	}
	if !b.Complete() {
		t.Fatal("expected both variants to be complete")
	}
}

func TestBilingualComplete(t *testing.T) {
	cases := []struct {
		name string
		b    Bilingual
		want bool
	}{
		{"both", Bilingual{EN: "a", RU: "б"}, true},
		{"missing ru", Bilingual{EN: "a"}, false},
		{"missing en", Bilingual{RU: "б"}, false},
		{"whitespace only", Bilingual{EN: " ", RU: "б"}, false},
		{"empty", Bilingual{}, false},
	}
	for _, tc := range cases {
		if got := tc.b.Complete(); got != tc.want {
			t.Errorf("%s: Complete() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchesName(t *testing.T) {
	e := Entry{Name: Bilingual{EN: "Old House", RU: "Старый дом"}}

	cases := []struct {
		query string
		want  bool
	}{
		{"house", true},
		{"HOUSE", true},
		{"old", true},
		{"дом", true},
		{"СТАРЫЙ", true},
		{"castle", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		if got := e.MatchesName(tc.query); got != tc.want {
			t.Errorf("MatchesName(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Fatalf("NextID(empty) = %d, want 1", got)
	}

	entries := []Entry{{ID: 1}, {ID: 5}, {ID: 3}}
	if got := NextID(entries); got != 6 {
		t.Fatalf("NextID = %d, want 6", got)
	}
}

func TestEntryComplete(t *testing.T) {
	e := Entry{
		Name:        Bilingual{EN: "Lighthouse", RU: "Маяк"},
		Description: Bilingual{EN: "a", RU: "б"},
		FunFact:     Bilingual{EN: "c", RU: "д"},
		Photo:       "lighthouse.jpg",
	}
	if !e.Complete() {
		t.Fatal("expected complete entry")
	}
	e.Photo = ""
	if e.Complete() {
		t.Fatal("entry without photo must not be complete")
	}
}
