package bot

import (
	"strings"
	"testing"

	"github.com/arcticbots/sightsbot/catalog"
	"github.com/arcticbots/sightsbot/i18n"
)

func TestCandidateListNumbersMatches(t *testing.T) {
	entries := []catalog.Entry{
		{ID: 1, Name: catalog.Bilingual{EN: "Old House", RU: "Старый дом"}},
		{ID: 2, Name: catalog.Bilingual{EN: "Guest House", RU: "Гостевой дом"}},
	}

	got := candidateList(i18n.English, entries)
	if !strings.HasPrefix(got, i18n.T(i18n.English, i18n.MsgDelList)) {
		t.Fatalf("list missing header: %q", got)
	}
	if !strings.Contains(got, "\n1. Old House") || !strings.Contains(got, "\n2. Guest House") {
		t.Fatalf("candidates not numbered: %q", got)
	}

	got = candidateList(i18n.Russian, entries)
	if !strings.Contains(got, "\n1. Старый дом") || !strings.Contains(got, "\n2. Гостевой дом") {
		t.Fatalf("russian names not used: %q", got)
	}
}
