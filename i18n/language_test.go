package i18n

import (
	"strings"
	"testing"
)

func TestLanguageOther(t *testing.T) {
	if English.Other() != Russian || Russian.Other() != English {
		t.Fatal("Other must flip between the two languages")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in     string
		want   Language
		wantOK bool
	}{
		{"en", English, true},
		{"EN", English, true},
		{" ru ", Russian, true},
		{"de", English, false},
		{"", English, false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Parse(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMessagesDifferPerLanguage(t *testing.T) {
	for _, m := range []Message{MsgWelcome, MsgHelpBody, MsgAddName, MsgCancel} {
		en := T(English, m)
		ru := T(Russian, m)
		if en == "" || ru == "" {
			t.Fatalf("message %d has empty copy", m)
		}
		if en == ru {
			t.Fatalf("message %d is identical in both languages: %q", m, en)
		}
	}
}

func TestFormattedMessages(t *testing.T) {
	got := F(English, MsgDelConfirm, "Lighthouse")
	if !strings.Contains(got, "Lighthouse") {
		t.Fatalf("F did not substitute the argument: %q", got)
	}
	if strings.Contains(got, "%s") || strings.Contains(got, "%!") {
		t.Fatalf("bad formatting: %q", got)
	}

	got = F(Russian, MsgListTitle, 3)
	if !strings.Contains(got, "3") {
		t.Fatalf("page number missing: %q", got)
	}
}
