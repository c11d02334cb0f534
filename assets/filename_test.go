package assets

import (
	"testing"

	"github.com/arcticbots/sightsbot/catalog"
)

func TestFilenameFor(t *testing.T) {
	cases := []struct {
		name string
		in   catalog.Bilingual
		want string
	}{
		{"simple", catalog.Bilingual{EN: "Lighthouse", RU: "Маяк"}, "lighthouse.jpg"},
		{"spaces", catalog.Bilingual{EN: "Old House"}, "old_house.jpg"},
		{"punctuation and runs", catalog.Bilingual{EN: "Old  House - North!"}, "old_house_north.jpg"},
		{"russian fallback", catalog.Bilingual{RU: "Маяк"}, "маяк.jpg"},
		{"blank english falls back", catalog.Bilingual{EN: "   ", RU: "Старый дом"}, "старый_дом.jpg"},
		{"digits kept", catalog.Bilingual{EN: "Fort 9"}, "fort_9.jpg"},
	}
	for _, tc := range cases {
		if got := FilenameFor(tc.in); got != tc.want {
			t.Errorf("%s: FilenameFor = %q, want %q", tc.name, got, tc.want)
		}
	}
}
