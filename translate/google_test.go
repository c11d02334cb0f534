package translate

import (
	"errors"
	"testing"
)

func TestDecodeSegments(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single segment",
			body: `[[["Маяк","Lighthouse",null,null,10]],null,"en"]`,
			want: "Маяк",
		},
		{
			name: "multiple segments concatenate",
			body: `[[["Высокая ","A tall "],["башня","tower"]],null,"en"]`,
			want: "Высокая башня",
		},
		{
			name: "segment without text is skipped",
			body: `[[[],["Маяк","Lighthouse"]],null,"en"]`,
			want: "Маяк",
		},
		{name: "not json", body: `<html>`, wantErr: true},
		{name: "empty array", body: `[]`, wantErr: true},
		{name: "no segments", body: `[[],null,"en"]`, wantErr: true},
		{name: "blank translation", body: `[[["   ","x"]],null,"en"]`, wantErr: true},
	}
	for _, tc := range cases {
		got, err := decodeSegments([]byte(tc.body))
		if tc.wantErr {
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("%s: expected ErrUnavailable, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: decodeSegments = %q, want %q", tc.name, got, tc.want)
		}
	}
}
