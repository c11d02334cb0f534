// Package assets stores sight photos on disk, keyed by filenames derived from
// the sight name.
package assets

import (
	"regexp"
	"strings"

	"github.com/arcticbots/sightsbot/catalog"
)

const photoExt = ".jpg"

var (
	dropRe     = regexp.MustCompile(`[^\p{L}\p{N}\s_-]`)
	collapseRe = regexp.MustCompile(`[-\s]+`)
)

// FilenameFor derives the stored photo filename from a sight name. The
// English variant is preferred, falling back to Russian when English was never
// captured. The name is lower-cased, stripped of special characters, and
// whitespace/hyphen runs collapse to single underscores.
func FilenameFor(name catalog.Bilingual) string {
	base := name.EN
	if strings.TrimSpace(base) == "" {
		base = name.RU
	}
	return sanitize(base) + photoExt
}

func sanitize(name string) string {
	s := dropRe.ReplaceAllString(name, "")
	s = strings.ToLower(strings.TrimSpace(s))
	return collapseRe.ReplaceAllString(s, "_")
}
