package format

import "strings"

const (
	mdV1Specials = "_*`["
	mdV2Specials = "_*[]()~`>#+-=|{}.!"
)

// EscapeMarkdown escapes special characters for Telegram Markdown (V1).
func EscapeMarkdown(text string) string {
	return escape(text, mdV1Specials)
}

// EscapeMarkdownV2 escapes special characters for Telegram MarkdownV2.
func EscapeMarkdownV2(text string) string {
	return escape(text, mdV2Specials)
}

func escape(text, specials string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 && strings.ContainsRune(specials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
