// Package keyboard builds inline keyboards from plain button descriptions so
// handlers do not assemble telebot markup by hand.
package keyboard

import tele "gopkg.in/telebot.v4"

// InlineBtn describes one inline button. URL takes precedence over
// Unique/Data when set.
type InlineBtn struct {
	Text   string
	Unique string
	Data   string
	URL    string
}

// Rows builds an inline keyboard from rows of InlineBtn. Empty rows are
// skipped.
func Rows(rows ...[]InlineBtn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	keyboard := make([]tele.Row, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		buttons := make([]tele.Btn, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				buttons = append(buttons, markup.URL(b.Text, b.URL))
				continue
			}
			buttons = append(buttons, markup.Data(b.Text, b.Unique, b.Data))
		}
		keyboard = append(keyboard, markup.Row(buttons...))
	}
	markup.Inline(keyboard...)
	return markup
}

// Row builds a single-row inline keyboard.
func Row(buttons ...InlineBtn) *tele.ReplyMarkup {
	return Rows(buttons)
}
