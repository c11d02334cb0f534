package bot

import (
	tghelpers "github.com/arcticbots/sightsbot/core/telegram/helpers"
	"github.com/arcticbots/sightsbot/core/telegram/ui"
	"github.com/arcticbots/sightsbot/i18n"

	tele "gopkg.in/telebot.v4"
)

var _ ui.FallbackProvider = (*App)(nil)

// UnknownText nudges the user towards /help when free text arrives outside a
// conversation.
func (a *App) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		lang := a.sessionLang(c.Sender().ID)
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgHelpBody)+i18n.T(lang, i18n.MsgHelpFooter))
	}
}

// UnknownPhoto ignores photos sent outside the add conversation.
func (a *App) UnknownPhoto() tele.HandlerFunc {
	return func(c tele.Context) error {
		return nil
	}
}

// UnknownDocument ignores stray documents.
func (a *App) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return nil
	}
}

// UnknownCallback answers stale buttons, e.g. presses on keyboards from a
// previous run, without any visible effect.
func (a *App) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond()
	}
}
