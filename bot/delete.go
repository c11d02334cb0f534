package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcticbots/sightsbot/catalog"
	tghelpers "github.com/arcticbots/sightsbot/core/telegram/helpers"
	"github.com/arcticbots/sightsbot/core/telegram/keyboard"
	"github.com/arcticbots/sightsbot/i18n"
	"github.com/arcticbots/sightsbot/wizard"

	tele "gopkg.in/telebot.v4"
)

// candidateList renders the matches of an ambiguous delete search as a
// numbered list under the localized header.
func candidateList(lang i18n.Language, entries []catalog.Entry) string {
	var b strings.Builder
	b.WriteString(i18n.T(lang, i18n.MsgDelList))
	for i, e := range entries {
		fmt.Fprintf(&b, "\n%d. %s", i+1, e.Name.In(lang))
	}
	return b.String()
}

// fsmDelSearch matches the typed name against the catalog and either ends the
// wizard, narrows the search, or asks for confirmation.
func (a *App) fsmDelSearch(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)
	ctx := tghelpers.BuildContext(c)

	w, ok := a.delWizard(userID)
	if !ok {
		a.endConversation(userID)
		return nil
	}

	query := strings.TrimSpace(c.Text())
	outcome, err := w.HandleSearch(ctx, query)
	if err != nil {
		a.endConversation(userID)
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgError))
	}

	switch outcome {
	case wizard.SearchNoMatch:
		a.endConversation(userID)
		return tghelpers.SendText(c, i18n.F(lang, i18n.MsgDelFail, query))

	case wizard.SearchNarrow:
		if err := tghelpers.SendText(c, candidateList(lang, w.Candidates())); err != nil {
			return err
		}
		// The wizard stays in the search state; repeat the prompt so the
		// user knows a narrower name is expected.
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgDelStart))

	default: // wizard.SearchConfirm
		target, found := w.Target()
		if !found {
			a.endConversation(userID)
			return tghelpers.SendText(c, i18n.T(lang, i18n.MsgError))
		}
		a.fsm.SetState(userID, stateDelConfirm)

		markup := keyboard.Row(
			keyboard.InlineBtn{Text: i18n.T(lang, i18n.MsgYesButton), Unique: cbDelConfirm, Data: formatID(target.ID)},
			keyboard.InlineBtn{Text: i18n.T(lang, i18n.MsgNoButton), Unique: cbDelCancel},
		)
		return tghelpers.SendText(c, i18n.F(lang, i18n.MsgDelConfirm, target.Name.In(lang)), &tele.SendOptions{
			ReplyMarkup: markup,
		})
	}
}

func (a *App) callbackDelConfirm(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)
	ctx := tghelpers.BuildContext(c)

	w, ok := a.delWizard(userID)
	if !ok {
		a.endConversation(userID)
		return c.Edit(i18n.T(lang, i18n.MsgDelCancel))
	}

	target, err := w.Confirm(ctx)
	a.endConversation(userID)
	if err != nil {
		if errors.Is(err, wizard.ErrConfirmAmbiguous) {
			return c.Edit(i18n.T(lang, i18n.MsgDelAmbiguous))
		}
		return c.Edit(i18n.T(lang, i18n.MsgError))
	}
	return c.Edit(i18n.F(lang, i18n.MsgDelSuccess, target.Name.In(lang)))
}

func (a *App) callbackDelCancel(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)

	if w, ok := a.delWizard(userID); ok {
		w.Decline()
	}
	a.endConversation(userID)
	return c.Edit(i18n.T(lang, i18n.MsgDelCancel))
}
