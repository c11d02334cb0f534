package bot

import (
	"math/rand"

	"github.com/arcticbots/sightsbot/core/buildinfo"
	"github.com/arcticbots/sightsbot/core/telegram/commands"
	tghelpers "github.com/arcticbots/sightsbot/core/telegram/helpers"
	"github.com/arcticbots/sightsbot/core/telegram/keyboard"
	"github.com/arcticbots/sightsbot/i18n"
	"github.com/arcticbots/sightsbot/wizard"

	tele "gopkg.in/telebot.v4"
)

const (
	cbLang       = "lang"
	cbPage       = "page"
	cbDetails    = "details"
	cbBack       = "back_to_list"
	cbDelConfirm = "del_confirm"
	cbDelCancel  = "del_cancel"
)

func (a *App) registerCommands() {
	a.reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Begin the adventure",
	})
	a.reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "Show available commands",
	})
	a.reg.RegisterCommand("/lang", commands.Command{
		Handler:     a.handleLang,
		Description: "Change language",
	})
	a.reg.RegisterCommand("/dev", commands.Command{
		Handler:     a.handleDev,
		Description: "About this bot",
	})
	a.reg.RegisterCommand("/rand", commands.Command{
		Handler:     a.handleRandom,
		Description: "Random magical place",
	})
	a.reg.RegisterCommand("/list", commands.Command{
		Handler:     a.handleList,
		Description: "List all magical places",
	})
	a.reg.RegisterCommand("/add", commands.Command{
		Handler:     a.handleAdd,
		Description: "Add a new place",
		AdminOnly:   true,
	})
	a.reg.RegisterCommand("/del", commands.Command{
		Handler:     a.handleDelete,
		Description: "Remove a place",
		AdminOnly:   true,
	})
	a.reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "Cancel the current operation",
		Hidden:      true,
	})
}

func (a *App) languageKeyboard() *tele.ReplyMarkup {
	return keyboard.Row(
		keyboard.InlineBtn{Text: "English 🇬🇧", Unique: cbLang, Data: i18n.English.String()},
		keyboard.InlineBtn{Text: "Русский 🇷🇺", Unique: cbLang, Data: i18n.Russian.String()},
	)
}

func (a *App) handleStart(c tele.Context) error {
	lang := a.sessionLang(c.Sender().ID)
	return tghelpers.SendText(c, i18n.T(lang, i18n.MsgWelcome), &tele.SendOptions{
		ReplyMarkup: a.languageKeyboard(),
	})
}

func (a *App) handleHelp(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)
	body := i18n.T(lang, i18n.MsgHelpBody)
	if a.cfg.Access.Allowed(userID) {
		body += i18n.T(lang, i18n.MsgHelpAdmin)
	}
	body += i18n.T(lang, i18n.MsgHelpFooter)
	return tghelpers.SendText(c, body)
}

func (a *App) handleLang(c tele.Context) error {
	lang := a.sessionLang(c.Sender().ID)
	return tghelpers.SendText(c, i18n.T(lang, i18n.MsgLangChange), &tele.SendOptions{
		ReplyMarkup: a.languageKeyboard(),
	})
}

func (a *App) handleDev(c tele.Context) error {
	lang := a.sessionLang(c.Sender().ID)
	return tghelpers.SendText(c, i18n.F(lang, i18n.MsgDevInfo, buildinfo.Version))
}

func (a *App) handleRandom(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)
	ctx := tghelpers.BuildContext(c)

	entries, err := a.cat.Load(ctx)
	if err != nil {
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgError))
	}
	if len(entries) == 0 {
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgNoSights))
	}

	pick := entries[rand.Intn(len(entries))]
	if err := tghelpers.SendText(c, i18n.T(lang, i18n.MsgRandomSight)); err != nil {
		return err
	}
	return a.sendDetail(c, pick, lang)
}

func (a *App) handleList(c tele.Context) error {
	userID := c.Sender().ID
	a.setSessionPage(userID, 0)
	return a.sendList(c, 0, false)
}

func (a *App) handleAdd(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)

	a.endConversation(userID)
	w := wizard.NewAdd(lang, a.translator, a.cat, a.ast)
	a.fsm.SetTemp(userID, tempAddWizard, w)
	a.fsm.SetState(userID, stateAddName)
	return tghelpers.SendText(c, i18n.T(lang, i18n.MsgAddName))
}

func (a *App) handleDelete(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)

	a.endConversation(userID)
	w := wizard.NewDelete(lang, a.cat, a.ast)
	a.fsm.SetTemp(userID, tempDelWizard, w)
	a.fsm.SetState(userID, stateDelSearch)
	return tghelpers.SendText(c, i18n.T(lang, i18n.MsgDelStart))
}

func (a *App) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)
	a.endConversation(userID)
	return tghelpers.SendText(c, i18n.T(lang, i18n.MsgCancel))
}
