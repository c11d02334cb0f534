package bot

import (
	"errors"

	"github.com/arcticbots/sightsbot/browse"
	"github.com/arcticbots/sightsbot/catalog"
	"github.com/arcticbots/sightsbot/core/logger"
	"github.com/arcticbots/sightsbot/core/telegram/callbacks"
	"github.com/arcticbots/sightsbot/core/telegram/format"
	tghelpers "github.com/arcticbots/sightsbot/core/telegram/helpers"
	"github.com/arcticbots/sightsbot/core/telegram/keyboard"
	"github.com/arcticbots/sightsbot/core/telegram/middleware"
	"github.com/arcticbots/sightsbot/i18n"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// sendList renders one page of the catalog as an inline keyboard, either
// editing the current message (pagination) or sending a fresh one.
func (a *App) sendList(c tele.Context, page int, edit bool) error {
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

	pg := browse.RenderPage(entries, page, a.cfg.Catalog.PageSize)
	if len(pg.Items) == 0 && pg.Index > 0 {
		// Stale cursor past the end, e.g. after deletions. Restart from the top.
		pg = browse.RenderPage(entries, 0, a.cfg.Catalog.PageSize)
		a.setSessionPage(userID, 0)
	}

	rows := make([][]keyboard.InlineBtn, 0, len(pg.Items)+1)
	for _, e := range pg.Items {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: e.Name.In(lang), Unique: cbDetails, Data: formatID(e.ID)},
		})
	}
	var nav []keyboard.InlineBtn
	if pg.HasPrev {
		nav = append(nav, keyboard.InlineBtn{Text: i18n.T(lang, i18n.MsgPrevButton), Unique: cbPage, Data: formatPage(browse.PrevPage(pg.Index))})
	}
	if pg.HasNext {
		nav = append(nav, keyboard.InlineBtn{Text: i18n.T(lang, i18n.MsgNextButton), Unique: cbPage, Data: formatPage(browse.NextPage(pg.Index))})
	}
	rows = append(rows, nav)
	markup := keyboard.Rows(rows...)

	title := i18n.F(lang, i18n.MsgListTitle, pg.Index+1)
	if edit {
		return c.Edit(title, markup)
	}
	return tghelpers.SendText(c, title, &tele.SendOptions{ReplyMarkup: markup})
}

// sendDetail posts the full card of one entry: photo, caption, map link, and
// a way back to the list. When the photo cannot be sent the caption goes out
// as plain text so the entry is still reachable.
func (a *App) sendDetail(c tele.Context, e catalog.Entry, lang i18n.Language) error {
	var location []keyboard.InlineBtn
	if e.Location != "" {
		location = append(location, keyboard.InlineBtn{Text: i18n.T(lang, i18n.MsgShowLocation), URL: e.Location})
	}
	markup := keyboard.Rows(
		location,
		[]keyboard.InlineBtn{{Text: i18n.T(lang, i18n.MsgBackList), Unique: cbBack}},
	)

	caption := "*" + format.EscapeMarkdownV2(e.Name.In(lang)) + "*\n\n" +
		format.EscapeMarkdownV2(e.Description.In(lang)) + "\n\n" +
		"🎩 " + format.EscapeMarkdownV2(e.FunFact.In(lang))

	photo := &tele.Photo{
		File:    tele.FromDisk(a.ast.Path(e.Photo)),
		Caption: caption,
	}
	err := c.Send(photo, &tele.SendOptions{ParseMode: tele.ModeMarkdownV2, ReplyMarkup: markup})
	if err == nil {
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	logger.Warn(ctx, "bot", "detail.photo",
		slog.String("status", "fail"),
		slog.Int64("sight_id", e.ID),
		slog.String("filename", e.Photo),
		slog.String("err", err.Error()),
	)
	plain := e.Name.In(lang) + "\n\n" + e.Description.In(lang) + "\n\n🎩 " + e.FunFact.In(lang)
	return tghelpers.SendText(c, plain, &tele.SendOptions{ReplyMarkup: markup})
}

func (a *App) registerCallbacks() {
	mustRegister := func(key string, h tele.HandlerFunc) {
		if err := a.reg.RegisterCallback(key, h); err != nil {
			logger.Error(logger.Background(), "bot", "callback.register",
				slog.String("status", "fail"),
				slog.String("cb_key", key),
				slog.String("err", err.Error()),
			)
		}
	}

	mustRegister(cbLang, a.callbackLang)
	mustRegister(cbPage, a.callbackPage)
	mustRegister(cbDetails, a.callbackDetails)
	mustRegister(cbBack, a.callbackBack)

	// Confirm/cancel buttons only act while the user is actually at the
	// confirmation step; presses on stale keyboards are ignored.
	confirmOnly := middleware.State(a.fsm, stateDelConfirm)
	mustRegister(cbDelConfirm, confirmOnly(a.callbackDelConfirm))
	mustRegister(cbDelCancel, confirmOnly(a.callbackDelCancel))
}

func (a *App) callbackLang(c tele.Context) error {
	userID := c.Sender().ID
	code := callbacks.CallbackPayload(c)
	lang, ok := i18n.Parse(code)
	if !ok {
		return tghelpers.SendText(c, i18n.T(a.sessionLang(userID), i18n.MsgError))
	}
	a.setSessionLang(userID, lang)

	display := "English"
	if lang == i18n.Russian {
		display = "Русский"
	}
	if err := c.Edit(i18n.F(lang, i18n.MsgLangSet, display)); err != nil {
		return err
	}
	return tghelpers.SendText(c, i18n.T(lang, i18n.MsgStart))
}

func (a *App) callbackPage(c tele.Context) error {
	page, err := callbacks.PayloadInt(c)
	if err != nil || page < 0 {
		page = 0
	}
	a.setSessionPage(c.Sender().ID, page)
	return a.sendList(c, page, true)
}

func (a *App) callbackDetails(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)
	ctx := tghelpers.BuildContext(c)

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgError))
	}

	entries, err := a.cat.Load(ctx)
	if err != nil {
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgError))
	}
	entry, err := browse.RenderDetail(entries, id)
	if err != nil {
		if errors.Is(err, browse.ErrNotFound) {
			// Deleted since the list was rendered.
			return a.sendList(c, a.sessionPage(userID), false)
		}
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgError))
	}
	return a.sendDetail(c, entry, lang)
}

func (a *App) callbackBack(c tele.Context) error {
	// The detail card is a photo message and cannot be edited into a text
	// list, so drop it and post the list anew.
	_ = c.Delete()
	return a.sendList(c, a.sessionPage(c.Sender().ID), false)
}
