package bot

import (
	"errors"
	"io"

	tghelpers "github.com/arcticbots/sightsbot/core/telegram/helpers"
	"github.com/arcticbots/sightsbot/core/telegram/state"
	"github.com/arcticbots/sightsbot/i18n"
	"github.com/arcticbots/sightsbot/translate"
	"github.com/arcticbots/sightsbot/wizard"

	tele "gopkg.in/telebot.v4"
)

func (a *App) registerStates() {
	state.RegisterHandler(stateAddName, a.fsmAddText)
	state.RegisterHandler(stateAddDescription, a.fsmAddText)
	state.RegisterHandler(stateAddFunFact, a.fsmAddText)
	state.RegisterHandler(stateAddPhoto, a.fsmAddPhoto)
	state.RegisterHandler(stateAddLocation, a.fsmAddText)
	state.RegisterHandler(stateDelSearch, a.fsmDelSearch)
	// No handler for stateDelConfirm: free-form text is ignored there, the
	// decision arrives through the confirm/cancel buttons.
}

// fsmAddText advances the add wizard with a text input from any prompt state.
func (a *App) fsmAddText(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)
	ctx := tghelpers.BuildContext(c)

	w, ok := a.addWizard(userID)
	if !ok {
		a.endConversation(userID)
		return nil
	}

	ev, err := w.HandleText(ctx, c.Text())
	if err != nil {
		a.endConversation(userID)
		if errors.Is(err, translate.ErrUnavailable) {
			return tghelpers.SendText(c, i18n.T(lang, i18n.MsgTranslationError))
		}
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgError))
	}

	a.syncAddState(userID, w)
	return a.sendAddEvent(c, lang, ev)
}

// fsmAddPhoto handles updates while the wizard waits for a photo. Text and
// non-photo attachments re-prompt; a photo is downloaded and stored.
func (a *App) fsmAddPhoto(c tele.Context) error {
	userID := c.Sender().ID
	lang := a.sessionLang(userID)
	ctx := tghelpers.BuildContext(c)

	w, ok := a.addWizard(userID)
	if !ok {
		a.endConversation(userID)
		return nil
	}

	msg := c.Message()
	if msg == nil || msg.Photo == nil {
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgAddPhoto))
	}

	data, err := a.downloadPhoto(c, msg.Photo)
	if err != nil {
		// Download failed before the wizard saw anything; let them retry.
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgPhotoError))
	}

	ev, err := w.HandlePhoto(ctx, data)
	if err != nil {
		a.endConversation(userID)
		return tghelpers.SendText(c, i18n.T(lang, i18n.MsgPhotoError))
	}

	a.syncAddState(userID, w)
	return a.sendAddEvent(c, lang, ev)
}

func (a *App) downloadPhoto(c tele.Context, photo *tele.Photo) ([]byte, error) {
	rc, err := c.Bot().File(&photo.File)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// syncAddState mirrors the wizard step into the FSM so routing stays correct.
func (a *App) syncAddState(userID int64, w *wizard.Add) {
	switch w.Step() {
	case wizard.AddStepName:
		a.fsm.SetState(userID, stateAddName)
	case wizard.AddStepDescription:
		a.fsm.SetState(userID, stateAddDescription)
	case wizard.AddStepFunFact:
		a.fsm.SetState(userID, stateAddFunFact)
	case wizard.AddStepPhoto:
		a.fsm.SetState(userID, stateAddPhoto)
	case wizard.AddStepLocation:
		a.fsm.SetState(userID, stateAddLocation)
	default:
		a.endConversation(userID)
	}
}

func (a *App) sendAddEvent(c tele.Context, lang i18n.Language, ev wizard.AddEvent) error {
	var m i18n.Message
	switch ev {
	case wizard.AddAskName:
		m = i18n.MsgAddName
	case wizard.AddAskDescription:
		m = i18n.MsgAddDescription
	case wizard.AddAskFunFact:
		m = i18n.MsgAddFunFact
	case wizard.AddAskPhoto:
		m = i18n.MsgAddPhoto
	case wizard.AddAskLocation:
		m = i18n.MsgAddLocation
	case wizard.AddInvalidLocation:
		m = i18n.MsgInvalidLink
	case wizard.AddCommitted:
		m = i18n.MsgAddSuccess
	default:
		m = i18n.MsgError
	}
	return tghelpers.SendText(c, i18n.T(lang, m))
}
