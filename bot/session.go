package bot

import (
	"github.com/arcticbots/sightsbot/core/telegram/state"
	"github.com/arcticbots/sightsbot/i18n"
	"github.com/arcticbots/sightsbot/wizard"
)

// FSM states of the two conversations. The add wizard advances through one
// state per prompt so /cancel and stray updates are handled per step.
const (
	stateAddName        = state.State("add_name")
	stateAddDescription = state.State("add_description")
	stateAddFunFact     = state.State("add_funfact")
	stateAddPhoto       = state.State("add_photo")
	stateAddLocation    = state.State("add_location")
	stateDelSearch      = state.State("del_search")
	stateDelConfirm     = state.State("del_confirm")
)

const (
	tempLang      = "lang"
	tempPage      = "page"
	tempAddWizard = "add_wizard"
	tempDelWizard = "del_wizard"
)

// sessionLang returns the user's chosen language, defaulting to English.
func (a *App) sessionLang(userID int64) i18n.Language {
	if v, ok := a.fsm.GetTemp(userID, tempLang); ok {
		if code, ok := v.(string); ok {
			if lang, valid := i18n.Parse(code); valid {
				return lang
			}
		}
	}
	return i18n.English
}

func (a *App) setSessionLang(userID int64, lang i18n.Language) {
	a.fsm.SetTemp(userID, tempLang, lang.String())
}

// sessionPage returns the user's browse cursor.
func (a *App) sessionPage(userID int64) int {
	if v, ok := a.fsm.GetTemp(userID, tempPage); ok {
		if p, ok := v.(int); ok && p >= 0 {
			return p
		}
	}
	return 0
}

func (a *App) setSessionPage(userID int64, page int) {
	if page < 0 {
		page = 0
	}
	a.fsm.SetTemp(userID, tempPage, page)
}

func (a *App) addWizard(userID int64) (*wizard.Add, bool) {
	if v, ok := a.fsm.GetTemp(userID, tempAddWizard); ok {
		if w, ok := v.(*wizard.Add); ok && w != nil {
			return w, true
		}
	}
	return nil, false
}

func (a *App) delWizard(userID int64) (*wizard.Delete, bool) {
	if v, ok := a.fsm.GetTemp(userID, tempDelWizard); ok {
		if w, ok := v.(*wizard.Delete); ok && w != nil {
			return w, true
		}
	}
	return nil, false
}

// endConversation cancels any in-flight wizard and resets the FSM state while
// keeping session preferences such as the language.
func (a *App) endConversation(userID int64) {
	if w, ok := a.addWizard(userID); ok {
		w.Cancel()
	}
	if w, ok := a.delWizard(userID); ok {
		w.Cancel()
	}
	a.fsm.ClearTemp(userID, tempAddWizard)
	a.fsm.ClearTemp(userID, tempDelWizard)
	a.fsm.ClearState(userID)
}
