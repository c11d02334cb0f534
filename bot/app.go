// Package bot assembles the sights catalog bot on top of the core Telegram
// runtime: command registration, inline keyboard callbacks, and the FSM-driven
// add/delete conversations.
package bot

import (
	"fmt"
	"time"

	"github.com/arcticbots/sightsbot/assets"
	"github.com/arcticbots/sightsbot/catalog"
	coreconfig "github.com/arcticbots/sightsbot/core/config"
	coretelegram "github.com/arcticbots/sightsbot/core/telegram"
	tghelpers "github.com/arcticbots/sightsbot/core/telegram/helpers"
	"github.com/arcticbots/sightsbot/core/telegram/router"
	"github.com/arcticbots/sightsbot/core/telegram/state"
	"github.com/arcticbots/sightsbot/i18n"
	"github.com/arcticbots/sightsbot/translate"

	tele "gopkg.in/telebot.v4"
)

// App is the assembled bot application.
type App struct {
	cfg        *coreconfig.Config
	reg        *coretelegram.Registry
	fsm        state.Manager
	cat        *catalog.FileStore
	ast        *assets.DirStore
	translator translate.Translator
}

// New wires the application from configuration and bootstrapped stores.
func New(cfg *coreconfig.Config, cat *catalog.FileStore, ast *assets.DirStore) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bot: nil config")
	}
	if cat == nil || ast == nil {
		return nil, fmt.Errorf("bot: missing stores")
	}

	translator, err := buildTranslator(cfg.Translator)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:        cfg,
		reg:        coretelegram.NewRegistry(),
		fsm:        state.NewMemoryManager(),
		cat:        cat,
		ast:        ast,
		translator: translator,
	}
	app.registerCommands()
	app.registerCallbacks()
	app.registerStates()
	return app, nil
}

func buildTranslator(cfg coreconfig.TranslatorConfig) (translate.Translator, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	switch cfg.Provider {
	case coreconfig.TranslatorOpenAI:
		return translate.NewOpenAITranslator(translate.OpenAIOptions{
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.OpenAIModel,
			Timeout: timeout,
		}), nil
	case coreconfig.TranslatorGoogle, "":
		return translate.NewGoogleTranslator(translate.GoogleOptions{
			Client:  translate.BuildHTTPClient(),
			Timeout: timeout,
		}), nil
	}
	return nil, fmt.Errorf("bot: unknown translator provider %q", cfg.Provider)
}

// CoreConfig exposes the embedded core configuration.
func (a *App) CoreConfig() *coreconfig.Config { return a.cfg }

// Registry exposes the command/callback registry for diagnostics.
func (a *App) Registry() *coretelegram.Registry { return a.reg }

// TelegramRunOptions builds the runtime options consumed by the core runner.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	onReject := func(c tele.Context) error {
		return tghelpers.SendText(c, i18n.T(a.sessionLang(c.Sender().ID), i18n.MsgPermissionDenied))
	}

	routes := router.CommandRoutes(a.reg, router.CommandRouteOptions{
		AllowedIDs:     a.cfg.Access.AllowedIDs,
		OnAccessReject: onReject,
	})
	routes = append(routes, router.CallbackRoute(a.reg, router.CallbackOptions{
		NotFound: a.UnknownCallback(),
	}))
	routes = append(routes, router.TextRoutes(a.fsm, a.reg, router.TextOptions{
		UnknownText:     a.UnknownText(),
		UnknownPhoto:    a.UnknownPhoto(),
		UnknownDocument: a.UnknownDocument(),
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    a.reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
	}, nil
}
