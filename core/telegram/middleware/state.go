package middleware

import (
	"github.com/arcticbots/sightsbot/core/logger"
	tghelpers "github.com/arcticbots/sightsbot/core/telegram/helpers"
	"github.com/arcticbots/sightsbot/core/telegram/state"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// StateGetter is the minimal interface required from an FSM manager.
type StateGetter interface {
	GetState(userID int64) state.State
}

// State returns a middleware that runs the handler only while the user is in
// the expected FSM state. Updates arriving in any other state are ignored, so
// stale inline buttons cannot replay a finished conversation.
func State(mgr StateGetter, expected state.State) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID
			current := mgr.GetState(userID)
			ctx := tghelpers.BuildContext(c)
			if current == expected {
				logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.match",
					slog.Int64("user_id", userID),
					slog.String("state", string(current)),
					slog.String("expected", string(expected)),
					slog.String("rid", logger.RIDFrom(ctx)),
				)
				return next(c)
			}
			logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.skip",
				slog.Int64("user_id", userID),
				slog.String("state", string(current)),
				slog.String("expected", string(expected)),
				slog.String("rid", logger.RIDFrom(ctx)),
			)
			return nil
		}
	}
}
