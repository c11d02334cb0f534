package middleware

import tele "gopkg.in/telebot.v4"

// AllowListOptions defines how privileged-command checks should behave.
type AllowListOptions struct {
	IDs      []int64
	OnReject tele.HandlerFunc
}

func (o AllowListOptions) allowed(userID int64) bool {
	for _, id := range o.IDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AllowListMiddleware ensures that only allow-listed users can invoke
// downstream handlers. An empty list rejects everyone.
func AllowListMiddleware(opts AllowListOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if !opts.allowed(c.Sender().ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
