package middleware

import (
	"github.com/Ramilbey/china-agent-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Tally counts every inbound update into the message counter and logs it
func Tally(stats *service.StatsService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				logger.Debug("Update received",
					zap.Int64("user_id", sender.ID),
					zap.String("text", c.Text()),
				)
			}
			stats.CountMessage()
			return next(c)
		}
	}
}

// AdminOnly restricts a handler to the configured admin IDs. Updates
// from anyone else are dropped silently.
func AdminOnly(isAdmin func(int64) bool, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || !isAdmin(sender.ID) {
				if sender != nil {
					logger.Warn("Non-admin tried an admin command",
						zap.Int64("user_id", sender.ID),
						zap.String("text", c.Text()),
					)
				}
				return nil
			}
			return next(c)
		}
	}
}
