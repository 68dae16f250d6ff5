package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every update and its outcome
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()

			fields := []zap.Field{
				zap.Int("update_id", c.Update().ID),
			}
			if chat := c.Chat(); chat != nil {
				fields = append(fields, zap.Int64("chat_id", chat.ID))
			}
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("callback", cb.Unique))
			} else if text := c.Text(); text != "" {
				fields = append(fields, zap.String("text", text))
			}

			err := next(c)

			fields = append(fields, zap.Duration("duration", time.Since(start)))
			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}

			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
