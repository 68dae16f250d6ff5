package handler

import (
	"fmt"
	"strings"
	"time"

	"wordofday/internal/domain"
	"wordofday/internal/render"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleSubscribe posts a passive surface that is edited at every day boundary
func (h *Handler) handleSubscribe(c tele.Context) error {
	chatID := c.Chat().ID

	surface, err := parseSurfaceArg(c.Message().Payload)
	if err != nil {
		return c.Send(fmt.Sprintf("Unknown surface. Choose one of: %s", surfaceNames()))
	}

	now := h.clock.Now()
	timeline, err := h.scheduler.Timeline(now)
	if err != nil {
		h.logger.Error("Failed to compute timeline", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(errorText)
	}

	msg, err := h.bot.Send(c.Chat(), render.Text(surface, timeline.Entry), tele.ModeMarkdown)
	if err != nil {
		h.logger.Error("Failed to post surface", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(errorText)
	}

	if err := h.subscriptionService.Subscribe(chatID, surface, msg.ID); err != nil {
		h.logger.Error("Failed to subscribe", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(errorText)
	}

	if err := h.bot.Pin(msg, tele.Silent); err != nil {
		h.logger.Debug("Could not pin surface", zap.Error(err), zap.Int64("chat_id", chatID))
	}

	return c.Send(refreshNotice(surface, timeline.Policy.After))
}

// handleUnsubscribe stops updating the chat's surface
func (h *Handler) handleUnsubscribe(c tele.Context) error {
	chatID := c.Chat().ID

	sub, err := h.subscriptionService.Get(chatID)
	if err != nil {
		h.logger.Error("Failed to load subscription", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(errorText)
	}
	if sub == nil {
		return c.Send("This chat has no daily word message.")
	}

	if err := h.subscriptionService.Unsubscribe(chatID); err != nil {
		h.logger.Error("Failed to unsubscribe", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(errorText)
	}

	return c.Send("✅ The daily word message will no longer update.")
}

// parseSurfaceArg reads the optional surface argument of /subscribe
func parseSurfaceArg(payload string) (domain.Surface, error) {
	fields := strings.Fields(payload)
	if len(fields) == 0 {
		return domain.DefaultSurface, nil
	}

	return domain.ParseSurface(fields[0])
}

func surfaceNames() string {
	names := make([]string, 0, len(domain.Surfaces()))
	for _, s := range domain.Surfaces() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// refreshNotice tells the user when the surface changes next
func refreshNotice(surface domain.Surface, after time.Time) string {
	return fmt.Sprintf("✅ Subscribed (%s). The message above updates at %s.",
		surface, after.Format("Mon Jan 2 15:04 MST"))
}
