package handler

import (
	"wordofday/internal/domain"
	"wordofday/internal/render"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleToday shows the date-based word and clears any manual override
func (h *Handler) handleToday(c tele.Context) error {
	chatID := c.Chat().ID

	entry, err := h.sessionService.Today(chatID, h.clock.Now())
	if err != nil {
		h.logger.Error("Failed to compute today's entry", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(errorText)
	}

	return h.showEntry(c, entry)
}

// handleNext steps the chat to the next word in the list
func (h *Handler) handleNext(c tele.Context) error {
	chatID := c.Chat().ID

	entry, err := h.sessionService.Next(chatID, h.clock.Now())
	if err != nil {
		h.logger.Error("Failed to advance word", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(errorText)
	}

	h.logger.Debug("Advanced word",
		zap.Int64("chat_id", chatID),
		zap.Int("index", entry.Index),
	)

	return h.showEntry(c, entry)
}

func (h *Handler) showEntry(c tele.Context, entry domain.Entry) error {
	text := render.Interactive(entry, h.scheduler.Len())

	if c.Callback() != nil {
		return h.editOrSend(c, text, wordMarkup())
	}
	return c.Send(text, wordMarkup(), tele.ModeMarkdown)
}
