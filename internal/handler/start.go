package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and /help
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("username", c.Sender().Username),
	)

	if c.Callback() != nil {
		return h.editOrSend(c, helpText, mainMenuMarkup())
	}
	return c.Send(helpText, mainMenuMarkup(), tele.ModeMarkdown)
}

// handleText answers free text with the main menu
func (h *Handler) handleText(c tele.Context) error {
	return c.Send(helpText, mainMenuMarkup(), tele.ModeMarkdown)
}
