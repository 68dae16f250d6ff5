package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackAction extracts the button id from raw callback data.
// telebot prefixes button data with "\f<unique>|".
func callbackAction(data string) string {
	data = cleanCallbackData(data)
	if i := strings.Index(data, "|"); i >= 0 {
		data = data[:i]
	}
	return data
}

// editOrSend edits the callback's message, or sends a new one if it cannot be edited
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	err := c.Edit(text, markup, tele.ModeMarkdown)
	if err == nil {
		return c.Respond()
	}

	// If message is not modified, the user pressed the same button twice
	if strings.Contains(err.Error(), "message is not modified") {
		return c.Respond()
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", c.Chat().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return c.Send(text, markup, tele.ModeMarkdown)
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	action := callback.Unique
	if action == "" {
		action = callbackAction(callback.Data)
	}

	switch action {
	case btnToday.Unique:
		return h.handleToday(c)
	case btnNext.Unique:
		return h.handleNext(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
