package refresher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wordofday/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// ErrChatGone means the chat can no longer receive messages from the bot
var ErrChatGone = errors.New("chat is unreachable")

// Publisher delivers a rendered surface to a subscribed chat.
// It returns the id of the message now showing the surface.
type Publisher interface {
	Publish(sub domain.Subscription, text string) (int, error)
}

// messenger is the part of *tele.Bot the publisher needs
type messenger interface {
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// TelegramPublisher edits the subscription's message in place,
// falling back to a new message when the old one cannot be edited
type TelegramPublisher struct {
	bot messenger
}

// NewTelegramPublisher creates a publisher for the given bot
func NewTelegramPublisher(bot *tele.Bot) *TelegramPublisher {
	return &TelegramPublisher{bot: bot}
}

// Publish implements Publisher
func (p *TelegramPublisher) Publish(sub domain.Subscription, text string) (int, error) {
	stored := tele.StoredMessage{
		MessageID: strconv.Itoa(sub.MessageID),
		ChatID:    sub.ChatID,
	}

	_, err := p.bot.Edit(stored, text, tele.ModeMarkdown)
	if err == nil || isNotModified(err) {
		return sub.MessageID, nil
	}
	if isChatGone(err) {
		return 0, fmt.Errorf("%w: %v", ErrChatGone, err)
	}

	msg, err := p.bot.Send(tele.ChatID(sub.ChatID), text, tele.ModeMarkdown)
	if err != nil {
		if isChatGone(err) {
			return 0, fmt.Errorf("%w: %v", ErrChatGone, err)
		}
		return 0, err
	}
	return msg.ID, nil
}

func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}

func isChatGone(err error) bool {
	if errors.Is(err, tele.ErrBlockedByUser) ||
		errors.Is(err, tele.ErrKickedFromGroup) ||
		errors.Is(err, tele.ErrChatNotFound) {
		return true
	}
	return strings.Contains(err.Error(), "Forbidden")
}
