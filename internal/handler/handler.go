package handler

import (
	"wordofday/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Bot is the part of *tele.Bot the handlers use
type Bot interface {
	Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc)
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Pin(msg tele.Editable, opts ...interface{}) error
}

// Handler manages all bot interactions
type Handler struct {
	bot                 Bot
	scheduler           *service.Scheduler
	sessionService      *service.SessionService
	subscriptionService *service.SubscriptionService
	clock               service.Clock
	logger              *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot Bot,
	scheduler *service.Scheduler,
	sessionService *service.SessionService,
	subscriptionService *service.SubscriptionService,
	clock service.Clock,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:                 bot,
		scheduler:           scheduler,
		sessionService:      sessionService,
		subscriptionService: subscriptionService,
		clock:               clock,
		logger:              logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleStart)
	h.bot.Handle("/today", h.handleToday)
	h.bot.Handle("/next", h.handleNext)
	h.bot.Handle("/subscribe", h.handleSubscribe)
	h.bot.Handle("/unsubscribe", h.handleUnsubscribe)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnToday, h.handleToday)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnToday = tele.Btn{
		Unique: "today",
		Text:   "📖 Today's word",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "➡️ Next word",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnToday),
		menu.Row(btnNext),
	)
	return menu
}

// wordMarkup returns the keyboard shown under an interactive word
func wordMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnNext),
		markup.Row(btnToday, btnMainMenu),
	)
	return markup
}

const errorText = "Something went wrong. Please try again later."

const helpText = `📖 *Word of the Day*

/today - show today's word
/next - step to the next word in the list
/subscribe <surface> - pin a message that updates itself at midnight
/unsubscribe - stop the daily message

Surfaces: small, medium, large, circular, rectangular, inline`
