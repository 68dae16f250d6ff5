package repository

import (
	"wordofday/internal/domain"
)

// WordRepository provides the ordered word list
type WordRepository interface {
	ListWords() ([]domain.Word, error)
}

// SubscriptionRepository defines subscription data operations
type SubscriptionRepository interface {
	SaveSubscription(sub domain.Subscription) error
	GetSubscription(chatID int64) (*domain.Subscription, error)
	ListSubscriptions() ([]domain.Subscription, error)
	UpdateMessageID(chatID int64, messageID int) error
	DeleteSubscription(chatID int64) error
}
