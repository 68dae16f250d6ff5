package service

import (
	"fmt"
	"time"

	"wordofday/internal/domain"
	"wordofday/internal/repository"

	"go.uber.org/zap"
)

// SubscriptionService manages chats that host a passive surface
type SubscriptionService struct {
	subRepo repository.SubscriptionRepository
	logger  *zap.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subRepo repository.SubscriptionRepository, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		subRepo: subRepo,
		logger:  logger,
	}
}

// Subscribe stores the chat's surface and the message that displays it
func (s *SubscriptionService) Subscribe(chatID int64, surface domain.Surface, messageID int) error {
	if messageID <= 0 {
		return fmt.Errorf("message id must be positive, got %d", messageID)
	}

	sub := domain.Subscription{
		ChatID:    chatID,
		MessageID: messageID,
		Surface:   surface,
		CreatedAt: time.Now(),
	}
	if err := s.subRepo.SaveSubscription(sub); err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	s.logger.Info("Chat subscribed",
		zap.Int64("chat_id", chatID),
		zap.String("surface", string(surface)),
	)
	return nil
}

// Unsubscribe removes the chat's passive surface
func (s *SubscriptionService) Unsubscribe(chatID int64) error {
	if err := s.subRepo.DeleteSubscription(chatID); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	s.logger.Info("Chat unsubscribed", zap.Int64("chat_id", chatID))
	return nil
}

// Get returns the chat's subscription or nil
func (s *SubscriptionService) Get(chatID int64) (*domain.Subscription, error) {
	return s.subRepo.GetSubscription(chatID)
}

// List returns all subscriptions
func (s *SubscriptionService) List() ([]domain.Subscription, error) {
	return s.subRepo.ListSubscriptions()
}

// MoveMessage records that the surface now lives in a different message
func (s *SubscriptionService) MoveMessage(chatID int64, messageID int) error {
	return s.subRepo.UpdateMessageID(chatID, messageID)
}
