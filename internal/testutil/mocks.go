package testutil

import (
	"time"

	"wordofday/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) ListWords() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

// MockSubscriptionRepository is a mock for SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) SaveSubscription(sub domain.Subscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) GetSubscription(chatID int64) (*domain.Subscription, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscriptions() ([]domain.Subscription, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) UpdateMessageID(chatID int64, messageID int) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

// FixedClock always reports the same moment
type FixedClock struct {
	Moment time.Time
}

// Now returns the fixed moment
func (c FixedClock) Now() time.Time { return c.Moment }

// MockPublisher is a mock for refresher.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(sub domain.Subscription, text string) (int, error) {
	args := m.Called(sub, text)
	return args.Int(0), args.Error(1)
}
