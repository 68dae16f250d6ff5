package testutil

import (
	"time"

	"wordofday/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(text, definition string) domain.Word {
	return domain.Word{
		Text:         text,
		Definition:   definition,
		PartOfSpeech: domain.Noun,
	}
}

// NewTestWords creates one word per text, each with a generated definition
func NewTestWords(texts ...string) []domain.Word {
	words := make([]domain.Word, 0, len(texts))
	for _, text := range texts {
		words = append(words, NewTestWord(text, "definition of "+text))
	}
	return words
}

// NewTestWordList creates a validated word list
func NewTestWordList(texts ...string) domain.WordList {
	list, err := domain.NewWordList(NewTestWords(texts...))
	if err != nil {
		panic(err)
	}
	return list
}

// NewTestSubscription creates a test subscription
func NewTestSubscription(chatID int64, messageID int, surface domain.Surface) domain.Subscription {
	return domain.Subscription{
		ChatID:    chatID,
		MessageID: messageID,
		Surface:   surface,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// DayOfYear returns noon on the given 1-based day of year in loc
func DayOfYear(year, day int, loc *time.Location) time.Time {
	return time.Date(year, time.January, day, 12, 0, 0, 0, loc)
}
