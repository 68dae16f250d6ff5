package service

import (
	"fmt"

	"wordofday/internal/domain"
	"wordofday/internal/repository"

	"go.uber.org/zap"
)

// WordService loads the word list once at startup
type WordService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// LoadList reads and validates the word list
func (s *WordService) LoadList() (domain.WordList, error) {
	words, err := s.wordRepo.ListWords()
	if err != nil {
		return domain.WordList{}, fmt.Errorf("failed to read words: %w", err)
	}

	list, err := domain.NewWordList(words)
	if err != nil {
		return domain.WordList{}, err
	}

	s.logger.Info("Word list loaded", zap.Int("words", list.Len()))
	return list, nil
}
