package service

import (
	"fmt"
	"testing"

	"wordofday/internal/domain"
	"wordofday/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWordService_LoadList(t *testing.T) {
	tests := []struct {
		name          string
		mockWords     []domain.Word
		mockError     error
		expectedLen   int
		expectedErrIs error
		expectedError bool
	}{
		{
			name:        "valid list",
			mockWords:   testutil.NewTestWords("alpha", "beta"),
			expectedLen: 2,
		},
		{
			name:          "empty list",
			mockWords:     []domain.Word{},
			expectedErrIs: domain.ErrEmptyList,
			expectedError: true,
		},
		{
			name:          "invalid word",
			mockWords:     []domain.Word{{Text: "alpha"}},
			expectedErrIs: domain.ErrInvalidWord,
			expectedError: true,
		},
		{
			name:          "repository error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("ListWords").Return(tt.mockWords, tt.mockError)

			service := NewWordService(mockRepo, testutil.NewTestLogger())

			list, err := service.LoadList()

			if tt.expectedError {
				assert.Error(t, err)
				if tt.expectedErrIs != nil {
					assert.ErrorIs(t, err, tt.expectedErrIs)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLen, list.Len())
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
