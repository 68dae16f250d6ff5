package service

import (
	"time"

	"wordofday/internal/domain"
)

// DayOfYear returns the 1-based ordinal day of date within its calendar year.
// The date is read in its own location, so callers convert to the local
// calendar first.
func DayOfYear(date time.Time) int {
	return date.YearDay()
}

// IndexForDay maps a day of the year onto a list of n words.
// The rotation restarts at index 0 every January 1.
func IndexForDay(dayOfYear, n int) (int, error) {
	if n <= 0 {
		return 0, domain.ErrEmptyList
	}
	return (dayOfYear - 1) % n, nil
}

// Select returns the word of the day for date
func Select(date time.Time, words []domain.Word) (domain.Word, error) {
	index, err := IndexForDay(DayOfYear(date), len(words))
	if err != nil {
		return domain.Word{}, err
	}
	return words[index], nil
}

// Advance moves an interactive cursor to the next word, wrapping at n
func Advance(currentIndex, n int) int {
	if n <= 0 {
		return 0
	}
	return (currentIndex + 1) % n
}
