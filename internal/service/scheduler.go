package service

import (
	"fmt"
	"time"

	"wordofday/internal/domain"

	"go.uber.org/zap"
)

// Clock supplies the current moment
type Clock interface {
	Now() time.Time
}

// SystemClock uses actual system time
type SystemClock struct{}

// Now returns the current system time
func (SystemClock) Now() time.Time { return time.Now() }

// Scheduler computes what to show now and when to ask again
type Scheduler struct {
	words    domain.WordList
	location *time.Location
	logger   *zap.Logger
}

// NewScheduler creates a scheduler over a loaded word list and local calendar
func NewScheduler(words domain.WordList, location *time.Location, logger *zap.Logger) (*Scheduler, error) {
	if words.Len() == 0 {
		return nil, domain.ErrEmptyList
	}
	if location == nil {
		return nil, fmt.Errorf("%w: no time zone configured", domain.ErrClockResolution)
	}
	return &Scheduler{
		words:    words,
		location: location,
		logger:   logger,
	}, nil
}

// Location returns the local calendar used for day boundaries
func (s *Scheduler) Location() *time.Location {
	return s.location
}

// Len returns the size of the word list
func (s *Scheduler) Len() int {
	return s.words.Len()
}

// ComputeEntry returns the entry for the local calendar day containing now
func (s *Scheduler) ComputeEntry(now time.Time) (domain.Entry, error) {
	local := now.In(s.location)

	index, err := IndexForDay(DayOfYear(local), s.words.Len())
	if err != nil {
		return domain.Entry{}, err
	}

	return s.entryAt(now, index), nil
}

// EntryAt returns an entry stamped with now for an explicit list position.
// Used by interactive surfaces that step through the list manually.
func (s *Scheduler) EntryAt(now time.Time, index int) (domain.Entry, error) {
	if index < 0 || index >= s.words.Len() {
		return domain.Entry{}, fmt.Errorf("index %d out of range [0, %d)", index, s.words.Len())
	}
	return s.entryAt(now, index), nil
}

func (s *Scheduler) entryAt(now time.Time, index int) domain.Entry {
	return domain.Entry{
		Moment: now,
		Word:   s.words.At(index),
		Index:  index,
		Day:    domain.DayOf(now.In(s.location)),
	}
}

// NextRefresh returns the start of the local day after the one containing now.
// A moment exactly at midnight advances a full day.
func (s *Scheduler) NextRefresh(now time.Time) (time.Time, error) {
	local := now.In(s.location)
	y, m, d := local.Date()

	next := domain.StartOfDay(y, m, d+1, s.location)
	if !next.After(now) {
		return time.Time{}, fmt.Errorf("%w: next day start %s is not after %s",
			domain.ErrClockResolution, next.Format(time.RFC3339), now.Format(time.RFC3339))
	}

	return next, nil
}

// Timeline pairs the entry for now with a single refresh policy
func (s *Scheduler) Timeline(now time.Time) (domain.Timeline, error) {
	entry, err := s.ComputeEntry(now)
	if err != nil {
		return domain.Timeline{}, err
	}

	next, err := s.NextRefresh(now)
	if err != nil {
		return domain.Timeline{}, err
	}

	s.logger.Debug("Computed timeline",
		zap.String("word", entry.Word.Text),
		zap.Int("index", entry.Index),
		zap.Time("now", now),
		zap.Time("refresh_after", next),
	)

	return domain.Timeline{
		Entry:  entry,
		Policy: domain.RefreshPolicy{After: next},
	}, nil
}
