package service

import (
	"sync"
	"time"

	"wordofday/internal/domain"
)

// SessionService keeps per-chat manual overrides of the date-based word.
// Overrides live in memory only and expire when the local day changes.
type SessionService struct {
	scheduler *Scheduler

	overrides map[int64]int
	day       string // local day the overrides belong to
	mu        sync.Mutex
}

// NewSessionService creates a new session service
func NewSessionService(scheduler *Scheduler) *SessionService {
	return &SessionService{
		scheduler: scheduler,
		overrides: make(map[int64]int),
	}
}

// Today drops any override and returns the date-based entry
func (s *SessionService) Today(chatID int64, now time.Time) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.scheduler.ComputeEntry(now)
	if err != nil {
		return domain.Entry{}, err
	}

	s.resetIfNewDay(entry.Day)
	delete(s.overrides, chatID)
	return entry, nil
}

// Current returns the override entry if one is set, otherwise today's entry
func (s *SessionService) Current(chatID int64, now time.Time) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today, err := s.scheduler.ComputeEntry(now)
	if err != nil {
		return domain.Entry{}, err
	}

	s.resetIfNewDay(today.Day)
	if index, ok := s.overrides[chatID]; ok {
		return s.scheduler.EntryAt(now, index)
	}
	return today, nil
}

// Next advances the chat's cursor by one word and returns that entry
func (s *SessionService) Next(chatID int64, now time.Time) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today, err := s.scheduler.ComputeEntry(now)
	if err != nil {
		return domain.Entry{}, err
	}

	s.resetIfNewDay(today.Day)

	index := today.Index
	if override, ok := s.overrides[chatID]; ok {
		index = override
	}

	next := Advance(index, s.scheduler.Len())
	s.overrides[chatID] = next

	return s.scheduler.EntryAt(now, next)
}

// resetIfNewDay drops overrides set on an earlier local day. Caller holds mu.
func (s *SessionService) resetIfNewDay(today domain.Day) {
	key := today.DateString()
	if key == s.day {
		return
	}
	if len(s.overrides) > 0 {
		s.overrides = make(map[int64]int)
	}
	s.day = key
}

// overrideCount returns how many chats currently have a manual override
func (s *SessionService) overrideCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.overrides)
}
