package domain

import "time"

// Entry is the word selected for the calendar day containing Moment
type Entry struct {
	// Moment is the instant the entry was computed for. A refresh that
	// fires slightly before its boundary is stamped with the boundary
	// rather than the wall clock.
	Moment time.Time
	Word   Word
	Index  int
	Day    Day
}

// RefreshPolicy asks the host to recompute after the given instant
type RefreshPolicy struct {
	After time.Time
}

// Timeline is what a passive surface receives: one entry and one refresh policy
type Timeline struct {
	Entry  Entry
	Policy RefreshPolicy
}
