package domain

import "errors"

var (
	// ErrEmptyList is returned when a word list has no entries
	ErrEmptyList = errors.New("word list is empty")

	// ErrClockResolution is returned when local day boundaries cannot be resolved
	ErrClockResolution = errors.New("cannot resolve local day boundary")

	// ErrInvalidWord is returned when a word misses its text or definition
	ErrInvalidWord = errors.New("invalid word")

	// ErrUnknownSurface is returned for an unsupported display surface name
	ErrUnknownSurface = errors.New("unknown surface")
)
