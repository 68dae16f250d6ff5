package domain

import "time"

// Subscription is a chat hosting one passive surface.
// MessageID is the message edited in place on every refresh.
type Subscription struct {
	ChatID    int64
	MessageID int
	Surface   Surface
	CreatedAt time.Time
}
