// Package refresher keeps passive surfaces current. It publishes the
// timeline for now, then arms one trigger for the policy's instant and
// repeats when that trigger fires.
package refresher

import (
	"context"
	"errors"
	"sync"
	"time"

	"wordofday/internal/domain"
	"wordofday/internal/render"
	"wordofday/internal/service"

	"go.uber.org/zap"
)

// Refresher re-renders every subscribed surface at each local day boundary
type Refresher struct {
	scheduler     *service.Scheduler
	subscriptions *service.SubscriptionService
	publisher     Publisher
	trigger       Trigger
	clock         service.Clock
	logger        *zap.Logger

	pending time.Time
	mu      sync.Mutex

	fatal chan error
}

// New creates a refresher
func New(
	scheduler *service.Scheduler,
	subscriptions *service.SubscriptionService,
	publisher Publisher,
	trigger Trigger,
	clock service.Clock,
	logger *zap.Logger,
) *Refresher {
	return &Refresher{
		scheduler:     scheduler,
		subscriptions: subscriptions,
		publisher:     publisher,
		trigger:       trigger,
		clock:         clock,
		logger:        logger,
		fatal:         make(chan error, 1),
	}
}

// Run publishes the current timeline and keeps refreshing until ctx is done.
// A clock resolution failure stops the loop and is returned.
func (r *Refresher) Run(ctx context.Context) error {
	defer r.trigger.Stop()

	if err := r.Refresh(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		r.logger.Info("Refresher stopped")
		return nil
	case err := <-r.fatal:
		return err
	}
}

// Pending returns the instant of the single pending refresh
func (r *Refresher) Pending() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Refresh publishes the timeline for now and arms the next refresh
func (r *Refresher) Refresh() error {
	return r.refreshAt(r.clock.Now())
}

func (r *Refresher) refreshAt(now time.Time) error {
	timeline, err := r.scheduler.Timeline(now)
	if err != nil {
		return err
	}

	r.publishAll(timeline.Entry)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.trigger.Arm(timeline.Policy.After, r.onTrigger); err != nil {
		return err
	}
	r.pending = timeline.Policy.After

	r.logger.Info("Next refresh scheduled",
		zap.String("word", timeline.Entry.Word.Text),
		zap.Time("refresh_after", timeline.Policy.After),
	)
	return nil
}

// onTrigger runs when the pending refresh fires. A trigger that fires a
// little early is treated as firing at the boundary itself.
func (r *Refresher) onTrigger() {
	now := r.clock.Now()
	if pending := r.Pending(); now.Before(pending) {
		now = pending
	}

	if err := r.refreshAt(now); err != nil {
		r.logger.Error("Refresh failed", zap.Error(err))
		if errors.Is(err, domain.ErrClockResolution) {
			select {
			case r.fatal <- err:
			default:
			}
		}
	}
}

func (r *Refresher) publishAll(entry domain.Entry) {
	subs, err := r.subscriptions.List()
	if err != nil {
		r.logger.Error("Failed to list subscriptions", zap.Error(err))
		return
	}

	for _, sub := range subs {
		r.publish(sub, entry)
	}
}

func (r *Refresher) publish(sub domain.Subscription, entry domain.Entry) {
	text := render.Text(sub.Surface, entry)

	messageID, err := r.publisher.Publish(sub, text)
	if errors.Is(err, ErrChatGone) {
		r.logger.Warn("Chat unreachable, removing subscription",
			zap.Int64("chat_id", sub.ChatID),
			zap.Error(err),
		)
		if err := r.subscriptions.Unsubscribe(sub.ChatID); err != nil {
			r.logger.Error("Failed to remove subscription", zap.Int64("chat_id", sub.ChatID), zap.Error(err))
		}
		return
	}
	if err != nil {
		r.logger.Warn("Failed to publish surface",
			zap.Int64("chat_id", sub.ChatID),
			zap.String("surface", string(sub.Surface)),
			zap.Error(err),
		)
		return
	}

	if messageID != sub.MessageID {
		if err := r.subscriptions.MoveMessage(sub.ChatID, messageID); err != nil {
			r.logger.Error("Failed to record new message", zap.Int64("chat_id", sub.ChatID), zap.Error(err))
		}
	}
}
