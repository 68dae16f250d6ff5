package refresher

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Trigger runs a function once at a given instant.
// Arming again replaces the pending run, so at most one is ever pending.
type Trigger interface {
	Arm(at time.Time, fn func()) error
	Stop()
}

// GocronTrigger is a Trigger backed by a one-shot gocron job
type GocronTrigger struct {
	scheduler *gocron.Scheduler

	job *gocron.Job
	mu  sync.Mutex
}

// NewGocronTrigger creates and starts a trigger in the given location
func NewGocronTrigger(location *time.Location) *GocronTrigger {
	s := gocron.NewScheduler(location)
	s.StartAsync()

	return &GocronTrigger{scheduler: s}
}

// Arm schedules fn at the given instant, dropping any pending run
func (t *GocronTrigger) Arm(at time.Time, fn func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.job != nil {
		t.scheduler.RemoveByReference(t.job)
		t.job = nil
	}

	job, err := t.scheduler.Every(1).Day().StartAt(at).LimitRunsTo(1).Do(fn)
	if err != nil {
		return fmt.Errorf("failed to schedule refresh at %s: %w", at.Format(time.RFC3339), err)
	}

	t.job = job
	return nil
}

// Stop cancels the pending run and shuts the scheduler down
func (t *GocronTrigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.scheduler.Stop()
	t.job = nil
}
