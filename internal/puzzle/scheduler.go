// internal/puzzle/scheduler.go
//
// Scheduled-callback capability for the clear delay. The production
// implementation wraps time.AfterFunc; tests substitute a manual-fire fake.

package puzzle

import "time"

// CancelFunc stops a pending callback. Calling it after the callback has
// fired is harmless.
type CancelFunc func()

// Scheduler invokes fn once, d after After returns.
type Scheduler interface {
	After(d time.Duration, fn func()) CancelFunc
}

type timerScheduler struct{}

// NewScheduler returns the timer-backed Scheduler used in production.
func NewScheduler() Scheduler { return timerScheduler{} }

func (timerScheduler) After(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
