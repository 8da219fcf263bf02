// Package debounce coalesces rapid event bursts into one trailing
// callback, independent of the query logic it typically drives.
package debounce

import (
	"sync"
	"time"
)

const defaultDelay = 300 * time.Millisecond

// Scheduler runs the most recently scheduled function once the delay
// elapses without another Schedule call. Rescheduling cancels the
// pending run.
type Scheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	stopped bool
}

// NewScheduler returns a scheduler with the given trailing delay;
// non-positive delays fall back to the 300 ms default.
func NewScheduler(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = defaultDelay
	}
	return &Scheduler{delay: delay}
}

// Schedule queues fn to run after the delay, cancelling any pending
// run. Calls after Stop are ignored.
func (s *Scheduler) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, fn)
}

// Stop cancels any pending run and rejects further scheduling. It does
// not wait for an already-started callback to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
