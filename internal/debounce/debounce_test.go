package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleRunsTrailingCallOnly(t *testing.T) {
	var lastValue atomic.Int64
	var runs atomic.Int64

	scheduler := NewScheduler(20 * time.Millisecond)
	defer scheduler.Stop()

	for i := 1; i <= 5; i++ {
		value := int64(i)
		scheduler.Schedule(func() {
			lastValue.Store(value)
			runs.Add(1)
		})
	}

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	// Allow any stray earlier timer to fire before asserting.
	time.Sleep(50 * time.Millisecond)

	if got := runs.Load(); got != 1 {
		t.Fatalf("expected exactly one run, got %d", got)
	}
	if got := lastValue.Load(); got != 5 {
		t.Fatalf("expected the last scheduled call to win, got %d", got)
	}
}

func TestStopCancelsPendingRun(t *testing.T) {
	var runs atomic.Int64

	scheduler := NewScheduler(20 * time.Millisecond)
	scheduler.Schedule(func() { runs.Add(1) })
	scheduler.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Fatalf("expected stop to cancel the pending run, got %d runs", got)
	}

	scheduler.Schedule(func() { runs.Add(1) })
	time.Sleep(80 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Fatalf("expected scheduling after stop to be ignored, got %d runs", got)
	}
}

func TestNewSchedulerDefaultsDelay(t *testing.T) {
	scheduler := NewScheduler(0)
	defer scheduler.Stop()
	if scheduler.delay != defaultDelay {
		t.Fatalf("expected default delay %v, got %v", defaultDelay, scheduler.delay)
	}
}
