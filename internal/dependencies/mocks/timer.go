package mocks

import (
	"sync"
	"time"

	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/timer"
)

// MockScheduler is a manual Scheduler for testing. Countdowns never fire on
// their own; tests trigger them explicitly with Fire.
type MockScheduler struct {
	mu     sync.Mutex
	armed  []*mockCountdown
	nextID int
}

type mockCountdown struct {
	id       int
	duration time.Duration
	onExpire func()
	stopped  bool
	fired    bool
}

// Ensure MockScheduler implements Scheduler
var _ timer.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// Start records a countdown and returns its cancel func
func (s *MockScheduler) Start(d time.Duration, onExpire func()) timer.StopFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	cd := &mockCountdown{id: s.nextID, duration: d, onExpire: onExpire}
	s.nextID++
	s.armed = append(s.armed, cd)

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if cd.fired || cd.stopped {
			return false
		}
		cd.stopped = true
		return true
	}
}

// Fire triggers the most recently armed countdown that is still pending.
// Returns false if nothing was pending.
func (s *MockScheduler) Fire() bool {
	s.mu.Lock()
	var target *mockCountdown
	for i := len(s.armed) - 1; i >= 0; i-- {
		if !s.armed[i].stopped && !s.armed[i].fired {
			target = s.armed[i]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return false
	}
	target.fired = true
	fn := target.onExpire
	s.mu.Unlock()

	// Invoke outside the lock, as time.AfterFunc would
	fn()
	return true
}

// Pending returns the number of armed countdowns that have neither fired
// nor been cancelled
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, cd := range s.armed {
		if !cd.stopped && !cd.fired {
			n++
		}
	}
	return n
}

// Started returns the total number of countdowns ever armed
func (s *MockScheduler) Started() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.armed)
}
