package timer

import "time"

// StopFunc cancels a scheduled countdown. It reports whether the cancel
// happened before the callback fired. Safe to call more than once.
type StopFunc func() bool

// Scheduler arms cancellable countdowns. Session controllers own the
// returned StopFunc and must invoke it on every legitimate state advance so
// a stale expiry cannot fire after the player has already moved on.
type Scheduler interface {
	Start(d time.Duration, onExpire func()) StopFunc
}

// RealScheduler implements Scheduler using time.AfterFunc
type RealScheduler struct{}

// New creates a new RealScheduler
func New() *RealScheduler {
	return &RealScheduler{}
}

// Start arms a countdown that invokes onExpire after d on its own goroutine
func (s *RealScheduler) Start(d time.Duration, onExpire func()) StopFunc {
	t := time.AfterFunc(d, onExpire)
	return t.Stop
}
