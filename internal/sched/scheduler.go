// Package sched runs periodic actions on a single cooperative goroutine.
//
// Every scheduled callback executes run-to-completion on the goroutine that
// called Run; there is no preemption and no parallel mutation of whatever
// state the callbacks share. Schedule and Cancel are safe to call both from
// other goroutines and from inside a running callback (the resize path
// re-registers the bar tick with a new period).
package sched

import (
	"context"
	"sync"
	"time"
)

// Token identifies a scheduled action for cancellation.
type Token int

type entry struct {
	token  Token
	period time.Duration
	next   time.Time
	fn     func()
}

// Scheduler drives registered periodic actions from one goroutine.
type Scheduler struct {
	mu      sync.Mutex
	entries []*entry
	nextTok Token

	wake     chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{
		wake:   make(chan struct{}, 1),
		stopCh: make(chan struct{}),
	}
}

// Schedule registers fn to run every period, first firing one period from
// now. Returns a token for Cancel.
func (s *Scheduler) Schedule(period time.Duration, fn func()) Token {
	s.mu.Lock()
	s.nextTok++
	e := &entry{
		token:  s.nextTok,
		period: period,
		next:   time.Now().Add(period),
		fn:     fn,
	}
	s.entries = append(s.entries, e)
	tok := e.token
	s.mu.Unlock()
	s.poke()
	return tok
}

// Cancel removes a scheduled action. Unknown tokens are ignored.
func (s *Scheduler) Cancel(tok Token) {
	s.mu.Lock()
	for i, e := range s.entries {
		if e.token == tok {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.poke()
}

// Stop makes Run return. Idempotent.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// poke wakes the run loop so it re-evaluates the schedule.
func (s *Scheduler) poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run executes due actions until ctx is done or Stop is called. Actions due
// at the same instant fire in registration order.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		s.runDue()

		wait := s.nextWait()
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.stopCh:
			timer.Stop()
			return
		case <-s.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

func (s *Scheduler) runDue() {
	s.mu.Lock()
	now := time.Now()
	var due []*entry
	for _, e := range s.entries {
		if !e.next.After(now) {
			due = append(due, e)
		}
	}
	s.mu.Unlock()

	for _, e := range due {
		// An earlier callback in this batch may have cancelled this one.
		if !s.registered(e.token) {
			continue
		}
		e.fn()
		s.mu.Lock()
		e.next = time.Now().Add(e.period)
		s.mu.Unlock()
	}
}

func (s *Scheduler) registered(tok Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.token == tok {
			return true
		}
	}
	return false
}

// nextWait returns the time until the soonest pending action, clamped to
// keep an empty scheduler from spinning.
func (s *Scheduler) nextWait() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	wait := time.Hour
	now := time.Now()
	for _, e := range s.entries {
		if d := e.next.Sub(now); d < wait {
			wait = d
		}
	}
	if wait < 0 {
		wait = 0
	}
	return wait
}
