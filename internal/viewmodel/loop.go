package viewmodel

import (
	"context"
	"sync"
)

// Loop runs work off the UI goroutine and hands the follow-up back to it.
// The UI drains continuations by waiting on Ready and calling RunPending.
type Loop struct {
	ctx context.Context

	mu      sync.Mutex
	pending []func()
	ready   chan struct{}

	inflight sync.WaitGroup
}

// NewLoop creates a loop whose background work runs with ctx
func NewLoop(ctx context.Context) *Loop {
	return &Loop{
		ctx:   ctx,
		ready: make(chan struct{}, 1),
	}
}

// Go runs work on a new goroutine. When it returns, then is queued for the
// UI goroutine with the work's error. then may be nil.
func (l *Loop) Go(work func(ctx context.Context) error, then func(err error)) {
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()
		err := work(l.ctx)
		if then != nil {
			l.post(func() { then(err) })
		}
	}()
}

func (l *Loop) post(fn func()) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// Ready receives a value whenever continuations have been queued
func (l *Loop) Ready() <-chan struct{} {
	return l.ready
}

// RunPending runs every queued continuation on the calling goroutine and
// returns how many ran
func (l *Loop) RunPending() int {
	l.mu.Lock()
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// Wait blocks until all background work has finished. Continuations that
// were queued are left for RunPending.
func (l *Loop) Wait() {
	l.inflight.Wait()
}

// Drain waits for background work and then runs what it queued. Meant for
// shutdown and tests, where the caller is the UI goroutine.
func (l *Loop) Drain() {
	for {
		l.Wait()
		if l.RunPending() == 0 {
			return
		}
	}
}
