// Package loop runs UI work serially on a single goroutine, the way a
// toolkit main loop does. Anything that touches the preference or a display
// surface from another goroutine goes through Do.
package loop

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Do after Stop
var ErrStopped = errors.New("loop stopped")

type task struct {
	fn   func()
	done chan struct{}
}

// Loop executes submitted functions one at a time
type Loop struct {
	tasks    chan task
	quit     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
}

// New starts a loop with room for queue pending tasks
func New(queue int) *Loop {
	l := &Loop{
		tasks:    make(chan task, queue),
		quit:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.finished)
	for {
		select {
		case t := <-l.tasks:
			t.fn()
			close(t.done)
		case <-l.quit:
			// Drain what was already queued.
			for {
				select {
				case t := <-l.tasks:
					t.fn()
					close(t.done)
				default:
					return
				}
			}
		}
	}
}

// Do runs fn on the loop and waits for it. It returns early with the
// context error if ctx ends first; fn may still run later in that case.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	t := task{fn: fn, done: make(chan struct{})}

	select {
	case <-l.quit:
		return ErrStopped
	default:
	}

	select {
	case l.tasks <- t:
	case <-l.quit:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-t.done:
		return nil
	case <-l.finished:
		// The task may have been queued after the final drain.
		select {
		case <-t.done:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop finishes queued work and stops the loop
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.quit) })
	<-l.finished
}
