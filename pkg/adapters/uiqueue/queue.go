// Package uiqueue provides a ports.Dispatcher for hosts that own a single UI
// goroutine: work posted with Do from any goroutine runs, in order, on whichever
// goroutine drives the queue with Run, RunNext or RunPending.
package uiqueue

import (
	"context"
	"sync"

	"github.com/user/trimmonitor/pkg/ports"
)

// Queue is an unbounded FIFO of functions to run on the UI goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	notify  chan struct{}
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

// Do enqueues fn. It never blocks and is safe for concurrent use.
func (q *Queue) Do(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Len returns the number of queued functions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// RunPending runs everything queued so far, including work queued by the
// functions it runs, and returns how many functions ran.
func (q *Queue) RunPending() int {
	n := 0
	for {
		fn, ok := q.pop()
		if !ok {
			return n
		}
		fn()
		n++
	}
}

// RunNext blocks until one function is available, runs it and returns.
func (q *Queue) RunNext(ctx context.Context) error {
	for {
		if fn, ok := q.pop(); ok {
			fn()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.notify:
		}
	}
}

// Run drives the queue until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	for {
		if err := q.RunNext(ctx); err != nil {
			return err
		}
	}
}

func (q *Queue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, false
	}
	fn := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return fn, true
}

var _ ports.Dispatcher = (*Queue)(nil)
