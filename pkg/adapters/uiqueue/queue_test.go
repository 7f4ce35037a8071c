package uiqueue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestQueue_RunPendingPreservesOrder(t *testing.T) {
	q := New()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		q.Do(func() { got = append(got, i) })
	}

	if n := q.RunPending(); n != 5 {
		t.Fatalf("expected 5 functions to run, got %d", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("out of order: %v", got)
		}
	}
	if q.Len() != 0 {
		t.Error("expected empty queue")
	}
}

func TestQueue_RunPendingRunsNestedWork(t *testing.T) {
	q := New()
	ran := false
	q.Do(func() { q.Do(func() { ran = true }) })

	if n := q.RunPending(); n != 2 {
		t.Errorf("expected 2 functions to run, got %d", n)
	}
	if !ran {
		t.Error("nested work did not run")
	}
}

func TestQueue_RunNextFromOtherGoroutine(t *testing.T) {
	q := New()
	uiGoroutine := make(chan struct{})

	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Do(func() { close(uiGoroutine) })
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := q.RunNext(ctx); err != nil {
		t.Fatalf("RunNext failed: %v", err)
	}
	select {
	case <-uiGoroutine:
	default:
		t.Error("posted function did not run")
	}
}

func TestQueue_RunStopsOnCancel(t *testing.T) {
	q := New()
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	var runErr error
	go func() {
		defer wg.Done()
		runErr = q.Run(ctx)
	}()

	cancel()
	wg.Wait()

	if !errors.Is(runErr, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", runErr)
	}
}

func TestQueue_ConcurrentDo(t *testing.T) {
	q := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Do(func() {})
		}()
	}
	wg.Wait()

	if n := q.RunPending(); n != 50 {
		t.Errorf("expected 50, got %d", n)
	}
}
