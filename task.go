package main

import (
	"context"
	"time"
)

// Task is the result of an operation that completes after a simulated
// network delay. The work runs to completion even if nobody waits for it.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func runTask[T any](latency time.Duration, fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		if latency > 0 {
			time.Sleep(latency)
		}
		t.val, t.err = fn()
	}()
	return t
}

// Wait blocks until the task finishes or ctx is done. Giving up on the
// wait does not stop the task.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}
