package async

import (
	"context"
	"sync"
)

// Future is the pending result of one catalog call. It resolves exactly once.
type Future[T any] struct {
	done chan struct{}

	mu       sync.Mutex
	value    T
	err      error
	handlers []func(T, error)
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve stores the result and runs the registered handlers on the
// calling goroutine, which is always a pool worker.
func (f *Future[T]) resolve(value T, err error) {
	f.mu.Lock()
	f.value, f.err = value, err
	handlers := f.handlers
	f.handlers = nil
	close(f.done)
	f.mu.Unlock()

	for _, h := range handlers {
		h(value, err)
	}
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is done. A cancelled ctx
// only stops the wait; the call itself keeps running.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then registers a completion handler that runs exactly once, never on the
// caller's goroutine. Handlers registered before the result arrives run on
// the worker that produced it; a handler registered afterwards runs on a new
// goroutine.
func (f *Future[T]) Then(handler func(T, error)) {
	f.mu.Lock()
	select {
	case <-f.done:
		value, err := f.value, f.err
		f.mu.Unlock()
		go handler(value, err)
	default:
		f.handlers = append(f.handlers, handler)
		f.mu.Unlock()
	}
}
