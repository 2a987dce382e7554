package media

import "context"

// Operation is one remote call bound to its arguments.
type Operation[T any] func(ctx context.Context) (T, error)

// Future is the eventual outcome of an Operation started with Go.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts op in its own goroutine and returns a Future for its outcome.
func Go[T any](ctx context.Context, op Operation[T]) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(future.done)

		future.value, future.err = op(ctx)
	}()

	return future
}

// Done is closed once the operation has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the operation finishes or ctx ends.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// Result blocks until the operation finishes and returns its outcome.
func (f *Future[T]) Result() (T, error) {
	<-f.done

	return f.value, f.err
}

// Callback runs op in the background and calls cb exactly once with its
// outcome.
func Callback[T any](ctx context.Context, op Operation[T], cb func(T, error)) {
	future := Go(ctx, op)

	go func() {
		<-future.done
		cb(future.value, future.err)
	}()
}
