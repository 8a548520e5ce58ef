package promise

import "github.com/madadam/promise/internal/state"

// Promise is the single-producer handle that resolves a Future[T]'s value.
// A Promise is a plain value wrapping a pointer to its shared state, so
// copying it is not prevented: every copy resolves the same Future, and only
// the first SetValue across all copies takes effect.
type Promise[T any] struct {
	state *state.SharedState[T]
}

// NewPromise returns a pending Promise together with the Future derived
// from it. This is the usual way to start a producer/consumer pair:
//
//	p, f := promise.NewPromise[int]()
//	go func() {
//	    p.SetValue(computeSomething())
//	}()
//	return f
func NewPromise[T any]() (Promise[T], Future[T]) {
	s := state.New[T]()
	return Promise[T]{state: s}, Future[T]{state: s}
}

// GetFuture returns the Future associated with this Promise. It may be
// called more than once; every call returns a handle onto the same
// underlying state.
func (p Promise[T]) GetFuture() Future[T] {
	return Future[T]{state: p.state}
}

// SetValue resolves the Promise with v, running any continuation installed
// on its Future. If the Promise has already been resolved, SetValue is a
// silent no-op — the state and any previously-run continuation are
// untouched.
func (p Promise[T]) SetValue(v T) {
	p.state.SetValue(v)
}

// Forward makes this Promise resolve with whatever value other eventually
// produces. If other is already resolved, this Promise resolves
// immediately, synchronously, on the calling goroutine. Otherwise this
// Promise resolves on whichever goroutine resolves other.
//
// This is the mechanism behind automatic flattening: a continuation that
// returns a Future[T] hands it to Forward instead of SetValue, so the
// chained Future only becomes ready once the returned Future does.
func (p Promise[T]) Forward(other Future[T]) {
	other.state.Install(func(v T) {
		p.SetValue(v)
	})
}
