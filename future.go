package promise

import "github.com/madadam/promise/internal/state"

// Future is the single-consumer handle to a value that will be produced
// exactly once by a Promise. A Future has a single operation besides
// inspection: attach a continuation via Then or ThenFuture, which returns a
// fresh Future over the continuation's result. Then and ThenFuture do not
// invalidate f; it can still be inspected afterwards.
//
// A Future is a plain value wrapping a pointer to its shared state, so
// copying it is not prevented. Calling Then or ThenFuture more than once
// against the same underlying state (for instance, against two copies of
// the same Future value) is not forbidden at compile time, but only the
// last-installed continuation runs — see internal/state.SharedState.Install.
type Future[T any] struct {
	state *state.SharedState[T]
}

// Ready constructs a Future that is already resolved with v. Equivalent to
// creating a Promise and immediately calling SetValue.
func Ready[T any](v T) Future[T] {
	p, f := NewPromise[T]()
	p.SetValue(v)
	return f
}

// TryValue returns the Future's value and true if it is already resolved,
// or the zero value and false if it is still pending. It never installs or
// consumes a continuation.
func (f Future[T]) TryValue() (T, bool) {
	return f.state.TryGet()
}

// IsReady reports whether the Future has been resolved, without blocking
// and without installing a continuation.
func (f Future[T]) IsReady() bool {
	return f.state.Ready()
}

// Then attaches a continuation that receives the Future's value and
// produces a plain value of type U. It returns a Future[U] that resolves
// once k has run.
//
// If f is already resolved, k runs synchronously on the calling goroutine
// and the returned Future is already resolved by the time Then returns. If
// f is still pending, k runs later, synchronously, on whichever goroutine
// calls SetValue on f's underlying Promise.
func Then[T, U any](f Future[T], k func(T) U) Future[U] {
	p, next := NewPromise[U]()
	f.state.Install(func(v T) {
		p.SetValue(k(v))
	})
	return next
}

// ThenFuture attaches a continuation that receives the Future's value and
// produces another Future[U]. The returned Future[U] is automatically
// flattened: it resolves with whatever value the continuation's Future
// eventually produces, not with a Future[U] itself.
func ThenFuture[T, U any](f Future[T], k func(T) Future[U]) Future[U] {
	p, next := NewPromise[U]()
	f.state.Install(func(v T) {
		p.Forward(k(v))
	})
	return next
}
