// Package state holds the shared cell jointly owned by a Promise and the
// Future(s) derived from it.
//
// A SharedState is a three-state machine: pending, pending-with-continuation,
// and resolved. Every transition is guarded by a single mutex; a
// continuation taken out of the slot is always invoked after the lock is
// released, never under it, so that chained sets (a continuation that
// itself resolves another SharedState) cannot deadlock.
package state

import "sync"

// SharedState is the synchronized cell behind a Promise[T]/Future[T] pair.
// Its zero value is a valid, pending state.
type SharedState[T any] struct {
	mu    sync.Mutex
	ready bool
	value T
	cont  func(T)
}

// New returns a pending SharedState.
func New[T any]() *SharedState[T] {
	return &SharedState[T]{}
}

// Install registers k to run with the eventual value. If the state is
// already resolved, k runs immediately, synchronously, on the calling
// goroutine, and is never stored. Otherwise k is stored in the
// continuation slot, overwriting whatever was stored there before —
// installing a second continuation on the same state replaces the first.
func (s *SharedState[T]) Install(k func(T)) {
	s.mu.Lock()
	if s.ready {
		v := s.value
		s.mu.Unlock()
		k(v)
		return
	}
	s.cont = k
	s.mu.Unlock()
}

// SetValue resolves the state with v. If a continuation is waiting, it is
// invoked with v after the lock is released, on the calling goroutine —
// the goroutine that called SetValue is the one that runs the continuation.
// Calling SetValue on an already-resolved state is a silent no-op: the
// stored value and any already-consumed continuation are left untouched.
func (s *SharedState[T]) SetValue(v T) {
	s.mu.Lock()
	if s.ready {
		s.mu.Unlock()
		return
	}
	s.ready = true
	s.value = v
	k := s.cont
	s.cont = nil
	s.mu.Unlock()

	if k != nil {
		k(v)
	}
}

// TryGet returns the resolved value and true, or the zero value and false
// if the state is still pending. It never installs or removes a
// continuation.
func (s *SharedState[T]) TryGet() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.ready
}

// Ready reports whether the state has been resolved.
func (s *SharedState[T]) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}
