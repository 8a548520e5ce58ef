package promise

import "sync"

// WhenAny returns a Future that resolves with whichever of the given
// futures resolves first. Every input future gets the same continuation
// installed; the first one to run claims a one-shot flag and sets the
// output Promise, and every later claimant is a silent no-op — exactly one
// input's value is ever observed downstream.
//
// With zero inputs, WhenAny returns a Future that never resolves (spec §9
// leaves this case implementation-defined); TestWhenAny_EmptyInputNeverResolves
// covers it.
func WhenAny[T any](futures ...Future[T]) Future[T] {
	p, f := NewPromise[T]()

	var (
		mu      sync.Mutex
		claimed bool
	)

	for _, in := range futures {
		in.state.Install(func(v T) {
			mu.Lock()
			already := claimed
			claimed = true
			mu.Unlock()
			if !already {
				p.SetValue(v)
			}
		})
	}

	return f
}

// whenAllState is the shared aggregation object behind WhenAll2/WhenAll3/
// WhenAllSlice: a mutex plus a counter of resolved inputs. The slots
// themselves live in each combinator's own output value, written under mu.
// The N-th resolution (when the counter reaches the slot count) completes
// the output Promise with the fully populated slots.
type whenAllState struct {
	mu       sync.Mutex
	resolved int
}

// Pair is the 2-tuple result of WhenAll2 — Go has no literal tuple type,
// so the heterogeneous fixed-arity when_all combinators return a small
// result struct instead (spec §9's Go-specific resolution of variadic
// templates).
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the 3-tuple result of WhenAll3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// WhenAll2 resolves once both fa and fb have resolved, with a Pair holding
// each value in its original position regardless of resolution order.
func WhenAll2[A, B any](fa Future[A], fb Future[B]) Future[Pair[A, B]] {
	p, f := NewPromise[Pair[A, B]]()
	st := &whenAllState{}
	var out Pair[A, B]

	complete := func() {
		st.mu.Lock()
		st.resolved++
		done := st.resolved == 2
		st.mu.Unlock()
		if done {
			p.SetValue(out)
		}
	}

	fa.state.Install(func(v A) {
		st.mu.Lock()
		out.First = v
		st.mu.Unlock()
		complete()
	})
	fb.state.Install(func(v B) {
		st.mu.Lock()
		out.Second = v
		st.mu.Unlock()
		complete()
	})

	return f
}

// WhenAll3 resolves once fa, fb, and fc have all resolved, with a Triple
// holding each value in its original position regardless of resolution
// order.
func WhenAll3[A, B, C any](fa Future[A], fb Future[B], fc Future[C]) Future[Triple[A, B, C]] {
	p, f := NewPromise[Triple[A, B, C]]()
	st := &whenAllState{}
	var out Triple[A, B, C]

	complete := func() {
		st.mu.Lock()
		st.resolved++
		done := st.resolved == 3
		st.mu.Unlock()
		if done {
			p.SetValue(out)
		}
	}

	fa.state.Install(func(v A) {
		st.mu.Lock()
		out.First = v
		st.mu.Unlock()
		complete()
	})
	fb.state.Install(func(v B) {
		st.mu.Lock()
		out.Second = v
		st.mu.Unlock()
		complete()
	})
	fc.state.Install(func(v C) {
		st.mu.Lock()
		out.Third = v
		st.mu.Unlock()
		complete()
	})

	return f
}

// WhenAllSlice resolves once every future in futures has resolved, with a
// slice holding each value at its original index regardless of resolution
// order. There is no short-circuit on failure — WhenAllSlice does not
// inspect Result at all, even if T happens to be one.
func WhenAllSlice[T any](futures []Future[T]) Future[[]T] {
	p, f := NewPromise[[]T]()

	n := len(futures)
	if n == 0 {
		p.SetValue(nil)
		return f
	}

	st := &whenAllState{}
	out := make([]T, n)

	for i, in := range futures {
		i := i
		in.state.Install(func(v T) {
			st.mu.Lock()
			out[i] = v
			st.resolved++
			done := st.resolved == n
			st.mu.Unlock()
			if done {
				p.SetValue(out)
			}
		})
	}

	return f
}

// whenAllSuccessState additionally tracks whether the output has already
// been completed with a failure, so that a first failure wins and later
// successes (or later failures) are ignored once it has.
type whenAllSuccessState struct {
	mu        sync.Mutex
	resolved  int
	completed bool
}

// WhenAllSuccess2 resolves with success holding a Pair of both values iff
// fa and fb both succeed. If either fails, the aggregated future resolves
// to that failure as soon as it arrives, without waiting for the other
// input.
func WhenAllSuccess2[A, B, E any](fa Future[Result[A, E]], fb Future[Result[B, E]]) Future[Result[Pair[A, B], E]] {
	p, f := NewPromise[Result[Pair[A, B], E]]()
	st := &whenAllSuccessState{}
	var out Pair[A, B]

	onSuccess := func(apply func()) {
		st.mu.Lock()
		if st.completed {
			st.mu.Unlock()
			return
		}
		apply()
		st.resolved++
		done := st.resolved == 2
		st.mu.Unlock()
		if done {
			p.SetValue(Success[Pair[A, B], E](out))
		}
	}

	onFailure := func(err E) {
		st.mu.Lock()
		already := st.completed
		st.completed = true
		st.mu.Unlock()
		if !already {
			p.SetValue(Failure[Pair[A, B], E](err))
		}
	}

	fa.state.Install(func(r Result[A, E]) {
		if v, ok := r.Value(); ok {
			onSuccess(func() { out.First = v })
			return
		}
		err, _ := r.Error()
		onFailure(err)
	})
	fb.state.Install(func(r Result[B, E]) {
		if v, ok := r.Value(); ok {
			onSuccess(func() { out.Second = v })
			return
		}
		err, _ := r.Error()
		onFailure(err)
	})

	return f
}

// WhenAllSuccessSlice resolves with success holding every value, in
// original index order, iff every future in futures succeeds. If any
// fails, the aggregated future resolves to the first-arriving failure
// without waiting for the rest.
func WhenAllSuccessSlice[T, E any](futures []Future[Result[T, E]]) Future[Result[[]T, E]] {
	p, f := NewPromise[Result[[]T, E]]()

	n := len(futures)
	if n == 0 {
		p.SetValue(Success[[]T, E](nil))
		return f
	}

	st := &whenAllSuccessState{}
	out := make([]T, n)

	for i, in := range futures {
		i := i
		in.state.Install(func(r Result[T, E]) {
			if v, ok := r.Value(); ok {
				st.mu.Lock()
				if st.completed {
					st.mu.Unlock()
					return
				}
				out[i] = v
				st.resolved++
				done := st.resolved == n
				st.mu.Unlock()
				if done {
					p.SetValue(Success[[]T, E](out))
				}
				return
			}

			err, _ := r.Error()
			st.mu.Lock()
			already := st.completed
			st.completed = true
			st.mu.Unlock()
			if !already {
				p.SetValue(Failure[[]T, E](err))
			}
		})
	}

	return f
}

// RepeatUntil repeatedly invokes action and tests each produced value with
// predicate, resolving with the first value for which predicate returns
// true. The next action only starts once the previous one's Future has
// resolved; the loop advances by installing a new continuation on each
// step's Future rather than by blocking a goroutine, so it never waits
// synchronously for an externally-resolved step.
func RepeatUntil[T any](action Action[T], predicate Predicate[T]) Future[T] {
	p, f := NewPromise[T]()

	var step func()
	step = func() {
		action().state.Install(func(v T) {
			if predicate(v) {
				p.SetValue(v)
				return
			}
			step()
		})
	}
	step()

	return f
}

// RepeatUntilSuccess repeats action until it produces a successful
// Result[T, E], resolving with that success.
func RepeatUntilSuccess[T, E any](action Action[Result[T, E]]) Future[Result[T, E]] {
	return RepeatUntil(action, func(r Result[T, E]) bool {
		return r.IsSuccess()
	})
}

// RepeatUntilFailure repeats action until it produces a failing
// Result[T, E], resolving with that failure.
func RepeatUntilFailure[T, E any](action Action[Result[T, E]]) Future[Result[T, E]] {
	return RepeatUntil(action, func(r Result[T, E]) bool {
		return r.IsFailure()
	})
}
