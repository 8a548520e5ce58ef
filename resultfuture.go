package promise

// This file implements spec §4.5's composition rules for Future[Result[T,
// E]]. Go has no arity/type-based overload resolution, so the dispatch
// table there (plain then / on-success / on-failure / always) is exposed
// as distinct named functions instead, per design note 9's own
// recommendation. The observable semantics — not the call-site spelling —
// are what spec.md requires preserved.

// Always runs k on every outcome of f, whether success or failure,
// discarding nothing: k receives the raw Result and the returned Future
// carries the same Result onward unchanged. Use it for side effects that
// must run regardless of outcome (the C++ source's "always(k)" with no
// arguments is, in Go, simply a k that ignores its argument).
func Always[T, E any](f Future[Result[T, E]], k func(Result[T, E])) Future[Result[T, E]] {
	return Then(f, func(r Result[T, E]) Result[T, E] {
		k(r)
		return r
	})
}

// AndThen runs k on f's value if it succeeds, wrapping k's plain return
// value into a new success. A failure propagates unchanged and k never
// runs.
func AndThen[T, U, E any](f Future[Result[T, E]], k func(T) U) Future[Result[U, E]] {
	return Then(f, func(r Result[T, E]) Result[U, E] {
		return ResultAndThen(r, k)
	})
}

// AndThenResult is AndThen for a k that itself returns a Result, so the
// returned Result replaces the outcome instead of always becoming a new
// success.
func AndThenResult[T, U, E any](f Future[Result[T, E]], k func(T) Result[U, E]) Future[Result[U, E]] {
	return Then(f, func(r Result[T, E]) Result[U, E] {
		return ResultAndThenResult(r, k)
	})
}

// AndThenFuture runs k on f's value if it succeeds; k returns a Future[U]
// whose eventual value is wrapped into a new success once it resolves.
// Failure propagates unchanged without ever calling k.
func AndThenFuture[T, U, E any](f Future[Result[T, E]], k func(T) Future[U]) Future[Result[U, E]] {
	return ThenFuture(f, func(r Result[T, E]) Future[Result[U, E]] {
		v, ok := r.Value()
		if !ok {
			err, _ := r.Error()
			return Ready(Failure[U, E](err))
		}
		return Then(k(v), func(u U) Result[U, E] {
			return Success[U, E](u)
		})
	})
}

// AndThenFutureResult is AndThenFuture for a k that itself returns a
// Future[Result[U, E]]: the nested future-of-result is flattened into the
// returned Future directly, with no extra wrapping.
func AndThenFutureResult[T, U, E any](f Future[Result[T, E]], k func(T) Future[Result[U, E]]) Future[Result[U, E]] {
	return ThenFuture(f, func(r Result[T, E]) Future[Result[U, E]] {
		v, ok := r.Value()
		if !ok {
			err, _ := r.Error()
			return Ready(Failure[U, E](err))
		}
		return k(v)
	})
}

// OrElse runs k on f's error if it fails, rescuing the outcome to a new
// success. A success propagates unchanged without ever calling k.
func OrElse[T, E any](f Future[Result[T, E]], k func(E) T) Future[Result[T, E]] {
	return Then(f, func(r Result[T, E]) Result[T, E] {
		return ResultOrElse(r, k)
	})
}

// OrElseResult is OrElse for a k that itself returns a Result, letting k
// decide whether to rescue to success or remap to a different failure.
func OrElseResult[T, E any](f Future[Result[T, E]], k func(E) Result[T, E]) Future[Result[T, E]] {
	return Then(f, func(r Result[T, E]) Result[T, E] {
		return ResultOrElseResult(r, k)
	})
}

// OrElseErr remaps f's error type via k without touching a success. Unlike
// OrElse, this never rescues to success: it is a pure error-type map.
func OrElseErr[T, E, E2 any](f Future[Result[T, E]], k func(E) E2) Future[Result[T, E2]] {
	return Then(f, func(r Result[T, E]) Result[T, E2] {
		return ResultOrElseErr(r, k)
	})
}

// OrElseFuture runs k on f's error if it fails; k returns a Future[T] whose
// eventual value rescues the outcome to success once it resolves. A
// success propagates unchanged without ever calling k.
func OrElseFuture[T, E any](f Future[Result[T, E]], k func(E) Future[T]) Future[Result[T, E]] {
	return ThenFuture(f, func(r Result[T, E]) Future[Result[T, E]] {
		if v, ok := r.Value(); ok {
			return Ready(Success[T, E](v))
		}
		err, _ := r.Error()
		return Then(k(err), func(v T) Result[T, E] {
			return Success[T, E](v)
		})
	})
}

// OrElseFutureResult is OrElseFuture for a k that itself returns a
// Future[Result[T, E]], flattened into the returned Future directly.
func OrElseFutureResult[T, E any](f Future[Result[T, E]], k func(E) Future[Result[T, E]]) Future[Result[T, E]] {
	return ThenFuture(f, func(r Result[T, E]) Future[Result[T, E]] {
		if v, ok := r.Value(); ok {
			return Ready(Success[T, E](v))
		}
		err, _ := r.Error()
		return k(err)
	})
}

// Map is the plain-value special case of AndThen, named per design note 9.
func Map[T, U, E any](f Future[Result[T, E]], k func(T) U) Future[Result[U, E]] {
	return AndThen(f, k)
}

// MapErr remaps a failure's error type without rescuing it to success,
// named per design note 9.
func MapErr[T, E, E2 any](f Future[Result[T, E]], k func(E) E2) Future[Result[T, E2]] {
	return OrElseErr(f, k)
}
