package promise

// UseFuture adapts an async I/O primitive whose completion signature is
// (error_code, T) into a Future[Result[T, E]]. Pass the returned handler to
// the I/O primitive's completion callback slot; it is the library's
// counterpart of the "use-future" tag described in spec §6. isFalsy
// reports whether an E value represents "no error" (for a standard error
// type this is simply "err == nil"; callers of this adapter supply their
// own predicate because the library treats E opaquely).
//
// The returned handler is safe to call from any goroutine: it resolves the
// underlying Promise, and Promise.SetValue is itself the only
// synchronization point.
func UseFuture[T, E any](isFalsy func(E) bool) (ValueHandler[T, E], Future[Result[T, E]]) {
	p, f := NewPromise[Result[T, E]]()

	handler := func(err E, value T) {
		if isFalsy(err) {
			p.SetValue(Success[T, E](value))
		} else {
			p.SetValue(Failure[T, E](err))
		}
	}

	return handler, f
}

// UseFutureVoid is UseFuture for an I/O primitive whose completion carries
// no value, only an (error_code) callback.
func UseFutureVoid[E any](isFalsy func(E) bool) (VoidHandler[E], Future[Result[Void, E]]) {
	p, f := NewPromise[Result[Void, E]]()

	handler := func(err E) {
		if isFalsy(err) {
			p.SetValue(SuccessVoid[E]())
		} else {
			p.SetValue(Failure[Void, E](err))
		}
	}

	return handler, f
}
