package promise

import "sync/atomic"

// PackagedTask wraps a callable and owns a Promise[R]. Calling Run invokes
// the callable and resolves the owned Promise with its return value;
// GetFuture returns the Future for that Promise and may be called before
// or after Run.
//
// PackagedTask is one-shot. Spec §4.4 documents a second Run as undefined
// behavior; this implementation panics rather than silently doing nothing,
// since unlike a second Promise.SetValue there is no defined "harmless"
// observable outcome here — the task's side effects (the callable itself)
// would either run twice or silently not run at all. The guard is a single
// atomic CompareAndSwap, so concurrent callers race safely: exactly one
// proceeds to call fn, and every other caller panics immediately instead
// of blocking or running fn a second time.
//
// Arguments are bound via closure, Go's idiomatic equivalent of a variadic
// Args... template parameter: construct the task with
// NewPackagedTask(func() R { return doWork(arg1, arg2) }).
type PackagedTask[R any] struct {
	fn      func() R
	promise Promise[R]
	future  Future[R]
	ran     atomic.Bool
}

// NewPackagedTask wraps fn in a PackagedTask with a fresh, pending Promise.
func NewPackagedTask[R any](fn func() R) *PackagedTask[R] {
	p, f := NewPromise[R]()
	return &PackagedTask[R]{fn: fn, promise: p, future: f}
}

// GetFuture returns the Future that will carry fn's return value.
func (t *PackagedTask[R]) GetFuture() Future[R] {
	return t.future
}

// Ran reports whether Run has already been called for this task.
func (t *PackagedTask[R]) Ran() bool {
	return t.ran.Load()
}

// Run invokes the wrapped callable and resolves the task's Promise with
// its result. Calling Run a second time panics.
func (t *PackagedTask[R]) Run() {
	if !t.ran.CompareAndSwap(false, true) {
		panic("promise: PackagedTask.Run called more than once")
	}
	t.promise.SetValue(t.fn())
}
