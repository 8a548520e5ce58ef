// Package testutil holds small helpers shared by this module's test files,
// following the same spirit as the teacher's own internal/testutil:
// reusable assertion builders (helper.go) plus fixtures for exercising
// asynchronous behavior without reaching for a blocking Get the library
// deliberately doesn't provide.
package testutil

import (
	"bytes"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// GoroutineID returns an identifier for the calling goroutine, parsed out
// of its own stack trace header ("goroutine 123 [running]: ..."). It
// exists solely so tests can assert that a continuation ran on a
// particular goroutine — spec's testable property that continuations run
// on the resolving goroutine, never on some scheduler's own worker (this
// library has no scheduler to begin with).
func GoroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]

	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	idx := bytes.IndexByte(buf, ' ')
	if idx < 0 {
		return 0
	}

	var id uint64
	for _, c := range buf[:idx] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}

// AwaitChan blocks on ch for at most timeout, failing the test on timeout
// instead of hanging it forever. Tests use this to observe a value a
// continuation sent to a channel from whatever goroutine ran it — the
// library itself has no blocking "get" of its own, by design (spec §5:
// nothing suspends the calling goroutine).
func AwaitChan[T any](t *testing.T, ch <-chan T, timeout time.Duration) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(timeout):
		require.Fail(t, "timed out waiting for channel")
		var zero T
		return zero
	}
}
