package promise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWhenAny_FirstResolvedWins is spec scenario S5: when_any delivers the
// value from the first-resolved input, and exactly one input's value is
// observed downstream.
func TestWhenAny_FirstResolvedWins(t *testing.T) {
	p1, f1 := NewPromise[int]()
	p2, f2 := NewPromise[int]()

	var calls int
	var got int
	Then(WhenAny(f1, f2), func(v int) int {
		calls++
		got = v
		return v
	})

	p1.SetValue(1000)
	p2.SetValue(2000)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1000, got)
}

func TestWhenAny_EmptyInputNeverResolves(t *testing.T) {
	f := WhenAny[int]()
	_, ok := f.TryValue()
	assert.False(t, ok)
}

func TestWhenAll2_DeliversValuesInPositionOrder(t *testing.T) {
	p1, f1 := NewPromise[string]()
	p2, f2 := NewPromise[int]()

	out := WhenAll2(f1, f2)

	// Resolve out of order: second input first.
	p2.SetValue(99)
	_, ok := out.TryValue()
	assert.False(t, ok)

	p1.SetValue("hello")

	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.Equal(t, "hello", v.First)
	assert.Equal(t, 99, v.Second)
}

func TestWhenAll3_DeliversValuesInPositionOrder(t *testing.T) {
	out := WhenAll3(Ready(1), Ready("two"), Ready(3.0))
	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.Equal(t, 1, v.First)
	assert.Equal(t, "two", v.Second)
	assert.Equal(t, 3.0, v.Third)
}

// TestWhenAllSlice_DeliversValuesInPositionOrder is spec invariant 7:
// when_all delivers a tuple whose i-th component equals the value fi
// resolved to, in position order regardless of resolution order.
func TestWhenAllSlice_DeliversValuesInPositionOrder(t *testing.T) {
	p0, f0 := NewPromise[int]()
	p1, f1 := NewPromise[int]()
	p2, f2 := NewPromise[int]()

	out := WhenAllSlice([]Future[int]{f0, f1, f2})

	p2.SetValue(2)
	p0.SetValue(0)
	_, ok := out.TryValue()
	assert.False(t, ok)

	p1.SetValue(1)

	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, v)
}

func TestWhenAllSlice_EmptyInputResolvesImmediately(t *testing.T) {
	out := WhenAllSlice[int](nil)
	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.Empty(t, v)
}

// TestWhenAllSuccess2_FirstFailureWinsWithoutWaiting is spec scenario S6:
// the aggregated future resolves to the first failure without waiting for
// the other input.
func TestWhenAllSuccess2_FirstFailureWinsWithoutWaiting(t *testing.T) {
	p1, f1 := NewPromise[Result[int, sentinelErr]]()
	p2, f2 := NewPromise[Result[int, sentinelErr]]()

	out := WhenAllSuccess2[int, int, sentinelErr](f1, f2)

	p1.SetValue(Failure[int, sentinelErr]("e1"))

	v, ok := out.TryValue()
	assert.True(t, ok, "must resolve without waiting for p2")
	assert.True(t, v.IsFailure())
	err, _ := v.Error()
	assert.Equal(t, sentinelErr("e1"), err)

	// A later success on p2 must not overwrite the already-completed
	// failure.
	p2.SetValue(Success[int, sentinelErr](2))
	v2, _ := out.TryValue()
	err2, _ := v2.Error()
	assert.Equal(t, sentinelErr("e1"), err2)
}

func TestWhenAllSuccess2_AllSuccessesDeliverTuple(t *testing.T) {
	out := WhenAllSuccess2[int, string, sentinelErr](
		ReadySuccess[int, sentinelErr](1),
		ReadySuccess[string, sentinelErr]("two"),
	)
	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.True(t, v.IsSuccess())
	got, _ := v.Value()
	assert.Equal(t, 1, got.First)
	assert.Equal(t, "two", got.Second)
}

// TestWhenAllSuccessSlice_FailureShortCircuits is spec invariant 8:
// when_all_success delivers success with the value tuple iff all inputs
// succeed, otherwise the error of the first-resolved failure.
func TestWhenAllSuccessSlice_FailureShortCircuits(t *testing.T) {
	p0, f0 := NewPromise[Result[int, sentinelErr]]()
	p1, f1 := NewPromise[Result[int, sentinelErr]]()

	out := WhenAllSuccessSlice([]Future[Result[int, sentinelErr]]{f0, f1})

	p1.SetValue(Failure[int, sentinelErr]("boom"))

	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.True(t, v.IsFailure())

	p0.SetValue(Success[int, sentinelErr](1))
	v2, _ := out.TryValue()
	err2, _ := v2.Error()
	assert.Equal(t, sentinelErr("boom"), err2)
}

func TestWhenAllSuccessSlice_AllSuccess(t *testing.T) {
	out := WhenAllSuccessSlice([]Future[Result[int, sentinelErr]]{
		ReadySuccess[int, sentinelErr](1),
		ReadySuccess[int, sentinelErr](2),
		ReadySuccess[int, sentinelErr](3),
	})
	v, ok := out.TryValue()
	assert.True(t, ok)
	got, _ := v.Value()
	assert.Equal(t, []int{1, 2, 3}, got)
}

// TestRepeatUntil_CountingToEleven is spec scenario S7: action increments a
// shared counter and returns a ready future; predicate is v > 10. The final
// value is 11, and action is called 11 times.
func TestRepeatUntil_CountingToEleven(t *testing.T) {
	var counter int
	var calls int

	action := func() Future[int] {
		calls++
		counter++
		return Ready(counter)
	}

	out := RepeatUntil(action, func(v int) bool { return v > 10 })

	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.Equal(t, 11, v)
	assert.Equal(t, 11, calls)
}

func TestRepeatUntilSuccess_StopsOnFirstSuccess(t *testing.T) {
	var calls int
	action := func() Future[Result[int, sentinelErr]] {
		calls++
		if calls < 3 {
			return ReadyFailure[int, sentinelErr]("not yet")
		}
		return ReadySuccess[int, sentinelErr](calls)
	}

	out := RepeatUntilSuccess(action)
	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.True(t, v.IsSuccess())
	got, _ := v.Value()
	assert.Equal(t, 3, got)
	assert.Equal(t, 3, calls)
}

func TestRepeatUntilFailure_StopsOnFirstFailure(t *testing.T) {
	var calls int
	action := func() Future[Result[int, sentinelErr]] {
		calls++
		if calls < 2 {
			return ReadySuccess[int, sentinelErr](calls)
		}
		return ReadyFailure[int, sentinelErr]("stop")
	}

	out := RepeatUntilFailure(action)
	v, ok := out.TryValue()
	assert.True(t, ok)
	assert.True(t, v.IsFailure())
	assert.Equal(t, 2, calls)
}

// TestRepeatUntil_ExternallyResolvedSteps exercises the non-ready path:
// each step's future resolves later, when the test resolves its promise
// from outside the combinator, rather than being ready immediately.
func TestRepeatUntil_ExternallyResolvedSteps(t *testing.T) {
	var promises []Promise[int]

	makeStep := func() Future[int] {
		p, f := NewPromise[int]()
		promises = append(promises, p)
		return f
	}

	done := make(chan int, 1)
	out := RepeatUntil(makeStep, func(v int) bool { return v == 3 })
	Then(out, func(v int) int {
		done <- v
		return v
	})

	// Resolve steps one at a time from outside the combinator. Each
	// SetValue synchronously drives the next step's action, so promises
	// grows by one entry per iteration before the next index is read.
	for i := 1; i <= 3; i++ {
		require.Len(t, promises, i)
		promises[i-1].SetValue(i)
	}

	got := <-done
	assert.Equal(t, 3, got)
}
