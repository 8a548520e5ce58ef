// Package promise implements a single-shot, continuation-passing future
// and promise primitive: a Future[T] holds a value that will be produced
// exactly once by a Promise[T], Then/ThenFuture chain dependent
// computations onto it without polling (flattening automatically when a
// continuation itself returns a Future), Result[T, E] is a sum type for
// success/failure outcomes, and a family of combinators (WhenAny,
// WhenAll2/WhenAll3/WhenAllSlice, WhenAllSuccess2/WhenAllSuccessSlice,
// RepeatUntil) aggregate independent futures.
//
// There is no scheduler and no executor: a continuation runs synchronously
// on whichever goroutine resolves the Promise it is waiting on, or
// immediately on the calling goroutine if the Future is already resolved
// when the continuation is installed. Nothing in this package blocks a
// goroutine waiting for a value; the only synchronization is short-lived
// mutexes: one inside each Future/Promise pair's shared state, plus one
// per combinator call guarding its aggregation state.
package promise
