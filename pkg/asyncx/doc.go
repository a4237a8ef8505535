// Package asyncx provides the single-assignment async value primitive the
// pipeline is built on: an explicit Promise/Future pair plus a two-source
// Join combinator.
//
// # Promise and Future
//
// A [Promise] is an explicit state container: pending until the producer
// calls [Promise.Complete] or [Promise.Fail], completed (success or failure)
// forever after. The transition happens at most once; later attempts report
// false and change nothing. Consumers hold the [Future] view and either
// block with [Future.Await], bound the wait with [Future.AwaitTimeout], or
// register a callback with [Future.OnComplete]. Every callback — whether
// registered before or after completion — is invoked exactly once with the
// final outcome.
//
//	p := asyncx.NewPromise[int]()
//	go func() { p.Complete(compute()) }()
//
//	n, err := p.Future().Await()
//
// [Run] covers the common case of producing the value on a fresh goroutine:
//
//	fut := asyncx.Run(func() ([]string, error) {
//	    return source.ReadLines(ctx)
//	})
//
// # Join
//
// [Join] rendezvouses on two independently progressing Futures and fires its
// combination step exactly once, only when both are present:
//
//	joined := asyncx.Join(lines, adjustment, func(ls []string, n int) *asyncx.Future[int] {
//	    return asyncx.Run(func() (int, error) { return apply(ls, n) })
//	})
//
// Either input failing fails the join without running the combination. When
// both inputs fail, the first failure to arrive wins.
//
// # Timeouts
//
// [Future.AwaitTimeout] turns an exceeded bound into ErrAwaitTimeout. The
// producer is not cancelled — it runs to completion or failure — the caller
// merely stops waiting.
//
// The package relies solely on the standard library's sync primitives.
package asyncx
