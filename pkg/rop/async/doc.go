// Package async composes pending computations of rop.ServiceResponse[T].
//
// A Future[T] is the pending value: Go starts one on a goroutine, Resolved
// wraps a response that is already known, FromChan adapts a channel-based
// engine and Task wraps an error-returning side effect. Await never panics.
//
// Combinators:
// - BindAsync/LetAsync: continue a realized response with a pending step
// - AwaitBindAsync/AwaitLetAsync: await a pending response first
// - AwaitFmap: await, then map
// - All/Traverse: await many, or bind over many with bounded concurrency
//
// Error responses short-circuit without starting goroutines or invoking the
// continuation. Faults raised while invoking or awaiting a continuation are
// translated into error responses. A done context is reported as a cancel
// response unless core.WithCancelPolicy(ctx, core.FoldCancel) is set.
package async
