// Package stream runs combinators over channels of rop.ServiceResponse with
// a fixed number of workers per stage.
//
// Common usage:
//   - Run: bind a pending continuation over an input channel
//   - Turnout: run any Engine with custom cancellation handlers
//   - Validate/Bind/Map/Let/Try/Observe/Async: lift solo and async operations
//     into engines
//   - Finally: map every response to a value at the end of the pipeline
//   - DrainHandlers/CancelRemaining*: decide what happens to inputs left
//     behind by a cancellation
package stream
