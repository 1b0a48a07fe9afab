// Package chain provides a fluent wrapper around rop.ServiceResponse
// for building Railway-Oriented chains using solo and async primitives.
//
// Key operations:
//   - Start/FromValue/FromPending: begin a chain from a response, a value or a
//     pending response
//   - Then/ThenAsync: bind to a new response via a function
//   - ThenTry: call a function (U, error) and convert error to an error response
//   - Map: transform the data (T -> U)
//   - Let/LetAsync: run side effects on data without changing the response
//   - Validate: gather failing checks into a validation error
//   - RepeatUntil/While: loop a same-type step until a condition fails
//   - Or/And: pick the first data or the first error among chains
//   - Finally: collapse the chain into a final value via handlers
package chain
