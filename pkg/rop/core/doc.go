// Package core contains plumbing shared by the async and stream packages:
// context-carried options (cancellation policy, worker limits, draining of
// remaining inputs) and channel helpers. It does not define combinators.
package core
