// Package fault defines the immutable error value carried by the error branch
// of rop.ServiceResponse.
//
// An Error has a machine-facing Code, an ordered, non-empty list of
// human-readable messages, an optional status hint for transport adapters, a
// Kind telling domain errors from translated faults and cancellations, and an
// optional cause preserved for errors.Is / errors.As.
//
// Construction:
// - New/Must: full constructor, rejects an empty message list
// - E: one-message builder with functional options
// - FromError/FromRecovered/FromValidation: translate arbitrary faults
package fault
