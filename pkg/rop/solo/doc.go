// Package solo contains single-value, synchronous combinators over
// rop.ServiceResponse[T]. These functions are the building blocks for
// error-aware pipelines without goroutines.
//
// Highlights:
// - Succeed/Fail: construct responses
// - Fmap/FmapEach/FmapSeq: transform data (panics in the mapper propagate)
// - Cast: element-wise conversion of slice payloads between related types
// - Bind/Try: chain fallible continuations, translating panics and errors
// - Let/FailOnError: side-effect helpers
// - Validate/AndValidate/ValidateAll: produce validation errors
// - Finally: reduce to a concrete value via data/error/cancel handlers
package solo
