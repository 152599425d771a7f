// Package errs provides standardized error types for the transport service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() and Unwrap() for formatting and classification
//
// Two kinds matter to callers: ObjectNotFoundError is the distinct
// "does not exist" kind surfaced when a document load misses, and the
// remaining value errors represent validation rejections that block the
// triggering operation.
package errs
