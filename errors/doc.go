// Package errors provides structured error types for the gsplat library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes the offending header token and
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseHeader, errors.KindInvalidCount).
//		Token("-3").
//		Detail("vertex count must be a positive integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadMagic(line)
//	err := errors.SizeMismatch(expected, actual)
//
// All errors implement the standard error interface and support
// errors.Is/As; two *Error values match when Phase and Kind agree.
package errors
