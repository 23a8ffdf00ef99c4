// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies tool errors so that main can map a failure
// to an exit code without parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// bad flag values, impossible flag combinations, unparseable
	// config. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, encoding failures on data the tool produced itself.
	// The caller should report the error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by the tool's failure
// paths. It wraps an inner error, preserving the full error chain for
// debugging while adding category metadata for exit-code mapping, and
// optionally carries a hint telling the user what to do about it.
//
// Use the category constructors (Validation, Internal) rather than
// constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for exit-code mapping.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional actionable suggestion, set via WithHint.
	Hint string
}

// Error returns the underlying error message, with the hint appended
// after a blank line when one is set.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint attaches an actionable suggestion to the error and returns
// the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
