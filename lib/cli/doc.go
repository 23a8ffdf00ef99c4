// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the error and exit-code conventions shared by
// the qur binary's failure paths.
//
// Commands return errors; main reports them exactly once. [ToolError]
// carries an [ErrorCategory] so main can map a failure to the right
// exit code without parsing message text, and an optional hint that
// tells the user what to do about it. [ExitError] signals a bare
// non-zero exit for outcomes that already produced their own output.
//
// Exit codes follow the convention used across Bureau tooling:
//
//	0  success (including --help and --version)
//	1  runtime failure (I/O, encoding, terminal errors)
//	2  invalid usage (bad flag values, impossible combinations)
package cli
