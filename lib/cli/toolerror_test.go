// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("message length must be positive, got -3")
	if err.Error() != "message length must be positive, got -3" {
		t.Errorf("Error() = %q, want %q", err.Error(), "message length must be positive, got -3")
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := Validation("message too long for a single-part UR").
		WithHint("Pass -m to split the message into multiple parts.")

	want := "message too long for a single-part UR\n\nPass -m to split the message into multiple parts."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Validation("bad input")
	chained := original.WithHint("fix it")
	if original != chained {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_HintSurvivesErrorsAs(t *testing.T) {
	inner := Validation("bad fragment length").WithHint("use -f with a value between 1 and 1465")
	wrapped := fmt.Errorf("flag validation failed: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Hint != "use -f with a value between 1 and 1465" {
		t.Errorf("Hint = %q after unwrap, want %q", toolErr.Hint, "use -f with a value between 1 and 1465")
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"validation", Validation("bad"), 2},
		{"wrapped validation", fmt.Errorf("setup: %w", Validation("bad")), 2},
		{"internal", Internal("bug"), 1},
		{"plain error", errors.New("boom"), 1},
		{"exit error", &ExitError{Code: 3}, 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ExitCodeFor(test.err); got != test.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", test.err, got, test.want)
			}
		})
	}
}
