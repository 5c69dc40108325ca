// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "load job spec",
			},
			expected: "failed to load job spec",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load job spec",
				Resource:  "./job.toml",
			},
			expected: "failed to load job spec: ./job.toml",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "resolve container platform",
				Cause:     errors.New("unknown container platform: Podman"),
			},
			expected: "failed to resolve container platform: unknown container platform: Podman",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load job spec",
				Resource:  "./job.toml",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load job spec: ./job.toml: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	err := NewErrorContext().
		WithOperation("validate container platform").
		WithResource("Docker").
		WithSuggestion("Set 'image' in your job spec").
		Wrap(errors.New("no image specified")).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "failed to validate container platform") {
		t.Errorf("Format(false) missing operation: %q", plain)
	}
	if !strings.Contains(plain, "• Set 'image' in your job spec") {
		t.Errorf("Format(false) missing suggestion: %q", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("Format(false) should not include the error chain: %q", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapWithOperation(cause, "render launch command")

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause")
	}
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}

func TestErrorContext_RequiresOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}
