// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "wraps underlying error message",
			err:  &ExitError{Code: 1, Err: errors.New("walk failed")},
			want: "walk failed",
		},
		{
			name: "bare code without underlying error",
			err:  &ExitError{Code: 3},
			want: "exit status 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("boom")
	wrapped := fmt.Errorf("context: %w", &ExitError{Code: 1, Err: underlying})

	if !errors.Is(wrapped, underlying) {
		t.Error("errors.Is should find the underlying error through ExitError")
	}

	var exitErr *ExitError
	if !errors.As(wrapped, &exitErr) {
		t.Fatal("errors.As should find the ExitError")
	}
	if got := int(exitErr.Code); got != 1 {
		t.Errorf("Code = %d, want 1", got)
	}

	bare := &ExitError{Code: 2}
	if bare.Unwrap() != nil {
		t.Error("Unwrap() on bare ExitError should be nil")
	}
}
