package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		checkFn  func(error) bool
		expected bool
	}{
		{
			name:     "ErrNotFound is recognized",
			err:      ErrNotFound,
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Wrapped ErrNotFound is recognized",
			err:      fmt.Errorf("load staff: %w", ErrNotFound),
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Different error is not ErrNotFound",
			err:      ErrRateLimitExceeded,
			checkFn:  IsNotFound,
			expected: false,
		},
		{
			name:     "Wrapped ValidationError is not ErrNotFound",
			err:      fmt.Errorf("bind: %w", NewValidationError("question", "is required")),
			checkFn:  IsNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.checkFn(tt.err); result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("question", "must be at most 1000 characters")
	err.Add("session_id", "must be at most 100 characters")

	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(err.Fields))
	}

	expected := "validation failed on question: must be at most 1000 characters; session_id: must be at most 100 characters"
	if err.Error() != expected {
		t.Errorf("expected error '%s', got '%s'", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected validation error to match ErrInvalidInput")
	}
}

func TestValidationErrorEmpty(t *testing.T) {
	var err ValidationError
	if err.Error() != "validation failed" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
