package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDPI, "dpi must be greater than zero, got %g", -1.0)

	if err.Code != ErrCodeInvalidDPI {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDPI)
	}

	if err.Message != "dpi must be greater than zero, got -1" {
		t.Errorf("Message = %v, want %v", err.Message, "dpi must be greater than zero, got -1")
	}

	expected := "INVALID_DPI: dpi must be greater than zero, got -1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeRenderFailed, cause, "convert a.svg")

	if err.Code != ErrCodeRenderFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRenderFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInputNotFound, "test"),
			code:     ErrCodeInputNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInputNotFound, "test"),
			code:     ErrCodeRenderFailed,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeRenderFailed, New(ErrCodeMalformedSVG, "inner"), "outer"),
			code:     ErrCodeRenderFailed,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is(%v, %v) = %v, want %v", tt.err, tt.code, got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"structured error", New(ErrCodeOutputUnwritable, "test"), ErrCodeOutputUnwritable},
		{"plain error", errors.New("plain"), ""},
		{"wrapped structured", Wrap(ErrCodeConflict, errors.New("x"), "dup"), ErrCodeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "structured error strips code",
			err:      New(ErrCodeInputNotFound, "input file not found: a.svg"),
			expected: "input file not found: a.svg",
		},
		{
			name:     "wrapped error keeps cause",
			err:      Wrap(ErrCodeRenderFailed, errors.New("boom"), "convert a.svg"),
			expected: "convert a.svg: boom",
		},
		{
			name:     "plain error passes through",
			err:      errors.New("plain"),
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}
