package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedInput, "missing column %q", "id")

	if err.Code != ErrCodeMalformedInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedInput)
	}

	if err.Message != `missing column "id"` {
		t.Errorf("Message = %v, want %v", err.Message, `missing column "id"`)
	}

	expected := `MALFORMED_INPUT: missing column "id"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := Wrap(ErrCodeFileNotFound, cause, "open %s", "data.csv")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "FILE_NOT_FOUND: open data.csv: no such file or directory"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeMalformedInput, "test"), ErrCodeMalformedInput, true},
		{"different code", New(ErrCodeInvalidInput, "test"), ErrCodeMalformedInput, false},
		{"wrapped by fmt", fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "x")), ErrCodeFileNotFound, true},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "bad")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeMalformedInput, "no header")); got != "no header" {
		t.Errorf("UserMessage() = %q, want %q", got, "no header")
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}

func TestHelpers(t *testing.T) {
	if !IsMalformedInput(fmt.Errorf("build: %w", New(ErrCodeMalformedInput, "x"))) {
		t.Error("IsMalformedInput() = false, want true")
	}
	if !IsNotFound(New(ErrCodeFileNotFound, "x")) {
		t.Error("IsNotFound(FILE_NOT_FOUND) = false, want true")
	}
	if !IsNotFound(New(ErrCodeNotFound, "x")) {
		t.Error("IsNotFound(NOT_FOUND) = false, want true")
	}
	if IsNotFound(New(ErrCodeInternal, "x")) {
		t.Error("IsNotFound(INTERNAL_ERROR) = true, want false")
	}
}
