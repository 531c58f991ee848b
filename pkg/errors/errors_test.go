package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnquotedValue, "value for key %q must be quoted", "title")

	if err.Code != ErrCodeUnquotedValue {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUnquotedValue)
	}
	if err.Message != `value for key "title" must be quoted` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause should be nil, got %v", err.Cause)
	}
}

func TestErrorString(t *testing.T) {
	err := New(ErrCodeEmptyInput, "input must contain at least one example")
	want := "EMPTY_INPUT: input must contain at least one example"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := fmt.Errorf("underlying")
	wrapped := Wrap(ErrCodeFileNotFound, cause, "read %s", "examples.txt")
	want = "FILE_NOT_FOUND: read examples.txt: underlying"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Wrap(ErrCodeInternal, cause, "render failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeMissingDimension, "missing width dimension")

	if !Is(err, ErrCodeMissingDimension) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeUnbalancedParens) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeMissingDimension) {
		t.Error("Is should not match a plain error")
	}

	// Wrapped with fmt.Errorf, the code must still be discoverable.
	wrapped := fmt.Errorf("parse: %w", err)
	if !Is(wrapped, ErrCodeMissingDimension) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	err := New(ErrCodeNestedParens, "extra parentheses within dimensions block")
	if got := GetCode(err); got != ErrCodeNestedParens {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNestedParens)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeUnknownElementKey, "unsupported element key \"Slider\"")
	if got := UserMessage(err); got != "unsupported element key \"Slider\"" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
