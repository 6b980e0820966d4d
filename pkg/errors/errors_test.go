package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGrid, "grid must have at least one row, got %d", 0)

	if err.Code != ErrCodeInvalidGrid {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidGrid)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	if got, want := err.Error(), "INVALID_GRID: grid must have at least one row, got 0"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapChain(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeEncode, cause, "failed to write out.png")

	if err.Code != ErrCodeEncode {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEncode)
	}
	if got, want := err.Error(), "ENCODE_ERROR: failed to write out.png: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want the original cause", errors.Unwrap(err))
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrCodeDisplayUnavailable, New(ErrCodeInvalidGrid, "inner"), "outer")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{name: "matching code", err: New(ErrCodeInvalidGrid, "bad"), code: ErrCodeInvalidGrid, want: true},
		{name: "different code", err: New(ErrCodeInvalidGrid, "bad"), code: ErrCodeDisplayUnavailable, want: false},
		{name: "outer code of a chain", err: wrapped, code: ErrCodeDisplayUnavailable, want: true},
		{name: "plain stdlib error", err: errors.New("plain"), code: ErrCodeInvalidGrid, want: false},
		{name: "nil error", err: nil, code: ErrCodeInvalidGrid, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "coded error", err: New(ErrCodeInvalidCell, "bad"), want: ErrCodeInvalidCell},
		{name: "plain stdlib error", err: errors.New("plain"), want: ""},
		{name: "nil error", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "strips the code prefix", err: New(ErrCodeInvalidInput, "friendly message"), want: "friendly message"},
		{name: "plain error passes through", err: errors.New("plain error"), want: "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
