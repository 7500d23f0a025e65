package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := New(ErrCodeInvalidRing, "unknown ring: %s", "zodiac")
	if got := err.Error(); !strings.Contains(got, "INVALID_RING") || !strings.Contains(got, "zodiac") {
		t.Errorf("Error() = %q, want code and ring name", got)
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidManifest, cause, "load wheel.toml")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestIs_MatchesCode(t *testing.T) {
	err := New(ErrCodeInvalidGeometry, "inner >= outer")

	if !Is(err, ErrCodeInvalidGeometry) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidGeometry) {
		t.Error("Is should not match plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidRatio, "bad ratio")); got != ErrCodeInvalidRatio {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidRatio)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidGate, "gate 65 out of range")
	if got := UserMessage(err); got != "gate 65 out of range" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
