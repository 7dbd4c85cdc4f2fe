package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseHeader,
				Kind:   KindInvalidCount,
				Token:  "-3",
				Detail: "vertex count must be a positive integer",
			},
			contains: []string{"[header]", "invalid_count", `"-3"`, "positive integer"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindUnsupported,
			},
			contains: []string{"[decode]", "unsupported"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseHeader,
				Kind:   KindInvalidCount,
				Detail: "vertex count must be a positive integer",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[header]", "invalid_count", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InvalidCount("x", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not walk the cause chain")
	}
}

func TestError_Is(t *testing.T) {
	err := BadMagic("plx")

	if !errors.Is(err, &Error{Phase: PhaseHeader, Kind: KindBadMagic}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindBadMagic}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseHeader, Kind: KindSizeMismatch}) {
		t.Error("Is should not match different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseHeader, KindInvalidCount).
		Token("abc").
		Cause(cause).
		Detail("expected %s, got %s", "integer", "word").
		Build()

	if err.Phase != PhaseHeader {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseHeader)
	}
	if err.Kind != KindInvalidCount {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidCount)
	}
	if err.Token != "abc" {
		t.Errorf("Token = %q, want %q", err.Token, "abc")
	}
	if err.Detail != "expected integer, got word" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}

func TestSizeMismatch(t *testing.T) {
	err := SizeMismatch(56, 40)
	msg := err.Error()
	for _, s := range []string{"56", "40", "size_mismatch"} {
		if !strings.Contains(msg, s) {
			t.Errorf("error message %q does not contain %q", msg, s)
		}
	}
}
