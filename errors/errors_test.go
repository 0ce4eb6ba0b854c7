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
				Phase:  PhaseConvert,
				Kind:   KindInvalidUTF8,
				Detail: "malformed sequence",
			},
			contains: []string{"[convert]", "invalid_utf8", "malformed sequence"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLift,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[lift]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLower,
				Kind:   KindAllocation,
				Detail: "guest memory full",
				Cause:  errors.New("realloc trapped"),
			},
			contains: []string{"[lower]", "allocation", "guest memory full", "caused by", "realloc trapped"},
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
	err := Wrap(PhaseDecode, KindInvalidData, cause, "decode failed")

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not match wrapped cause")
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidUTF8(PhaseConvert, []byte{0xff, 0xfe})

	if !errors.Is(err, &Error{Phase: PhaseConvert, Kind: KindInvalidUTF8}) {
		t.Error("Is should match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseLift, Kind: KindInvalidUTF8}) {
		t.Error("Is should not match a different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseConvert, Kind: KindInvalidData}) {
		t.Error("Is should not match a different kind")
	}
}

func TestInvalidUTF8TruncatesPreview(t *testing.T) {
	data := make([]byte, 100)
	err := InvalidUTF8(PhaseConvert, data)
	// 32 bytes hex-encoded plus message prefix
	if len(err.Detail) > len("invalid UTF-8 sequence: ")+64 {
		t.Errorf("detail too long: %q", err.Detail)
	}
}

func TestWithDetailFormats(t *testing.T) {
	err := New(PhaseProbe, KindOverflow).WithDetail("length %d exceeds %d", 10, 5)
	if !strings.Contains(err.Detail, "length 10 exceeds 5") {
		t.Errorf("detail = %q", err.Detail)
	}
}
