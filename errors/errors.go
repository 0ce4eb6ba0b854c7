package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseProbe   Phase = "probe"   // destination length computation
	PhaseConvert Phase = "convert" // between code-unit representations
	PhaseDecode  Phase = "decode"  // byte stream to host string
	PhaseEncode  Phase = "encode"  // host string to byte stream
	PhaseLower   Phase = "lower"   // host string into guest memory
	PhaseLift    Phase = "lift"    // guest memory into host string
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidUTF8      Kind = "invalid_utf8"
	KindInvalidCodePoint Kind = "invalid_code_point"
	KindInvalidData      Kind = "invalid_data"
	KindUnsupported      Kind = "unsupported"
	KindAllocation       Kind = "allocation"
	KindOutOfBounds      Kind = "out_of_bounds"
	KindNilMemory        Kind = "nil_memory"
	KindNilAllocator     Kind = "nil_allocator"
	KindOverflow         Kind = "overflow"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// New creates an error with the given phase and kind
func New(phase Phase, kind Kind) *Error {
	return &Error{Phase: phase, Kind: kind}
}

// WithDetail sets the human-readable detail message
func (e *Error) WithDetail(msg string, args ...any) *Error {
	if len(args) > 0 {
		e.Detail = fmt.Sprintf(msg, args...)
	} else {
		e.Detail = msg
	}
	return e
}

// WithCause sets the underlying error
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Convenience constructors for common error patterns

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidCodePoint creates an error for a value outside the Unicode scalar range
func InvalidCodePoint(phase Phase, r rune) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidCodePoint,
		Detail: fmt.Sprintf("invalid code point U+%04X", r),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// OutOfBounds creates an out of bounds memory access error
func OutOfBounds(phase Phase, ptr, length uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("memory access out of bounds: ptr=%d len=%d", ptr, length),
	}
}

// NilMemory creates an error for operations attempted without memory
func NilMemory(phase Phase) *Error {
	return &Error{Phase: phase, Kind: KindNilMemory, Detail: "nil memory"}
}

// NilAllocator creates an error for allocations attempted without an allocator
func NilAllocator(phase Phase) *Error {
	return &Error{Phase: phase, Kind: KindNilAllocator, Detail: "nil allocator"}
}

// Overflow creates an overflow error
func Overflow(phase Phase, what string, value uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("%s too large: %d", what, value),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
