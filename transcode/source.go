package transcode

import (
	"unsafe"

	"github.com/glotkit/ucbridge/codeunit"
)

// Form identifies a source string representation.
type Form uint8

const (
	FormNative Form = iota // the host's native representation; UTF-8 in Go
	FormUTF8
	FormUTF16
	FormUTF32
)

func (f Form) String() string {
	switch f {
	case FormNative:
		return "native"
	case FormUTF8:
		return "utf-8"
	case FormUTF16:
		return "utf-16"
	case FormUTF32:
		return "utf-32"
	default:
		return "unknown"
	}
}

// Source carries a string in one of a closed set of representations,
// dispatched by explicit tag. Exactly one payload field is set, matching
// the form.
type Source struct {
	str   string
	units []uint16
	runes []rune
	form  Form
}

// UTF8 wraps a UTF-8 string.
func UTF8(s string) Source { return Source{form: FormUTF8, str: s} }

// UTF8Bytes wraps a UTF-8 byte sequence without copying. The bytes must not
// be modified while the source is in use.
func UTF8Bytes(b []byte) Source { return Source{form: FormUTF8, str: bytesToString(b)} }

// UTF16 wraps a UTF-16 code-unit sequence.
func UTF16(us []uint16) Source { return Source{form: FormUTF16, units: us} }

// UTF32 wraps a UTF-32 code-point sequence.
func UTF32(rs []rune) Source { return Source{form: FormUTF32, runes: rs} }

// Native wraps a host string.
func Native(s string) Source { return Source{form: FormNative, str: s} }

// Form returns the source's representation tag.
func (s Source) Form() Form { return s.form }

// From converts any supported source to a code-unit buffer using lenient
// conversion. All failures collapse to the canonical null buffer.
func From(src Source) codeunit.Buffer {
	switch src.form {
	case FormUTF8, FormNative:
		return FromUTF8(src.str)
	case FormUTF16:
		return FromUTF16(src.units)
	case FormUTF32:
		return FromUTF32(src.runes)
	default:
		return codeunit.Null()
	}
}

// bytesToString returns a string aliasing b's storage without copying.
// Taken from strings.Builder.String(); the bytes must never be modified
// while the string is reachable.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
