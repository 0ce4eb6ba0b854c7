package transcode

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/glotkit/ucbridge/codeunit"
)

const (
	replacementChar = '�' // Unicode replacement character

	// 0xd800-0xdc00 encodes the high 10 bits of a pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	// the value is those 20 bits plus 0x10000.
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000

	surrSelf = 0x10000 // first code point needing a surrogate pair
)

// utf16Len returns the number of UTF-16 code units the lenient conversion of
// s produces, counting each malformed byte as one replacement unit.
func utf16Len(s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r >= surrSelf {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// sanitize maps values outside the Unicode scalar range to U+FFFD.
func sanitize(r rune) rune {
	if r < 0 || r > unicode.MaxRune || (r >= surr1 && r < surr3) {
		return replacementChar
	}
	return r
}

func putUnit(units []uint16, w int, r rune) int {
	if r < surrSelf {
		units[w] = uint16(r)
		return w + 1
	}
	hi, lo := utf16.EncodeRune(r)
	units[w] = uint16(hi)
	units[w+1] = uint16(lo)
	return w + 2
}

// FromUTF8 converts a UTF-8 string to an owned NUL-terminated code-unit
// buffer. Conversion is lenient: malformed sequences become U+FFFD. Empty
// input yields the canonical null buffer, never an owned zero-length
// allocation.
func FromUTF8(s string) codeunit.Buffer {
	n := utf16Len(s)
	if n == 0 {
		return codeunit.Null()
	}
	buf := codeunit.Owned(int32(n))
	units := buf.Units()
	w := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		w = putUnit(units, w, r)
	}
	if w != n {
		buf.Release()
		return codeunit.Null()
	}
	units[w] = 0
	return buf
}

// FromUTF32 converts a UTF-32 code-point sequence to an owned NUL-terminated
// code-unit buffer, replacing invalid scalar values with U+FFFD.
func FromUTF32(rs []rune) codeunit.Buffer {
	n := 0
	for _, r := range rs {
		if sanitize(r) >= surrSelf {
			n += 2
		} else {
			n++
		}
	}
	if n == 0 {
		return codeunit.Null()
	}
	buf := codeunit.Owned(int32(n))
	units := buf.Units()
	w := 0
	for _, r := range rs {
		w = putUnit(units, w, sanitize(r))
	}
	if w != n {
		buf.Release()
		return codeunit.Null()
	}
	units[w] = 0
	return buf
}

// FromUTF16 wraps a UTF-16 code-unit sequence. NUL-terminated input is
// aliased without allocation or copy and the result is only valid for the
// source's lifetime; unterminated input is copied into owned storage with a
// terminator added.
func FromUTF16(us []uint16) codeunit.Buffer {
	if len(us) == 0 {
		return codeunit.Null()
	}
	if us[len(us)-1] == 0 {
		return codeunit.Borrowed(us)
	}
	buf := codeunit.Owned(int32(len(us)))
	copy(buf.Units(), us)
	return buf
}

// UTF16ToString returns the UTF-8 string for the UTF-16 sequence s, stopping
// at the first NUL. Unpaired surrogates decode to U+FFFD.
func UTF16ToString(s []uint16) string {
	for i, v := range s {
		if v == 0 {
			s = s[:i]
			break
		}
	}
	buf := make([]byte, 0, len(s)*2) // allow 2 bytes for most runes
	for i := 0; i < len(s); i++ {
		var r rune
		switch v := s[i]; {
		case surr1 <= v && v < surr2 && i+1 < len(s) &&
			surr2 <= s[i+1] && s[i+1] < surr3:
			// valid surrogate pair
			r = utf16.DecodeRune(rune(v), rune(s[i+1]))
			i++
		case surr1 <= v && v < surr3:
			// unpaired surrogate
			r = replacementChar
		default:
			r = rune(v)
		}
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf)
}

// ToUTF8 converts a buffer back to a UTF-8 string.
func ToUTF8(b codeunit.Buffer) string {
	return UTF16ToString(b.Units())
}

// ToUTF32 returns the code points of b up to the terminator, with unpaired
// surrogates replaced by U+FFFD.
func ToUTF32(b codeunit.Buffer) []rune {
	return utf16.Decode(b.Units()[:b.Len()])
}
