package transcode

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/glotkit/ucbridge/errors"
)

// ByteEncoding identifies an external byte-stream encoding, e.g. for catalog
// files or clipboard payloads produced outside the host.
type ByteEncoding uint8

const (
	BytesUTF8 ByteEncoding = iota
	BytesUTF16LE
	BytesUTF16BE
	BytesUTF16 // UTF-16 honoring a byte-order mark, little-endian when absent
	BytesLatin1
)

func (e ByteEncoding) String() string {
	switch e {
	case BytesUTF8:
		return "utf-8"
	case BytesUTF16LE:
		return "utf-16le"
	case BytesUTF16BE:
		return "utf-16be"
	case BytesUTF16:
		return "utf-16"
	case BytesLatin1:
		return "latin-1"
	default:
		return "unknown"
	}
}

func codec(enc ByteEncoding, phase errors.Phase) (encoding.Encoding, error) {
	switch enc {
	case BytesUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case BytesUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case BytesUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case BytesLatin1:
		return charmap.ISO8859_1, nil
	default:
		return nil, errors.Unsupported(phase, "byte encoding "+enc.String())
	}
}

// Decode converts an external byte stream to a host UTF-8 string.
func Decode(data []byte, enc ByteEncoding) (string, error) {
	if enc == BytesUTF8 {
		if !utf8.Valid(data) {
			return "", errors.InvalidUTF8(errors.PhaseDecode, data)
		}
		return string(data), nil
	}
	e, err := codec(enc, errors.PhaseDecode)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(e.NewDecoder(), data)
	if err != nil {
		return "", errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "decode "+enc.String())
	}
	return string(out), nil
}

// Encode converts a host UTF-8 string to an external byte stream. Runes the
// target encoding cannot represent are reported as errors, not substituted.
func Encode(s string, enc ByteEncoding) ([]byte, error) {
	if enc == BytesUTF8 {
		if !utf8.ValidString(s) {
			return nil, errors.InvalidUTF8(errors.PhaseEncode, []byte(s))
		}
		return []byte(s), nil
	}
	e, err := codec(enc, errors.PhaseEncode)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(e.NewEncoder(), []byte(s))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "encode "+enc.String())
	}
	return out, nil
}
