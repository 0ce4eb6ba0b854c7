package guest

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/glotkit/ucbridge"
	"github.com/glotkit/ucbridge/errors"
	"github.com/glotkit/ucbridge/transcode"
)

// Encoding selects the guest-side string representation.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF16
	EncodingLatin1
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingUTF16:
		return "utf-16"
	case EncodingLatin1:
		return "latin-1"
	default:
		return "unknown"
	}
}

// Options holds the memory, allocator and encoding for lower/lift operations.
type Options struct {
	Memory    ucbridge.Memory
	Allocator ucbridge.Allocator
	Encoding  Encoding
}

// Lifting a missing terminator must not scan guest memory forever.
const maxCStringUnits = 1 << 20

// LowerString writes s into guest memory in the configured encoding with a
// NUL terminator appended. It returns the guest pointer and the string's
// length in code units, excluding the terminator. When allocs is non-nil the
// allocation is recorded there; otherwise the caller frees it using the
// returned pointer and the terminated size.
func LowerString(opts Options, s string, allocs *AllocationList) (ptr, length uint32, err error) {
	if opts.Memory == nil {
		return 0, 0, errors.NilMemory(errors.PhaseLower)
	}
	if opts.Allocator == nil {
		return 0, 0, errors.NilAllocator(errors.PhaseLower)
	}

	data, units, align, err := encodeGuest(opts.Encoding, s)
	if err != nil {
		return 0, 0, err
	}
	if uint64(len(data)) > 0xFFFFFFFF {
		return 0, 0, errors.Overflow(errors.PhaseLower, "lowered string", uint64(len(data)))
	}

	size := uint32(len(data))
	ptr, err = opts.Allocator.Alloc(size, align)
	if err != nil {
		return 0, 0, errors.AllocationFailed(errors.PhaseLower, size, align).WithCause(err)
	}
	if err := opts.Memory.Write(ptr, data); err != nil {
		opts.Allocator.Free(ptr, size, align)
		return 0, 0, errors.Wrap(errors.PhaseLower, errors.KindOutOfBounds, err, "write lowered string")
	}
	if allocs != nil {
		allocs.Add(ptr, size, align)
	}

	Logger().Debug("lowered string",
		zap.Uint32("ptr", ptr),
		zap.Uint32("units", units),
		zap.String("encoding", opts.Encoding.String()))

	return ptr, units, nil
}

// encodeGuest renders s as terminated guest bytes and reports the code-unit
// count and required alignment.
func encodeGuest(enc Encoding, s string) (data []byte, units uint32, align uint32, err error) {
	switch enc {
	case EncodingUTF8:
		b := make([]byte, 0, len(s)+1)
		b = append(b, s...)
		b = append(b, 0)
		return b, uint32(len(s)), 1, nil

	case EncodingUTF16:
		buf := transcode.FromUTF8(s)
		defer buf.Release()
		n := buf.Len()
		us := buf.Units()
		b := make([]byte, (n+1)*2)
		for i := 0; i <= n; i++ {
			binary.LittleEndian.PutUint16(b[i*2:], us[i])
		}
		return b, uint32(n), 2, nil

	case EncodingLatin1:
		b, err := transcode.Encode(s, transcode.BytesLatin1)
		if err != nil {
			return nil, 0, 0, err
		}
		n := len(b)
		b = append(b, 0)
		return b, uint32(n), 1, nil

	default:
		return nil, 0, 0, errors.Unsupported(errors.PhaseLower, "encoding "+enc.String())
	}
}

// LiftString reads a string of known length (in code units, excluding any
// terminator) from guest memory and decodes it to a host string.
func LiftString(opts Options, ptr, length uint32) (string, error) {
	if opts.Memory == nil {
		return "", errors.NilMemory(errors.PhaseLift)
	}

	switch opts.Encoding {
	case EncodingUTF8:
		data, err := opts.Memory.Read(ptr, length)
		if err != nil {
			return "", errors.Wrap(errors.PhaseLift, errors.KindOutOfBounds, err, "read guest string")
		}
		return string(data), nil

	case EncodingUTF16:
		if length > 0x7FFFFFFF {
			return "", errors.Overflow(errors.PhaseLift, "lifted string", uint64(length))
		}
		data, err := opts.Memory.Read(ptr, length*2)
		if err != nil {
			return "", errors.Wrap(errors.PhaseLift, errors.KindOutOfBounds, err, "read guest string")
		}
		units := make([]uint16, length)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(data[i*2:])
		}
		return transcode.UTF16ToString(units), nil

	case EncodingLatin1:
		data, err := opts.Memory.Read(ptr, length)
		if err != nil {
			return "", errors.Wrap(errors.PhaseLift, errors.KindOutOfBounds, err, "read guest string")
		}
		return transcode.Decode(data, transcode.BytesLatin1)

	default:
		return "", errors.Unsupported(errors.PhaseLift, "encoding "+opts.Encoding.String())
	}
}

// LiftCString reads a NUL-terminated string from guest memory, scanning for
// the terminator in the configured encoding's unit width.
func LiftCString(opts Options, ptr uint32) (string, error) {
	if opts.Memory == nil {
		return "", errors.NilMemory(errors.PhaseLift)
	}

	width := uint32(1)
	if opts.Encoding == EncodingUTF16 {
		width = 2
	}

	var length uint32
	for ; length < maxCStringUnits; length++ {
		data, err := opts.Memory.Read(ptr+length*width, width)
		if err != nil {
			return "", errors.Wrap(errors.PhaseLift, errors.KindOutOfBounds, err, "scan for terminator")
		}
		if width == 1 {
			if data[0] == 0 {
				break
			}
		} else if binary.LittleEndian.Uint16(data) == 0 {
			break
		}
	}
	if length == maxCStringUnits {
		return "", errors.New(errors.PhaseLift, errors.KindInvalidData).
			WithDetail("no terminator within %d units", maxCStringUnits)
	}

	return LiftString(opts, ptr, length)
}
