package codeunit

// nullUnits backs every null buffer. Borrowed, so it is never written to
// or returned to the pool.
var nullUnits = []uint16{0}

// Buffer holds a possibly non-owned NUL-terminated UTF-16 string.
//
// The zero value is not useful; construct buffers with Owned, Borrowed or
// Null. Owned buffers hold pooled storage and must be released exactly once,
// either directly via Release or by transferring ownership with Transfer and
// releasing the result. Borrowed buffers alias caller storage and Release is
// a no-op for them.
type Buffer struct {
	units    []uint16
	capacity int32
	owned    bool
}

// Owned acquires storage for length code units plus a NUL terminator and
// returns an owning buffer. The terminator slot is zeroed; the caller fills
// the remaining units before use.
func Owned(length int32) Buffer {
	units := getUnits(int(length) + 1)
	units[length] = 0
	return Buffer{units: units, capacity: length + 1, owned: true}
}

// Borrowed wraps an existing NUL-terminated code-unit sequence without
// copying. The source must outlive the returned buffer. Capacity is reported
// as 0 since the wrapped region's true size is not tracked.
func Borrowed(units []uint16) Buffer {
	if len(units) == 0 {
		return Null()
	}
	return Buffer{units: units}
}

// Null returns the canonical empty, non-owned buffer. It is the uniform
// result for failed or empty conversions.
func Null() Buffer {
	return Buffer{units: nullUnits}
}

// Transfer moves ownership out of b. The returned buffer assumes b's storage,
// capacity and ownership flag; b is reset to the null state and performs no
// release afterwards.
func (b *Buffer) Transfer() Buffer {
	out := Buffer{units: b.units, capacity: b.capacity, owned: b.owned}
	b.units = nullUnits
	b.capacity = 0
	b.owned = false
	return out
}

// Release returns owned storage to the pool and resets b to the null state.
// It is a no-op for borrowed, null and already-released buffers.
func (b *Buffer) Release() {
	if b.owned {
		putUnits(b.units)
	}
	b.units = nullUnits
	b.capacity = 0
	b.owned = false
}

// Units returns the backing code units including the NUL terminator slot.
// For owned buffers this is how contents are filled after allocation.
// Mutating a borrowed buffer's units writes through to the source.
func (b Buffer) Units() []uint16 {
	return b.units
}

// Raw returns the code units through the NUL terminator, for passing to
// APIs that expect read-only NUL-terminated UTF-16. Callers must not modify
// the returned slice; use Units to fill owned storage.
func (b Buffer) Raw() []uint16 {
	n := b.Len()
	if n < len(b.units) {
		return b.units[:n+1]
	}
	return b.units
}

// Len returns the number of code units before the NUL terminator.
func (b Buffer) Len() int {
	for i, u := range b.units {
		if u == 0 {
			return i
		}
	}
	return len(b.units)
}

// Capacity returns the allocated element count including the terminator for
// owned buffers and 0 otherwise.
func (b Buffer) Capacity() int32 {
	return b.capacity
}

// IsOwned reports whether b owns its storage.
func (b Buffer) IsOwned() bool {
	return b.owned
}

// IsNull reports whether b is a zero-length non-owned buffer.
func (b Buffer) IsNull() bool {
	return !b.owned && b.Len() == 0
}
