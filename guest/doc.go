// Package guest lowers host strings into foreign linear memory and lifts
// them back out, for talking to embedded engines that expect C-style
// NUL-terminated strings in a declared encoding.
//
// Memory and allocation go through the narrow ucbridge.Memory and
// ucbridge.Allocator interfaces; WrapMemory and WrapAllocator adapt a wazero
// module's exports to them.
//
// Lowered strings are always NUL-terminated in guest memory. Reported lengths
// count code units (bytes for UTF-8 and Latin-1, 16-bit units for UTF-16) and
// exclude the terminator.
package guest
