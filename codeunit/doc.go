// Package codeunit provides Buffer, a handle to a NUL-terminated sequence of
// UTF-16 code units whose storage is either owned or borrowed.
//
// Owned storage comes from an internal pool and must be returned by calling
// Release exactly once. Borrowed storage aliases caller memory and is never
// released; the caller guarantees the source outlives the buffer.
//
// The canonical null buffer (Null) is a shared zero-length borrowed string
// used uniformly as the empty/failure sentinel by the transcode package.
package codeunit
