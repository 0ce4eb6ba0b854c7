// Package ucbridge provides conversions between string representations used
// when bridging host text into foreign code: UTF-8 host strings, NUL-terminated
// UTF-16 code-unit buffers, UTF-32 code points and byte streams in legacy
// encodings.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	ucbridge/            Root package with core Memory and Allocator interfaces
//	├── codeunit/        Owned-or-borrowed NUL-terminated UTF-16 buffers
//	├── transcode/       Lenient conversions between string representations
//	├── guest/           Lowering/lifting strings across a linear-memory boundary
//	├── errors/          Structured error types for conversion failures
//	└── cmd/inspect/     Encoding inspector CLI
//
// # Quick Start
//
// Convert a host string to a NUL-terminated UTF-16 buffer:
//
//	buf := transcode.FromUTF8("Grüße")
//	defer buf.Release()
//	callFFI(buf.Units())
//
// Lower a string into guest linear memory:
//
//	opts := guest.Options{Memory: mem, Allocator: alloc, Encoding: guest.EncodingUTF16}
//	ptr, n, err := guest.LowerString(opts, "hello", nil)
//
// # Ownership Model
//
// codeunit.Buffer storage is either owned (acquired from an internal pool,
// returned by Release exactly once) or borrowed (aliases caller memory, never
// released). Conversion failures collapse to a canonical null buffer rather
// than an error, so call sites never branch on a separate "no result" case.
//
// # Conversion Policy
//
// Conversions are lenient by default: malformed input sequences are replaced
// with U+FFFD rather than rejected. A transcode.Converter configured with
// Strict reports structured errors instead.
package ucbridge
