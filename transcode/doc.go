// Package transcode converts between the string representations the library
// bridges: UTF-8 host strings, UTF-16 code units, UTF-32 code points and
// external byte streams in legacy encodings.
//
// # Conversion Flow
//
// Producing a NUL-terminated code-unit buffer is a two-step probe-then-convert
// operation:
//
//  1. Probe the required UTF-16 length without allocating.
//  2. Acquire an owned buffer of that length and convert into it.
//
// Zero-length input and conversion failure both collapse to codeunit.Null();
// partially-filled buffers are never returned.
//
// UTF-16 input is the width-equal case: the result aliases the source storage
// with no allocation or copy, and is only valid for the source's lifetime.
//
// # Lenient vs Strict
//
// Package-level producers are lenient: malformed sequences become U+FFFD and
// no errors are returned. A Converter with Strict set reports structured
// errors from the errors package instead.
package transcode
