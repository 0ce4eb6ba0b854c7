// Package errors provides structured error types for conversion and
// memory-bridging failures.
//
// Errors carry a Phase (where in processing the failure occurred) and a Kind
// (what went wrong), so callers can match with errors.Is on category rather
// than on message text.
package errors
