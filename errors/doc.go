// Package errors provides the structured error type used across querykit.
//
// Every failure raised by the query engine carries a machine-readable
// ErrorCode so callers can branch on the failure class without matching
// message text:
//
//   - INVALID_ARGUMENT and OUT_OF_RANGE describe bad operator arguments. The
//     query package panics with these at the call site.
//   - EMPTY_SEQUENCE, NO_MATCH, MULTIPLE_MATCHES and INDEX_OUT_OF_RANGE describe
//     sequence-state violations found while a terminal reducer runs.
//   - INVALID_ELEMENT reports an element of the wrong dynamic type.
//
// Use HasCode or CodeOf to inspect an error chain.
package errors
