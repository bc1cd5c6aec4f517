package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified querykit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error carrying the same code, so errors.Is works against
// values built with New.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Argument errors ---

// InvalidArgument creates an Error for an argument that breaks its contract,
// such as a nil function where one is required.
func InvalidArgument(argument, reason string) *Error {
	return &Error{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("`%s` %s", argument, reason),
		Details: map[string]any{"argument": argument},
	}
}

// OutOfRange creates an Error for a numeric argument outside its valid range.
func OutOfRange(argument string, value any, reason string) *Error {
	return &Error{
		Code: ErrCodeOutOfRange, Message: fmt.Sprintf("`%s` %s (got: %v)", argument, reason, value),
		Details: map[string]any{"argument": argument, "value": value},
	}
}

// --- Sequence-state errors ---

// EmptySequence creates an Error for a reducer that needs at least one element.
func EmptySequence(operation string) *Error {
	return &Error{
		Code: ErrCodeEmptySequence, Message: "The sequence is empty",
		Details: map[string]any{"operation": operation},
	}
}

// NoMatch creates an Error for a lookup where no element satisfied the predicate.
func NoMatch(operation string) *Error {
	return &Error{
		Code: ErrCodeNoMatch, Message: "No matching element found",
		Details: map[string]any{"operation": operation},
	}
}

// MultipleMatches creates an Error for a lookup that requires exactly one match.
func MultipleMatches(operation string) *Error {
	return &Error{
		Code: ErrCodeMultipleMatches, Message: "The sequence contains more than one matching element",
		Details: map[string]any{"operation": operation},
	}
}

// IndexOutOfRange creates an Error for an index at or beyond the sequence length.
func IndexOutOfRange(index, length int) *Error {
	return &Error{
		Code: ErrCodeIndexOutOfRange, Message: fmt.Sprintf("Index too large: %d (sequence length: %d)", index, length),
		Details: map[string]any{"index": index, "length": length},
	}
}

// InvalidElement creates an Error for an element of an unexpected dynamic type.
func InvalidElement(operation string, index int, value any) *Error {
	return &Error{
		Code: ErrCodeInvalidElement, Message: fmt.Sprintf("Element %d is not numeric: %T", index, value),
		Details: map[string]any{"operation": operation, "index": index},
	}
}

// --- Configuration and internal errors ---

// Validation creates an Error for a configuration validation failure.
func Validation(message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message}
}

// Internal creates an Error wrapping an unexpected failure.
func Internal(cause error) *Error {
	return &Error{
		Code: ErrCodeInternal, Message: "An unexpected error occurred",
		Cause: cause,
	}
}

// --- Inspection ---

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err's chain contains an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// FromPanic converts a recovered panic value into an *Error. It returns nil
// when the value is not an error raised by querykit.
func FromPanic(r any) *Error {
	err, ok := r.(error)
	if !ok {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return nil
}
