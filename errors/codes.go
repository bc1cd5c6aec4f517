package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors, raised synchronously when an operator is called.
const (
	// ErrCodeInvalidArgument indicates a missing function or sequence argument.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeOutOfRange indicates a negative count or index, or a range that overflows.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Sequence-state errors, raised while a terminal reducer runs.
const (
	// ErrCodeEmptySequence indicates the sequence had no elements and no seed or default.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeNoMatch indicates no element satisfied the predicate.
	ErrCodeNoMatch ErrorCode = "NO_MATCH"
	// ErrCodeMultipleMatches indicates more than one element satisfied the predicate.
	ErrCodeMultipleMatches ErrorCode = "MULTIPLE_MATCHES"
	// ErrCodeIndexOutOfRange indicates the sequence is shorter than the requested index.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
)

// Element errors
const (
	// ErrCodeInvalidElement indicates an element has the wrong dynamic type.
	ErrCodeInvalidElement ErrorCode = "INVALID_ELEMENT"
)

// Configuration and internal errors
const (
	// ErrCodeValidation indicates a configuration struct failed validation.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var argumentCodes = map[ErrorCode]bool{
	ErrCodeInvalidArgument: true,
	ErrCodeOutOfRange:      true,
}

// IsArgumentCode reports whether code describes a bad operator argument.
func IsArgumentCode(code ErrorCode) bool {
	return argumentCodes[code]
}
