package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_New(t *testing.T) {
	err := New(ErrCodeNoMatch, "nothing")
	if err.Code != ErrCodeNoMatch {
		t.Errorf("expected code %s, got %s", ErrCodeNoMatch, err.Code)
	}
	if err.Error() != "NO_MATCH: nothing" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestError_InvalidArgument(t *testing.T) {
	err := InvalidArgument("transform", "should be a function")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "`transform` should be a function") {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["argument"] != "transform" {
		t.Errorf("expected argument=transform, got %v", err.Details["argument"])
	}
	if !IsArgumentCode(err.Code) {
		t.Error("INVALID_ARGUMENT should be an argument code")
	}
}

func TestError_OutOfRange(t *testing.T) {
	err := OutOfRange("count", -1, "must not be negative")
	if err.Code != ErrCodeOutOfRange {
		t.Errorf("expected OUT_OF_RANGE, got %s", err.Code)
	}
	if err.Details["value"] != -1 {
		t.Errorf("expected value=-1, got %v", err.Details["value"])
	}
	if !strings.Contains(err.Error(), "got: -1") {
		t.Errorf("Error() should contain the value, got %q", err.Error())
	}
}

func TestError_StateCodesAreNotArgumentCodes(t *testing.T) {
	for _, err := range []*Error{
		EmptySequence("aggregate"),
		NoMatch("first"),
		MultipleMatches("single"),
		IndexOutOfRange(3, 3),
		InvalidElement("sum", 1, "x"),
	} {
		if IsArgumentCode(err.Code) {
			t.Errorf("%s should not be an argument code", err.Code)
		}
	}
}

func TestError_IndexOutOfRange(t *testing.T) {
	err := IndexOutOfRange(3, 3)
	if !strings.Contains(err.Message, "Index too large") {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["index"] != 3 || err.Details["length"] != 3 {
		t.Errorf("unexpected details %v", err.Details)
	}
}

func TestError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Internal(nil).WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestError_WithDetails_Merge(t *testing.T) {
	err := NoMatch("first").WithDetails(map[string]any{"extra": "info"})
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info in details")
	}
	if err.Details["operation"] != "first" {
		t.Error("expected existing details to be kept")
	}
	err = New(ErrCodeInternal, "x").WithDetail("k", 1)
	if err.Details["k"] != 1 {
		t.Error("expected k=1 in details")
	}
}

func TestError_Is_MatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("query failed: %w", NoMatch("last"))
	if !stderrors.Is(wrapped, New(ErrCodeNoMatch, "")) {
		t.Error("expected errors.Is to match by code")
	}
	if stderrors.Is(wrapped, New(ErrCodeEmptySequence, "")) {
		t.Error("expected errors.Is not to match a different code")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain error", stderrors.New("x"), ""},
		{"direct", MultipleMatches("single"), ErrCodeMultipleMatches},
		{"wrapped", fmt.Errorf("ctx: %w", EmptySequence("average")), ErrCodeEmptySequence},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
			if tc.want != "" && !HasCode(tc.err, tc.want) {
				t.Errorf("HasCode(%v, %s) = false", tc.err, tc.want)
			}
		})
	}
}

func TestFromPanic(t *testing.T) {
	if FromPanic("boom") != nil {
		t.Error("expected nil for a non-error panic value")
	}
	if FromPanic(stderrors.New("boom")) != nil {
		t.Error("expected nil for a foreign error")
	}
	want := OutOfRange("index", -2, "must not be negative")
	if got := FromPanic(want); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}
