package query

import (
	"github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/validation"
)

// Argument checks run when an operator is called, never during iteration.

func requireFunc(name string, isNil bool) {
	if isNil {
		panic(errors.InvalidArgument(name, "should be a function"))
	}
}

func requireSequence[T any](name string, s *Sequence[T]) {
	if s == nil {
		panic(argNotSequence(name))
	}
}

func requireNonNegative(name string, n int) {
	if err := validation.NonNegative(name, n); err != nil {
		panic(err)
	}
}

// alwaysTrue is the predicate used when a caller supplies none.
func alwaysTrue[T any](T) bool { return true }

func identity[T any](v T) T { return v }

func argNotSequence(name string) error {
	return errors.InvalidArgument(name, "should be a sequence")
}

func argNotLogger() error {
	return errors.InvalidArgument("logger", "should be a logger")
}
