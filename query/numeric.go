package query

import (
	"cmp"

	"github.com/kbukum/querykit/errors"
)

// Number is the set of types Sum and Average accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds up every value. An empty sequence sums to zero.
func Sum[T Number](s *Sequence[T]) (T, error) {
	return SumBy(s, identity[T])
}

// SumBy adds up selector(v) for every value.
func SumBy[T any, N Number](s *Sequence[T], selector func(T) N) (N, error) {
	requireSequence("source", s)
	requireFunc("selector", selector == nil)
	var total N
	err := s.forEach(func(v T) bool {
		total += selector(v)
		return true
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Average returns the arithmetic mean. An empty sequence fails with
// EMPTY_SEQUENCE rather than dividing by zero.
func Average[T Number](s *Sequence[T]) (float64, error) {
	return AverageBy(s, identity[T])
}

// AverageBy returns the arithmetic mean of selector(v).
func AverageBy[T any, N Number](s *Sequence[T], selector func(T) N) (float64, error) {
	requireSequence("source", s)
	requireFunc("selector", selector == nil)
	var total float64
	n := 0
	err := s.forEach(func(v T) bool {
		total += float64(selector(v))
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.EmptySequence("average")
	}
	return total / float64(n), nil
}

// SumValues adds up dynamically typed values, such as decoded YAML or JSON.
// It fails with INVALID_ELEMENT at the first value that is not a Go numeric
// type; values before it have already been pulled.
func SumValues(s *Sequence[any]) (float64, error) {
	total, _, err := sumValues(s, "sum")
	return total, err
}

// AverageValues returns the mean of dynamically typed numeric values. It
// fails like SumValues, and with EMPTY_SEQUENCE when there are no values.
func AverageValues(s *Sequence[any]) (float64, error) {
	total, n, err := sumValues(s, "average")
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.EmptySequence("average")
	}
	return total / float64(n), nil
}

func sumValues(s *Sequence[any], operation string) (total float64, n int, err error) {
	requireSequence("source", s)
	var bad error
	err = s.forEach(func(v any) bool {
		f, ok := toFloat(v)
		if !ok {
			bad = errors.InvalidElement(operation, n, v)
			return false
		}
		total += f
		n++
		return true
	})
	if err == nil {
		err = bad
	}
	if err != nil {
		return 0, n, err
	}
	return total, n, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// --- Min / Max ---

// Min returns the smallest value. An empty sequence fails with EMPTY_SEQUENCE.
func Min[T cmp.Ordered](s *Sequence[T]) (T, error) {
	return s.MinFunc(DefaultCompare[T])
}

// Max returns the largest value. An empty sequence fails with EMPTY_SEQUENCE.
func Max[T cmp.Ordered](s *Sequence[T]) (T, error) {
	return s.MaxFunc(DefaultCompare[T])
}

// MinBy returns the smallest transform(v).
func MinBy[T any, K cmp.Ordered](s *Sequence[T], transform func(T) K) (K, error) {
	requireFunc("transform", transform == nil)
	return Min(Select(s, transform))
}

// MaxBy returns the largest transform(v).
func MaxBy[T any, K cmp.Ordered](s *Sequence[T], transform func(T) K) (K, error) {
	requireFunc("transform", transform == nil)
	return Max(Select(s, transform))
}

// MinFunc returns the first value that no other value compares below.
func (s *Sequence[T]) MinFunc(compare func(a, b T) int) (T, error) {
	return s.extreme("min", compare, -1)
}

// MaxFunc returns the first value that no other value compares above.
func (s *Sequence[T]) MaxFunc(compare func(a, b T) int) (T, error) {
	return s.extreme("max", compare, 1)
}

func (s *Sequence[T]) extreme(operation string, compare func(a, b T) int, sign int) (T, error) {
	requireSequence("source", s)
	requireFunc("compare", compare == nil)
	var best T
	found := false
	err := s.forEach(func(v T) bool {
		if !found || compare(v, best)*sign > 0 {
			best, found = v, true
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if !found {
		return best, errors.EmptySequence(operation)
	}
	return best, nil
}
