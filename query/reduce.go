package query

import (
	"github.com/kbukum/querykit/errors"
)

// Terminal reducers consume the sequence once per call. None of them cache:
// calling one twice iterates the source twice.

// ToSlice drains the sequence into a new slice. An empty sequence yields an
// empty, non-nil slice.
func (s *Sequence[T]) ToSlice() ([]T, error) {
	requireSequence("source", s)
	result := []T{}
	if s.size != nil {
		result = make([]T, 0, s.size())
	}
	err := s.forEach(func(v T) bool {
		result = append(result, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ForEach calls fn for every value.
func (s *Sequence[T]) ForEach(fn func(T)) error {
	requireSequence("source", s)
	requireFunc("fn", fn == nil)
	return s.forEach(func(v T) bool {
		fn(v)
		return true
	})
}

// Count returns the number of values. Containers wrapped directly with
// FromSlice, FromMap or FromSet answer without iterating.
func (s *Sequence[T]) Count() (int, error) {
	requireSequence("source", s)
	if s.size != nil {
		return s.size(), nil
	}
	return s.count(alwaysTrue[T])
}

// CountWhere returns the number of values that satisfy matches. It always
// iterates the whole sequence.
func (s *Sequence[T]) CountWhere(matches func(T) bool) (int, error) {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	return s.count(matches)
}

func (s *Sequence[T]) count(matches func(T) bool) (int, error) {
	n := 0
	err := s.forEach(func(v T) bool {
		if matches(v) {
			n++
		}
		return true
	})
	return n, err
}

// --- Quantifiers ---

// Contains reports whether any value equals item.
func Contains[T comparable](s *Sequence[T], item T) (bool, error) {
	return s.AnyWhere(func(v T) bool { return v == item })
}

// All reports whether every value satisfies matches. It stops at the first
// value that does not.
func (s *Sequence[T]) All(matches func(T) bool) (bool, error) {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	result := true
	err := s.forEach(func(v T) bool {
		if !matches(v) {
			result = false
		}
		return result
	})
	return result, err
}

// Any reports whether the sequence has at least one value. It pulls at most
// one value.
func (s *Sequence[T]) Any() (bool, error) {
	return s.AnyWhere(alwaysTrue[T])
}

// AnyWhere reports whether any value satisfies matches. It stops at the
// first value that does.
func (s *Sequence[T]) AnyWhere(matches func(T) bool) (bool, error) {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	found := false
	err := s.forEach(func(v T) bool {
		found = matches(v)
		return !found
	})
	return found, err
}

// --- Aggregation ---

// seed is an explicitly provided initial accumulator. provided distinguishes
// "no seed" from a seed that happens to be a zero value.
type seed[A any] struct {
	value    A
	provided bool
}

// Aggregate folds the sequence with step, using the first value as the
// initial accumulator. An empty sequence fails with EMPTY_SEQUENCE.
func (s *Sequence[T]) Aggregate(step func(acc, item T) T) (T, error) {
	requireSequence("source", s)
	requireFunc("step", step == nil)
	return aggregate(s, seed[T]{}, step, identity[T])
}

// AggregateSeed folds the sequence with step starting from initial. An
// empty sequence returns initial.
func AggregateSeed[T, A any](s *Sequence[T], initial A, step func(acc A, item T) A) (A, error) {
	return AggregateFinish(s, initial, step, identity[A])
}

// AggregateFinish folds the sequence with step starting from initial and
// returns finish applied to the final accumulator, including when the
// sequence is empty.
func AggregateFinish[T, A, R any](s *Sequence[T], initial A, step func(acc A, item T) A, finish func(A) R) (R, error) {
	requireSequence("source", s)
	requireFunc("step", step == nil)
	requireFunc("finish", finish == nil)
	acc, err := aggregate(s, seed[A]{value: initial, provided: true}, step, nil)
	if err != nil {
		var zero R
		return zero, err
	}
	return finish(acc), nil
}

// aggregate folds s into an accumulator. Without a seed, adopt turns the
// first value into the accumulator.
func aggregate[T, A any](s *Sequence[T], init seed[A], step func(A, T) A, adopt func(T) A) (A, error) {
	acc, started := init.value, init.provided
	err := s.forEach(func(v T) bool {
		if !started {
			acc = adopt(v)
			started = true
			return true
		}
		acc = step(acc, v)
		return true
	})
	if err != nil {
		var zero A
		return zero, err
	}
	if !started {
		var zero A
		return zero, errors.New(errors.ErrCodeEmptySequence, "The sequence is empty and no seed has been specified").
			WithDetail("operation", "aggregate")
	}
	return acc, nil
}

// --- Element access ---

// First returns the first value, or NO_MATCH when the sequence is empty.
func (s *Sequence[T]) First() (T, error) {
	return s.FirstWhere(alwaysTrue[T])
}

// FirstWhere returns the first value that satisfies matches.
func (s *Sequence[T]) FirstWhere(matches func(T) bool) (T, error) {
	v, found, err := s.first(matches)
	if err == nil && !found {
		err = errors.NoMatch("first")
	}
	return v, err
}

// FirstOrDefault returns the first value, or defaultValue when the sequence
// is empty.
func (s *Sequence[T]) FirstOrDefault(defaultValue T) (T, error) {
	return s.FirstOrDefaultWhere(alwaysTrue[T], defaultValue)
}

// FirstOrDefaultWhere returns the first value that satisfies matches, or
// defaultValue when none does.
func (s *Sequence[T]) FirstOrDefaultWhere(matches func(T) bool, defaultValue T) (T, error) {
	v, found, err := s.first(matches)
	if err == nil && !found {
		return defaultValue, nil
	}
	return v, err
}

func (s *Sequence[T]) first(matches func(T) bool) (result T, found bool, err error) {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	err = s.forEach(func(v T) bool {
		if matches(v) {
			result, found = v, true
		}
		return !found
	})
	return result, found, err
}

// Last returns the last value, or NO_MATCH when the sequence is empty.
func (s *Sequence[T]) Last() (T, error) {
	return s.LastWhere(alwaysTrue[T])
}

// LastWhere returns the last value that satisfies matches. It scans the
// whole sequence.
func (s *Sequence[T]) LastWhere(matches func(T) bool) (T, error) {
	v, found, err := s.last(matches)
	if err == nil && !found {
		err = errors.NoMatch("last")
	}
	return v, err
}

// LastOrDefault returns the last value, or defaultValue when the sequence is
// empty.
func (s *Sequence[T]) LastOrDefault(defaultValue T) (T, error) {
	return s.LastOrDefaultWhere(alwaysTrue[T], defaultValue)
}

// LastOrDefaultWhere returns the last value that satisfies matches, or
// defaultValue when none does.
func (s *Sequence[T]) LastOrDefaultWhere(matches func(T) bool, defaultValue T) (T, error) {
	v, found, err := s.last(matches)
	if err == nil && !found {
		return defaultValue, nil
	}
	return v, err
}

func (s *Sequence[T]) last(matches func(T) bool) (result T, found bool, err error) {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	err = s.forEach(func(v T) bool {
		if matches(v) {
			result, found = v, true
		}
		return true
	})
	return result, found, err
}

// Single returns the only value. It fails with NO_MATCH on an empty
// sequence and MULTIPLE_MATCHES as soon as a second value is seen.
func (s *Sequence[T]) Single() (T, error) {
	return s.SingleWhere(alwaysTrue[T])
}

// SingleWhere returns the only value that satisfies matches.
func (s *Sequence[T]) SingleWhere(matches func(T) bool) (T, error) {
	v, found, err := s.single(matches)
	if err == nil && !found {
		err = errors.NoMatch("single")
	}
	return v, err
}

// SingleOrDefault returns the only value, or defaultValue when the sequence
// is empty. More than one value still fails.
func (s *Sequence[T]) SingleOrDefault(defaultValue T) (T, error) {
	return s.SingleOrDefaultWhere(alwaysTrue[T], defaultValue)
}

// SingleOrDefaultWhere returns the only value that satisfies matches, or
// defaultValue when none does. More than one match still fails.
func (s *Sequence[T]) SingleOrDefaultWhere(matches func(T) bool, defaultValue T) (T, error) {
	v, found, err := s.single(matches)
	if err == nil && !found {
		return defaultValue, nil
	}
	return v, err
}

func (s *Sequence[T]) single(matches func(T) bool) (result T, found bool, err error) {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	var duplicate bool
	err = s.forEach(func(v T) bool {
		if !matches(v) {
			return true
		}
		if found {
			duplicate = true
			return false
		}
		result, found = v, true
		return true
	})
	if err == nil && duplicate {
		var zero T
		return zero, true, errors.MultipleMatches("single")
	}
	return result, found, err
}

// ElementAt returns the value at index. It fails with INDEX_OUT_OF_RANGE
// when the sequence is shorter.
func (s *Sequence[T]) ElementAt(index int) (T, error) {
	v, length, found, err := s.elementAt(index)
	if err == nil && !found {
		err = errors.IndexOutOfRange(index, length)
	}
	return v, err
}

// ElementAtOrDefault returns the value at index, or defaultValue when the
// sequence is shorter.
func (s *Sequence[T]) ElementAtOrDefault(index int, defaultValue T) (T, error) {
	v, _, found, err := s.elementAt(index)
	if err == nil && !found {
		return defaultValue, nil
	}
	return v, err
}

func (s *Sequence[T]) elementAt(index int) (result T, length int, found bool, err error) {
	requireSequence("source", s)
	requireNonNegative("index", index)
	err = s.forEach(func(v T) bool {
		if length == index {
			result, found = v, true
			return false
		}
		length++
		return true
	})
	return result, length, found, err
}
