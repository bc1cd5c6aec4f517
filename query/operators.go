package query

import (
	"github.com/kbukum/querykit/errors"
)

// Select transforms each value using transform.
func Select[T, U any](s *Sequence[T], transform func(T) U) *Sequence[U] {
	requireFunc("transform", transform == nil)
	return SelectIndexed(s, func(v T, _ int) U { return transform(v) })
}

// SelectIndexed transforms each value using transform, which also receives
// the zero-based position of the value in s.
func SelectIndexed[T, U any](s *Sequence[T], transform func(T, int) U) *Sequence[U] {
	requireSequence("source", s)
	requireFunc("transform", transform == nil)
	return derive(s, func(src Iterator[T]) Iterator[U] {
		return &selectIter[T, U]{source: src, fn: transform}
	})
}

// Where keeps only values that satisfy matches.
func (s *Sequence[T]) Where(matches func(T) bool) *Sequence[T] {
	requireFunc("matches", matches == nil)
	return s.WhereIndexed(func(v T, _ int) bool { return matches(v) })
}

// WhereIndexed keeps only values that satisfy matches. The index passed to
// matches is the position in s, not in the filtered output.
func (s *Sequence[T]) WhereIndexed(matches func(T, int) bool) *Sequence[T] {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &whereIter[T]{source: src, fn: matches}
	})
}

// Concat yields every value of s, then every value of other. other is not
// touched until s is exhausted.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	requireSequence("source", s)
	requireSequence("other", other)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &concatIter[T]{first: src, second: other}
	})
}

// Skip suppresses the first count values.
func (s *Sequence[T]) Skip(count int) *Sequence[T] {
	requireSequence("source", s)
	requireNonNegative("count", count)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &skipIter[T]{source: src, remaining: count}
	})
}

// SkipWhile suppresses values while matches holds. Once it fails, that value
// and everything after it is yielded and matches is not called again.
func (s *Sequence[T]) SkipWhile(matches func(T) bool) *Sequence[T] {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &skipWhileIter[T]{source: src, fn: matches, skipping: true}
	})
}

// Take yields at most count values, pulling no more than that from s.
func (s *Sequence[T]) Take(count int) *Sequence[T] {
	requireSequence("source", s)
	requireNonNegative("count", count)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &takeIter[T]{source: src, remaining: count}
	})
}

// TakeWhile yields values while matches holds and stops at the first value
// that fails it.
func (s *Sequence[T]) TakeWhile(matches func(T) bool) *Sequence[T] {
	requireSequence("source", s)
	requireFunc("matches", matches == nil)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &takeWhileIter[T]{source: src, fn: matches}
	})
}

// DefaultIfEmpty yields defaultValue once if s is empty and is transparent
// otherwise.
func (s *Sequence[T]) DefaultIfEmpty(defaultValue T) *Sequence[T] {
	requireSequence("source", s)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &defaultIfEmptyIter[T]{source: src, fallback: defaultValue}
	})
}

// Tap calls fn for each value as it passes through, without altering it.
// Use for metrics or debugging.
func (s *Sequence[T]) Tap(fn func(T)) *Sequence[T] {
	requireSequence("source", s)
	requireFunc("fn", fn == nil)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &tapIter[T]{source: src, fn: fn}
	})
}

// --- Iterator implementations ---

type selectIter[T, U any] struct {
	source Iterator[T]
	fn     func(T, int) U
	index  int
}

func (it *selectIter[T, U]) Next() (U, bool, error) {
	val, ok, err := it.source.Next()
	if err != nil || !ok {
		var zero U
		return zero, false, err
	}
	out := it.fn(val, it.index)
	it.index++
	return out, true, nil
}

func (it *selectIter[T, U]) Close() error { return it.source.Close() }

type whereIter[T any] struct {
	source Iterator[T]
	fn     func(T, int) bool
	index  int
}

func (it *whereIter[T]) Next() (T, bool, error) {
	for {
		val, ok, err := it.source.Next()
		if err != nil || !ok {
			return val, false, err
		}
		i := it.index
		it.index++
		if it.fn(val, i) {
			return val, true, nil
		}
	}
}

func (it *whereIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	first   Iterator[T]
	second  *Sequence[T]
	current Iterator[T]
}

func (it *concatIter[T]) Next() (T, bool, error) {
	if it.current == nil {
		val, ok, err := it.first.Next()
		if err != nil || ok {
			return val, ok, err
		}
		it.current = it.second.Iter()
	}
	return it.current.Next()
}

func (it *concatIter[T]) Close() error {
	err := it.first.Close()
	if it.current != nil {
		if cerr := it.current.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

type skipIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *skipIter[T]) Next() (T, bool, error) {
	for it.remaining > 0 {
		val, ok, err := it.source.Next()
		if err != nil || !ok {
			return val, false, err
		}
		it.remaining--
	}
	return it.source.Next()
}

func (it *skipIter[T]) Close() error { return it.source.Close() }

type skipWhileIter[T any] struct {
	source   Iterator[T]
	fn       func(T) bool
	skipping bool
}

func (it *skipWhileIter[T]) Next() (T, bool, error) {
	for it.skipping {
		val, ok, err := it.source.Next()
		if err != nil || !ok {
			return val, false, err
		}
		if !it.fn(val) {
			it.skipping = false
			return val, true, nil
		}
	}
	return it.source.Next()
}

func (it *skipWhileIter[T]) Close() error { return it.source.Close() }

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next() (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next()
	if err != nil || !ok {
		return val, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type takeWhileIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
	done   bool
}

func (it *takeWhileIter[T]) Next() (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	val, ok, err := it.source.Next()
	if err != nil || !ok {
		return zero, false, err
	}
	if !it.fn(val) {
		it.done = true
		return zero, false, nil
	}
	return val, true, nil
}

func (it *takeWhileIter[T]) Close() error { return it.source.Close() }

type defaultIfEmptyIter[T any] struct {
	source   Iterator[T]
	fallback T
	started  bool
	done     bool
}

func (it *defaultIfEmptyIter[T]) Next() (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next()
	if err != nil {
		return val, false, err
	}
	if !ok {
		it.done = true
		if !it.started {
			it.started = true
			return it.fallback, true, nil
		}
		return val, false, nil
	}
	it.started = true
	return val, true, nil
}

func (it *defaultIfEmptyIter[T]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(T)
}

func (it *tapIter[T]) Next() (T, bool, error) {
	val, ok, err := it.source.Next()
	if err != nil || !ok {
		return val, ok, err
	}
	it.fn(val)
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }

// --- SelectMany ---

// SelectMany maps each value to an inner sequence and flattens the results,
// preserving outer and inner order.
func SelectMany[T, U any](s *Sequence[T], getInner func(T) *Sequence[U]) *Sequence[U] {
	requireFunc("getInner", getInner == nil)
	return SelectManyIndexed(s, func(v T, _ int) *Sequence[U] { return getInner(v) })
}

// SelectManyIndexed is SelectMany with the zero-based position of each outer
// value passed to getInner.
func SelectManyIndexed[T, U any](s *Sequence[T], getInner func(T, int) *Sequence[U]) *Sequence[U] {
	requireFunc("getInner", getInner == nil)
	return SelectManyWith(s, getInner, func(_ T, inner U) U { return inner })
}

// SelectManyWith flattens the inner sequence of every value and yields
// combine(outer, inner) for each inner element. getInner is checked per
// element: a nil inner sequence fails the iteration.
func SelectManyWith[T, U, R any](s *Sequence[T], getInner func(T, int) *Sequence[U], combine func(T, U) R) *Sequence[R] {
	requireSequence("source", s)
	requireFunc("getInner", getInner == nil)
	requireFunc("combine", combine == nil)
	return derive(s, func(src Iterator[T]) Iterator[R] {
		return &selectManyIter[T, U, R]{source: src, getInner: getInner, combine: combine}
	})
}

type selectManyIter[T, U, R any] struct {
	source   Iterator[T]
	getInner func(T, int) *Sequence[U]
	combine  func(T, U) R
	index    int
	outer    T
	inner    Iterator[U]
}

func (it *selectManyIter[T, U, R]) Next() (R, bool, error) {
	var zero R
	for {
		if it.inner != nil {
			val, ok, err := it.inner.Next()
			if err != nil {
				return zero, false, err
			}
			if ok {
				return it.combine(it.outer, val), true, nil
			}
			cerr := it.inner.Close()
			it.inner = nil
			if cerr != nil {
				return zero, false, cerr
			}
		}
		outer, ok, err := it.source.Next()
		if err != nil || !ok {
			return zero, false, err
		}
		seq := it.getInner(outer, it.index)
		if seq == nil {
			return zero, false, errors.InvalidArgument("getInner", "should return a sequence").
				WithDetail("index", it.index)
		}
		it.index++
		it.outer = outer
		it.inner = seq.Iter()
	}
}

func (it *selectManyIter[T, U, R]) Close() error {
	var err error
	if it.inner != nil {
		err = it.inner.Close()
		it.inner = nil
	}
	if serr := it.source.Close(); err == nil {
		err = serr
	}
	return err
}
