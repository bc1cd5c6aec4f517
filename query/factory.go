package query

import (
	"math"

	"github.com/kbukum/querykit/errors"
)

// Empty returns the empty sequence. The zero Sequence is empty, so every
// call returns an equivalent immutable value and nothing is cached. Calls
// return distinct pointers: compare contents, never pointer identity.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// Repeat returns a sequence that yields item count times.
func Repeat[T any](item T, count int) *Sequence[T] {
	requireNonNegative("count", count)
	return &Sequence[T]{
		create: func() Iterator[T] {
			return &repeatIter[T]{item: item, remaining: count}
		},
	}
}

// Range returns the count consecutive integers starting at start.
func Range(start, count int) *Sequence[int] {
	requireNonNegative("count", count)
	if count > 0 && start > math.MaxInt-(count-1) {
		panic(errors.OutOfRange("count", count, "overflows the int range from start"))
	}
	return &Sequence[int]{
		create: func() Iterator[int] {
			return &rangeIter{next: start, remaining: count}
		},
	}
}

type repeatIter[T any] struct {
	item      T
	remaining int
}

func (it *repeatIter[T]) Next() (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	it.remaining--
	return it.item, true, nil
}

func (it *repeatIter[T]) Close() error { return nil }

type rangeIter struct {
	next      int
	remaining int
}

func (it *rangeIter) Next() (int, bool, error) {
	if it.remaining <= 0 {
		return 0, false, nil
	}
	v := it.next
	it.remaining--
	if it.remaining > 0 {
		it.next++
	}
	return v, true, nil
}

func (it *rangeIter) Close() error { return nil }
