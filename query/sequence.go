package query

import (
	"iter"
	"maps"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted
	// and (zero, false, err) when the underlying source fails.
	Next() (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Source is anything that can hand out an Iterator. Re-iterable sources
// return a fresh cursor per call; single-use sources return the same one.
type Source[T any] interface {
	Iter() Iterator[T]
}

// Sequence is a lazy, chainable query over a source of values.
// Constructing one performs no iteration; every operator returns a new
// Sequence and leaves the receiver untouched.
type Sequence[T any] struct {
	create func() Iterator[T]
	// size reports the element count of a directly wrapped container.
	size func() int
}

// KeyValue is one entry of a map wrapped with FromMap.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// --- Constructors ---

// From wraps any Source. Wrapping a *Sequence reuses its producer instead of
// adding a layer of indirection.
func From[T any](src Source[T]) *Sequence[T] {
	if s, ok := src.(*Sequence[T]); ok {
		requireSequence("source", s)
		return &Sequence[T]{create: s.create, size: s.size}
	}
	if src == nil {
		panic(argNotSequence("source"))
	}
	return &Sequence[T]{create: src.Iter}
}

// FromSlice wraps a slice without copying it. The slice is read on every
// iteration, so later writes to it are visible to the sequence.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{
		create: func() Iterator[T] {
			return &sliceIter[T]{items: items}
		},
		size: func() int { return len(items) },
	}
}

// FromMap wraps a map as a sequence of KeyValue entries in Go's map
// iteration order.
func FromMap[K comparable, V any](m map[K]V) *Sequence[KeyValue[K, V]] {
	return &Sequence[KeyValue[K, V]]{
		create: func() Iterator[KeyValue[K, V]] {
			next, stop := iter.Pull2(maps.All(m))
			return &pull2Iter[K, V]{next: next, stop: stop}
		},
		size: func() int { return len(m) },
	}
}

// FromSet wraps a set represented as map[T]struct{}.
func FromSet[T comparable](set map[T]struct{}) *Sequence[T] {
	return &Sequence[T]{
		create: func() Iterator[T] {
			next, stop := iter.Pull(maps.Keys(set))
			return &pullIter[T]{next: next, stop: stop}
		},
		size: func() int { return len(set) },
	}
}

// FromSeq adapts a range-over-func sequence. Each iteration of the result
// ranges over seq again.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	requireFunc("seq", seq == nil)
	return &Sequence[T]{
		create: func() Iterator[T] {
			next, stop := iter.Pull(seq)
			return &pullIter[T]{next: next, stop: stop}
		},
	}
}

// FromIterator wraps a single-use cursor. Every consumer of the result, and
// of any sequence derived from it, pulls from the same cursor.
func FromIterator[T any](it Iterator[T]) *Sequence[T] {
	if it == nil {
		panic(argNotSequence("iterator"))
	}
	return &Sequence[T]{
		create: func() Iterator[T] {
			return it
		},
	}
}

// FromFunc creates a sequence from a factory invoked once per iteration.
func FromFunc[T any](fn func() Iterator[T]) *Sequence[T] {
	requireFunc("fn", fn == nil)
	return &Sequence[T]{create: fn}
}

// --- Iteration ---

// Iter returns a fresh pull cursor over the sequence. The caller must Close it.
func (s *Sequence[T]) Iter() Iterator[T] {
	if s.create == nil {
		return emptyIter[T]{}
	}
	return s.create()
}

// Seq returns a range-over-func view of the sequence. A source failure is
// yielded once as (zero, err) and ends the iteration.
//
//	for v, err := range seq.Seq() {
//	    if err != nil { ... }
//	}
func (s *Sequence[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := s.Iter()
		defer it.Close()
		for {
			v, ok, err := it.Next()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}

// Values returns a range-over-func view of the sequence for sources that
// cannot fail. A source failure panics with the source error.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range s.Seq() {
			if err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// forEach pulls elements into visit until it returns false or the sequence
// ends, then closes the cursor.
func (s *Sequence[T]) forEach(visit func(T) bool) error {
	it := s.Iter()
	defer it.Close()
	for {
		v, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok || !visit(v) {
			return nil
		}
	}
}

// derive builds a sequence whose cursor wraps a fresh upstream cursor. The
// upstream is not touched until the result is iterated.
func derive[T, U any](s *Sequence[T], wrap func(Iterator[T]) Iterator[U]) *Sequence[U] {
	return &Sequence[U]{
		create: func() Iterator[U] {
			return wrap(s.Iter())
		},
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type pullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *pullIter[T]) Next() (T, bool, error) {
	v, ok := it.next()
	return v, ok, nil
}

func (it *pullIter[T]) Close() error {
	it.stop()
	return nil
}

type pull2Iter[K comparable, V any] struct {
	next func() (K, V, bool)
	stop func()
}

func (it *pull2Iter[K, V]) Next() (KeyValue[K, V], bool, error) {
	k, v, ok := it.next()
	return KeyValue[K, V]{Key: k, Value: v}, ok, nil
}

func (it *pull2Iter[K, V]) Close() error {
	it.stop()
	return nil
}

type emptyIter[T any] struct{}

func (emptyIter[T]) Next() (T, bool, error) {
	var zero T
	return zero, false, nil
}

func (emptyIter[T]) Close() error { return nil }
