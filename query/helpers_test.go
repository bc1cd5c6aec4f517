package query

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/kbukum/querykit/errors"
)

var errBoom = stderrors.New("boom")

// throwingSource counts how often it is iterated; every cursor it hands out
// fails on the first pull.
type throwingSource struct {
	iterations int
}

func (s *throwingSource) Iter() Iterator[int] {
	s.iterations++
	return &failingIter[int]{err: errBoom}
}

func (s *throwingSource) seq() *Sequence[int] { return From[int](s) }

type failingIter[T any] struct {
	err    error
	closed bool
}

func (it *failingIter[T]) Next() (T, bool, error) {
	var zero T
	return zero, false, it.err
}

func (it *failingIter[T]) Close() error {
	it.closed = true
	return nil
}

// recorder wraps a slice and records every element pulled from it, so tests
// can assert how much of the source an operator consumed.
type recorder[T any] struct {
	name   string
	items  []T
	log    *[]string
	pulled int
	closed int
}

func (r *recorder[T]) Iter() Iterator[T] {
	return &recorderIter[T]{r: r}
}

func (r *recorder[T]) seq() *Sequence[T] { return From[T](r) }

type recorderIter[T any] struct {
	r     *recorder[T]
	index int
}

func (it *recorderIter[T]) Next() (T, bool, error) {
	if it.index >= len(it.r.items) {
		if it.r.log != nil {
			*it.r.log = append(*it.r.log, it.r.name+":end")
		}
		var zero T
		return zero, false, nil
	}
	v := it.r.items[it.index]
	it.index++
	it.r.pulled++
	if it.r.log != nil {
		*it.r.log = append(*it.r.log, it.r.name)
	}
	return v, true, nil
}

func (it *recorderIter[T]) Close() error {
	it.r.closed++
	return nil
}

// infinite yields 0, 1, 2, ... forever.
func infinite() *Sequence[int] {
	return FromFunc(func() Iterator[int] { return &rangeIter{next: 0, remaining: int(^uint(0) >> 1)} })
}

func mustSlice[T any](t *testing.T, s *Sequence[T]) []T {
	t.Helper()
	got, err := s.ToSlice()
	if err != nil {
		t.Fatalf("ToSlice failed: %v", err)
	}
	return got
}

func assertSlice[T comparable](t *testing.T, s *Sequence[T], want []T) {
	t.Helper()
	got := mustSlice(t, s)
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func assertCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	if !errors.HasCode(err, code) {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

// assertPanicCode runs fn and requires it to panic with a querykit error of
// the given code.
func assertPanicCode(t *testing.T, code errors.ErrorCode, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %s", code)
		}
		e := errors.FromPanic(r)
		if e == nil || e.Code != code {
			t.Fatalf("expected panic with %s, got %v", code, r)
		}
	}()
	fn()
}

func isEven(n int) bool { return n%2 == 0 }
