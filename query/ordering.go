package query

import (
	"cmp"
	"slices"
)

// Ordering operators are eager: they drain the source when called and
// return a sequence backed by the sorted slice.

// DefaultCompare orders values with the < and > operators: -1, 1, or 0 when
// neither holds.
func DefaultCompare[K cmp.Ordered](a, b K) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// OrderBy stable-sorts s in ascending key order.
func OrderBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) (*Sequence[T], error) {
	return OrderByFunc(s, key, DefaultCompare[K])
}

// OrderByDescending stable-sorts s in descending key order.
func OrderByDescending[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) (*Sequence[T], error) {
	return OrderByDescendingFunc(s, key, DefaultCompare[K])
}

// OrderByFunc stable-sorts s by compare(key(a), key(b)).
func OrderByFunc[T, K any](s *Sequence[T], key func(T) K, compare func(a, b K) int) (*Sequence[T], error) {
	requireFunc("compare", compare == nil)
	return orderBy(s, key, compare)
}

// OrderByDescendingFunc stable-sorts s by the negation of compare.
func OrderByDescendingFunc[T, K any](s *Sequence[T], key func(T) K, compare func(a, b K) int) (*Sequence[T], error) {
	requireFunc("compare", compare == nil)
	return orderBy(s, key, func(a, b K) int { return compare(b, a) })
}

type keyed[T, K any] struct {
	key  K
	item T
}

func orderBy[T, K any](s *Sequence[T], key func(T) K, compare func(a, b K) int) (*Sequence[T], error) {
	requireSequence("source", s)
	requireFunc("key", key == nil)
	var entries []keyed[T, K]
	err := s.forEach(func(v T) bool {
		entries = append(entries, keyed[T, K]{key: key(v), item: v})
		return true
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(entries, func(a, b keyed[T, K]) int {
		return compare(a.key, b.key)
	})
	items := make([]T, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}
	return FromSlice(items), nil
}

// Reverse drains s and returns its values in reverse order.
func (s *Sequence[T]) Reverse() (*Sequence[T], error) {
	items, err := s.ToSlice()
	if err != nil {
		return nil, err
	}
	slices.Reverse(items)
	return FromSlice(items), nil
}
