package query

// Set operators compare elements with ==.

// Distinct yields each value the first time it is seen, preserving
// first-seen order.
func Distinct[T comparable](s *Sequence[T]) *Sequence[T] {
	return DistinctBy(s, identity[T])
}

// DistinctBy yields each value whose key has not been seen before.
func DistinctBy[T any, K comparable](s *Sequence[T], key func(T) K) *Sequence[T] {
	requireSequence("source", s)
	requireFunc("key", key == nil)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &distinctIter[T, K]{source: src, key: key, seen: make(map[K]struct{})}
	})
}

// Except yields the distinct values of s that do not appear in other.
// other is read in full on the first pull, not when Except is called.
func Except[T comparable](s, other *Sequence[T]) *Sequence[T] {
	requireSequence("source", s)
	requireSequence("other", other)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &membershipIter[T]{source: src, other: other, keep: false}
	})
}

// Intersect yields the distinct values of s that also appear in other, in
// the order of s. other is read in full on the first pull.
func Intersect[T comparable](s, other *Sequence[T]) *Sequence[T] {
	requireSequence("source", s)
	requireSequence("other", other)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &membershipIter[T]{source: src, other: other, keep: true}
	})
}

// Union yields the distinct values of s followed by the distinct values of
// other not already seen. s is exhausted before other is touched.
func Union[T comparable](s, other *Sequence[T]) *Sequence[T] {
	requireSequence("source", s)
	return Distinct(s.Concat(other))
}

type distinctIter[T any, K comparable] struct {
	source Iterator[T]
	key    func(T) K
	seen   map[K]struct{}
}

func (it *distinctIter[T, K]) Next() (T, bool, error) {
	for {
		val, ok, err := it.source.Next()
		if err != nil || !ok {
			return val, false, err
		}
		k := it.key(val)
		if _, dup := it.seen[k]; dup {
			continue
		}
		it.seen[k] = struct{}{}
		return val, true, nil
	}
}

func (it *distinctIter[T, K]) Close() error { return it.source.Close() }

// membershipIter filters source against the set of values in other. With
// keep set it yields members (intersect), otherwise non-members (except).
// Yielded values are removed from or added to the set so each is yielded once.
type membershipIter[T comparable] struct {
	source Iterator[T]
	other  *Sequence[T]
	keep   bool
	set    map[T]struct{}
}

func (it *membershipIter[T]) Next() (T, bool, error) {
	if it.set == nil {
		set, err := toSet(it.other)
		if err != nil {
			var zero T
			return zero, false, err
		}
		it.set = set
	}
	for {
		val, ok, err := it.source.Next()
		if err != nil || !ok {
			return val, false, err
		}
		_, member := it.set[val]
		if member != it.keep {
			continue
		}
		if it.keep {
			delete(it.set, val)
		} else {
			it.set[val] = struct{}{}
		}
		return val, true, nil
	}
}

func (it *membershipIter[T]) Close() error { return it.source.Close() }

func toSet[T comparable](s *Sequence[T]) (map[T]struct{}, error) {
	set := make(map[T]struct{})
	err := s.forEach(func(v T) bool {
		set[v] = struct{}{}
		return true
	})
	return set, err
}
