package query

import "slices"

// Lookup maps keys to the values that share them. Keys keep the order in
// which they were first seen.
type Lookup[K comparable, V any] struct {
	keys   []K
	groups map[K][]V
}

// Grouping is one key of a Lookup with its values in source order.
type Grouping[K comparable, V any] struct {
	Key    K
	Values []V
}

// Len returns the number of distinct keys.
func (l *Lookup[K, V]) Len() int { return len(l.keys) }

// Has reports whether key is present.
func (l *Lookup[K, V]) Has(key K) bool {
	_, ok := l.groups[key]
	return ok
}

// Get returns the values for key, or nil when key is absent. The returned
// slice is owned by the lookup and must not be modified.
func (l *Lookup[K, V]) Get(key K) []V { return l.groups[key] }

// Keys returns the keys in first-seen order.
func (l *Lookup[K, V]) Keys() []K { return slices.Clone(l.keys) }

// Groups returns the groupings in first-seen key order.
func (l *Lookup[K, V]) Groups() *Sequence[Grouping[K, V]] {
	out := make([]Grouping[K, V], len(l.keys))
	for i, k := range l.keys {
		out[i] = Grouping[K, V]{Key: k, Values: l.groups[k]}
	}
	return FromSlice(out)
}

// GroupBy drains s and groups its values by key.
func GroupBy[T any, K comparable](s *Sequence[T], key func(T) K) (*Lookup[K, T], error) {
	requireFunc("key", key == nil)
	return ToLookup(s, key, identity[T])
}

// ToLookup drains s and groups transform(v) by key(v).
func ToLookup[T any, K comparable, V any](s *Sequence[T], key func(T) K, transform func(T) V) (*Lookup[K, V], error) {
	requireSequence("source", s)
	requireFunc("key", key == nil)
	requireFunc("transform", transform == nil)
	l := &Lookup[K, V]{groups: make(map[K][]V)}
	err := s.forEach(func(v T) bool {
		k := key(v)
		group, ok := l.groups[k]
		if !ok {
			l.keys = append(l.keys, k)
		}
		l.groups[k] = append(group, transform(v))
		return true
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}
