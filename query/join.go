package query

// Join correlates outer and inner values with equal keys and yields
// result(outer, inner) for every matching pair, in outer order and then
// inner order. outer is read lazily; inner is buffered into a lookup on the
// first pull.
func Join[O, I any, K comparable, R any](
	outer *Sequence[O],
	inner *Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
) *Sequence[R] {
	requireSequence("outer", outer)
	requireSequence("inner", inner)
	requireFunc("outerKey", outerKey == nil)
	requireFunc("innerKey", innerKey == nil)
	requireFunc("result", result == nil)
	return derive(outer, func(src Iterator[O]) Iterator[R] {
		return &joinIter[O, I, K, R]{
			source: src, inner: inner,
			outerKey: outerKey, innerKey: innerKey, result: result,
		}
	})
}

type joinIter[O, I any, K comparable, R any] struct {
	source   Iterator[O]
	inner    *Sequence[I]
	outerKey func(O) K
	innerKey func(I) K
	result   func(O, I) R

	lookup  *Lookup[K, I]
	current O
	matches []I
	pos     int
}

func (it *joinIter[O, I, K, R]) Next() (R, bool, error) {
	var zero R
	if it.lookup == nil {
		lookup, err := ToLookup(it.inner, it.innerKey, identity[I])
		if err != nil {
			return zero, false, err
		}
		it.lookup = lookup
	}
	for it.pos >= len(it.matches) {
		val, ok, err := it.source.Next()
		if err != nil || !ok {
			return zero, false, err
		}
		it.current = val
		it.matches = it.lookup.Get(it.outerKey(val))
		it.pos = 0
	}
	out := it.result(it.current, it.matches[it.pos])
	it.pos++
	return out, true, nil
}

func (it *joinIter[O, I, K, R]) Close() error { return it.source.Close() }
