// Package query provides composable, pull-based query operators over any
// finite or infinite sequence of values.
//
// A Sequence wraps a source (a slice, a map, a set, an iter.Seq, a
// hand-written Iterator) and exposes projection, filtering, set algebra,
// ordering, grouping, aggregation and paging. Pipelines are lazy: no source
// is touched until a terminal reducer runs or the sequence is ranged over.
// Each stage pulls from the previous stage on demand, so an infinite source
// composed only with deferred operators never produces more elements than
// requested.
//
// # Operators
//
// Deferred (no work until iterated):
//
//   - Select, SelectIndexed, SelectMany, SelectManyIndexed, SelectManyWith, Join
//   - Where, WhereIndexed, Skip, SkipWhile, Take, TakeWhile
//   - Concat, Distinct, DistinctBy, Except, Intersect, Union
//   - DefaultIfEmpty, Tap, Trace
//
// Eager (drain the source when called, hence the error return):
//
//   - OrderBy, OrderByFunc, OrderByDescending, OrderByDescendingFunc, Reverse
//   - GroupBy, ToLookup
//
// Terminal reducers (drain or short-circuit the pipeline, once per call):
//
//   - ToSlice, ForEach, Count, CountWhere, Contains, All, Any, AnyWhere
//   - Aggregate, AggregateSeed, AggregateFinish, Sum, SumBy, Average, AverageBy,
//     SumValues, AverageValues, Min, Max, MinBy, MaxBy, MinFunc, MaxFunc
//   - First, Last, Single, ElementAt and their OrDefault / Where variants
//
// # Errors
//
// Bad arguments (a nil function, a nil sequence, a negative count or index)
// are programmer errors: the operator panics at the call site with an
// *errors.Error coded INVALID_ARGUMENT or OUT_OF_RANGE, before any element
// is produced. Sequence-state failures (empty sequence, no match, more than
// one match, index too large) and source failures are returned by the
// terminal reducer that observes them.
//
// # Consumption
//
// A sequence over a re-iterable container (FromSlice, FromMap, FromSet) can
// be consumed any number of times. A sequence over a single-use cursor
// (FromIterator) shares that cursor with every consumer; consuming two
// pipelines derived from it is undefined. Sequences are not safe for
// concurrent consumption.
//
// # Usage
//
//	evens := query.FromSlice([]int{1, 2, 3, 4, 5}).
//	    Where(func(n int) bool { return n%2 == 0 })
//	squares := query.Select(evens, func(n int) int { return n * n })
//	for n := range squares.Values() {
//	    fmt.Println(n) // 4 16
//	}
package query
