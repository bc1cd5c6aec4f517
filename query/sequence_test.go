package query

import (
	stderrors "errors"
	"maps"
	"slices"
	"sort"
	"testing"

	"github.com/kbukum/querykit/errors"
)

func TestFromSlice_Collect(t *testing.T) {
	assertSlice(t, FromSlice([]int{1, 2, 3}), []int{1, 2, 3})
}

func TestFromSlice_EmptyGivesNonNilSlice(t *testing.T) {
	got := mustSlice(t, FromSlice[int](nil))
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFromSlice_DoesNotCopy(t *testing.T) {
	items := []int{1, 2, 3}
	s := FromSlice(items)
	items[0] = 10
	assertSlice(t, s, []int{10, 2, 3})
}

func TestFromSlice_Reiterable(t *testing.T) {
	s := FromSlice([]string{"a", "b"})
	assertSlice(t, s, []string{"a", "b"})
	assertSlice(t, s, []string{"a", "b"})
}

func TestFrom_DoesNotIterate(t *testing.T) {
	src := &throwingSource{}
	From[int](src)
	if src.iterations != 0 {
		t.Errorf("construction iterated the source %d times", src.iterations)
	}
}

func TestFrom_UnwrapsSequence(t *testing.T) {
	rec := &recorder[int]{items: []int{1, 2, 3}}
	inner := rec.seq()
	outer := From[int](From[int](inner))

	if outer == inner {
		t.Error("expected a new sequence value")
	}
	assertSlice(t, outer, []int{1, 2, 3})
	if rec.pulled != 3 {
		t.Errorf("expected exactly 3 pulls, got %d", rec.pulled)
	}
}

func TestFrom_KeepsContainerSize(t *testing.T) {
	s := From[int](FromSlice([]int{1, 2, 3}))
	if s.size == nil {
		t.Fatal("expected wrapping to keep the known size")
	}
}

func TestFrom_NilSource(t *testing.T) {
	assertPanicCode(t, errors.ErrCodeInvalidArgument, func() { From[int](nil) })
	assertPanicCode(t, errors.ErrCodeInvalidArgument, func() { From[int]((*Sequence[int])(nil)) })
	assertPanicCode(t, errors.ErrCodeInvalidArgument, func() { FromIterator[int](nil) })
	assertPanicCode(t, errors.ErrCodeInvalidArgument, func() { FromFunc[int](nil) })
	assertPanicCode(t, errors.ErrCodeInvalidArgument, func() { FromSeq[int](nil) })
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	got := mustSlice(t, FromMap(m))
	sort.Slice(got, func(i, j int) bool { return got[i].Key < got[j].Key })
	want := []KeyValue[string, int]{{"a", 1}, {"b", 2}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSet(t *testing.T) {
	set := map[int]struct{}{3: {}, 1: {}, 2: {}}
	got := mustSlice(t, FromSet(set))
	slices.Sort(got)
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestFromSeq(t *testing.T) {
	s := FromSeq(slices.Values([]int{4, 5, 6}))
	assertSlice(t, s, []int{4, 5, 6})
	assertSlice(t, s, []int{4, 5, 6})

	first, err := FromSeq(maps.Keys(map[string]bool{"only": true})).First()
	if err != nil || first != "only" {
		t.Errorf("got %q, %v", first, err)
	}
}

func TestFromIterator_SingleUse(t *testing.T) {
	s := FromIterator[int](&sliceIter[int]{items: []int{1, 2, 3, 4}})
	head := mustSlice(t, s.Take(2))
	rest := mustSlice(t, s)
	if !slices.Equal(head, []int{1, 2}) || !slices.Equal(rest, []int{3, 4}) {
		t.Errorf("expected shared cursor, got %v then %v", head, rest)
	}
	assertSlice(t, s, []int{})
}

func TestFromFunc_InvokedPerIteration(t *testing.T) {
	calls := 0
	s := FromFunc(func() Iterator[int] {
		calls++
		return &sliceIter[int]{items: []int{calls}}
	})
	if calls != 0 {
		t.Fatal("factory called at construction")
	}
	assertSlice(t, s, []int{1})
	assertSlice(t, s, []int{2})
}

func TestSeq_RangeOverFunc(t *testing.T) {
	var got []int
	for v, err := range FromSlice([]int{1, 2, 3}).Seq() {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestSeq_YieldsSourceError(t *testing.T) {
	var errs []error
	for _, err := range (&throwingSource{}).seq().Seq() {
		errs = append(errs, err)
	}
	if len(errs) != 1 || !stderrors.Is(errs[0], errBoom) {
		t.Errorf("expected a single boom error, got %v", errs)
	}
}

func TestValues_BreakClosesCursor(t *testing.T) {
	rec := &recorder[int]{items: []int{1, 2, 3}}
	for v := range rec.seq().Values() {
		if v == 2 {
			break
		}
	}
	if rec.pulled != 2 {
		t.Errorf("expected 2 pulls, got %d", rec.pulled)
	}
	if rec.closed != 1 {
		t.Errorf("expected the cursor to be closed once, got %d", rec.closed)
	}
}

func TestValues_PanicsOnSourceError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !stderrors.Is(err, errBoom) {
			t.Errorf("expected panic with boom, got %v", r)
		}
	}()
	for range (&throwingSource{}).seq().Values() {
	}
}

func TestTerminalClosesCursor(t *testing.T) {
	rec := &recorder[int]{items: []int{1, 2, 3}}
	if _, err := rec.seq().Where(isEven).First(); err != nil {
		t.Fatal(err)
	}
	if rec.closed != 1 {
		t.Errorf("expected close to propagate upstream once, got %d", rec.closed)
	}
}
