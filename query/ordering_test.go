package query

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/kbukum/querykit/errors"
)

type pet struct {
	name string
	age  int
}

func petNames(t *testing.T, s *Sequence[pet], err error) []string {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
	return mustSlice(t, Select(s, func(p pet) string { return p.name }))
}

var pets = []pet{
	{"Barley", 8},
	{"Boots", 4},
	{"Whiskers", 1},
	{"Daisy", 4},
}

func TestOrderBy(t *testing.T) {
	age := func(p pet) int { return p.age }
	tests := []struct {
		name  string
		order func() (*Sequence[pet], error)
		want  []string
	}{
		{"ascending is stable", func() (*Sequence[pet], error) { return OrderBy(FromSlice(pets), age) },
			[]string{"Whiskers", "Boots", "Daisy", "Barley"}},
		{"descending is stable", func() (*Sequence[pet], error) { return OrderByDescending(FromSlice(pets), age) },
			[]string{"Barley", "Boots", "Daisy", "Whiskers"}},
		{"custom compare", func() (*Sequence[pet], error) {
			return OrderByFunc(FromSlice(pets), func(p pet) string { return p.name }, func(a, b string) int {
				return DefaultCompare(len(a), len(b))
			})
		}, []string{"Boots", "Daisy", "Barley", "Whiskers"}},
		{"custom compare descending", func() (*Sequence[pet], error) {
			return OrderByDescendingFunc(FromSlice(pets), func(p pet) string { return p.name }, strings.Compare)
		}, []string{"Whiskers", "Daisy", "Boots", "Barley"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.order()
			got := petNames(t, s, err)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrderBy_KeyEvaluatedOncePerElement(t *testing.T) {
	calls := 0
	_, err := OrderBy(FromSlice([]int{5, 3, 9, 1}), func(n int) int {
		calls++
		return n
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 4 {
		t.Errorf("expected 4 key calls, got %d", calls)
	}
}

func TestOrderBy_IsEager(t *testing.T) {
	src := &throwingSource{}
	_, err := OrderBy(src.seq(), identity[int])
	if !stderrors.Is(err, errBoom) {
		t.Errorf("expected the source error from the call, got %v", err)
	}
	if src.iterations != 1 {
		t.Errorf("expected the source to be drained once, got %d", src.iterations)
	}

	rec := &recorder[int]{items: []int{2, 1}}
	sorted, err := OrderBy(rec.seq(), identity[int])
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, sorted, []int{1, 2})
	assertSlice(t, sorted, []int{1, 2})
	if rec.pulled != 2 {
		t.Errorf("expected the result to be buffered, got %d pulls", rec.pulled)
	}
}

func TestOrderBy_Arguments(t *testing.T) {
	s := FromSlice([]int{1})
	assertPanicCode(t, errors.ErrCodeInvalidArgument, func() { OrderBy[int, int](s, nil) })
	assertPanicCode(t, errors.ErrCodeInvalidArgument, func() { OrderByFunc[int, int](s, identity[int], nil) })
	assertPanicCode(t, errors.ErrCodeInvalidArgument, func() { OrderByDescending(nil, identity[int]) })
}

func TestReverse(t *testing.T) {
	r, err := Range(1, 4).Reverse()
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, r, []int{4, 3, 2, 1})

	r, err = Empty[int]().Reverse()
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, r, []int{})

	if _, err := (&throwingSource{}).seq().Reverse(); !stderrors.Is(err, errBoom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestDefaultCompare(t *testing.T) {
	tests := []struct {
		a, b float64
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{3, 3, 0},
	}
	for _, tc := range tests {
		if got := DefaultCompare(tc.a, tc.b); got != tc.want {
			t.Errorf("DefaultCompare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
