package query

import (
	"math"
	"testing"

	"github.com/kbukum/querykit/errors"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name         string
		start, count int
		want         []int
	}{
		{"negative start", -2, 4, []int{-2, -1, 0, 1}},
		{"zero count", 5, 0, []int{}},
		{"ends at MaxInt", math.MaxInt - 1, 2, []int{math.MaxInt - 1, math.MaxInt}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertSlice(t, Range(tc.start, tc.count), tc.want)
		})
	}
}

func TestRange_Arguments(t *testing.T) {
	assertPanicCode(t, errors.ErrCodeOutOfRange, func() { Range(0, -1) })
	assertPanicCode(t, errors.ErrCodeOutOfRange, func() { Range(math.MaxInt, 2) })
}

func TestRepeat(t *testing.T) {
	assertSlice(t, Repeat("a", 3), []string{"a", "a", "a"})
	assertSlice(t, Repeat("a", 0), []string{})
	assertPanicCode(t, errors.ErrCodeOutOfRange, func() { Repeat("a", -1) })
}

func TestEmpty(t *testing.T) {
	n, err := Empty[string]().Count()
	if err != nil || n != 0 {
		t.Errorf("got %d, %v", n, err)
	}
	var zero Sequence[int]
	assertSlice(t, &zero, []int{})

	// Separate calls are equal by content, not by pointer.
	a, b := Empty[int](), Empty[int]()
	assertSlice(t, a, mustSlice(t, b))
}

func TestFactories_Reiterable(t *testing.T) {
	r := Range(1, 3)
	assertSlice(t, r, []int{1, 2, 3})
	assertSlice(t, r, []int{1, 2, 3})
}
