package query

import (
	"math"
	"testing"

	"github.com/kbukum/querykit/errors"
)

func TestSumAverage(t *testing.T) {
	nums := FromSlice([]int{1, 2, 3, 4})

	if got, err := Sum(nums); err != nil || got != 10 {
		t.Errorf("Sum: %d, %v", got, err)
	}
	if got, err := Sum(Empty[float64]()); err != nil || got != 0 {
		t.Errorf("Sum on empty: %v, %v", got, err)
	}
	if got, err := Average(nums); err != nil || got != 2.5 {
		t.Errorf("Average: %v, %v", got, err)
	}
	_, err := Average(Empty[int]())
	assertCode(t, err, errors.ErrCodeEmptySequence)

	if got, err := SumBy(FromSlice(pets), func(p pet) int { return p.age }); err != nil || got != 17 {
		t.Errorf("SumBy: %d, %v", got, err)
	}
	if got, err := AverageBy(FromSlice(pets), func(p pet) int { return p.age }); err != nil || got != 4.25 {
		t.Errorf("AverageBy: %v, %v", got, err)
	}
}

func TestSumValues(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		sum      float64
		avg      float64
		wantCode errors.ErrorCode
	}{
		{"mixed numeric types", []any{1, int64(2), 3.5, uint8(1), float32(0.5)}, 8, 1.6, ""},
		{"string is not numeric", []any{1, "2", 3}, 0, 0, errors.ErrCodeInvalidElement},
		{"nil is not numeric", []any{nil}, 0, 0, errors.ErrCodeInvalidElement},
		{"bool is not numeric", []any{true}, 0, 0, errors.ErrCodeInvalidElement},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := SumValues(FromSlice(tc.values))
			avg, avgErr := AverageValues(FromSlice(tc.values))
			if tc.wantCode != "" {
				assertCode(t, err, tc.wantCode)
				assertCode(t, avgErr, tc.wantCode)
				return
			}
			if err != nil || sum != tc.sum {
				t.Errorf("sum: %v, %v", sum, err)
			}
			if avgErr != nil || math.Abs(avg-tc.avg) > 1e-9 {
				t.Errorf("average: %v, %v", avg, avgErr)
			}
		})
	}
}

func TestSumValues_ReportsIndex(t *testing.T) {
	_, err := SumValues(FromSlice([]any{1, 2, "x"}))
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if e.Details["index"] != 2 {
		t.Errorf("expected index 2, got %v", e.Details["index"])
	}
}

func TestAverageValues_Empty(t *testing.T) {
	_, err := AverageValues(Empty[any]())
	assertCode(t, err, errors.ErrCodeEmptySequence)
	if sum, err := SumValues(Empty[any]()); err != nil || sum != 0 {
		t.Errorf("got %v, %v", sum, err)
	}
}

func TestMinMax(t *testing.T) {
	nums := FromSlice([]int{4, 1, 9, 1, 3})
	if got, err := Min(nums); err != nil || got != 1 {
		t.Errorf("Min: %d, %v", got, err)
	}
	if got, err := Max(nums); err != nil || got != 9 {
		t.Errorf("Max: %d, %v", got, err)
	}
	if got, err := MaxBy(FromSlice(pets), func(p pet) string { return p.name }); err != nil || got != "Whiskers" {
		t.Errorf("MaxBy: %q, %v", got, err)
	}
	if got, err := MinBy(FromSlice(pets), func(p pet) int { return p.age }); err != nil || got != 1 {
		t.Errorf("MinBy: %d, %v", got, err)
	}

	_, err := Min(Empty[int]())
	assertCode(t, err, errors.ErrCodeEmptySequence)
	_, err = Max(Empty[string]())
	assertCode(t, err, errors.ErrCodeEmptySequence)
}

func TestMinFunc_KeepsFirstOfEqual(t *testing.T) {
	byAge := func(a, b pet) int { return DefaultCompare(a.age, b.age) }
	youngest, err := FromSlice(pets).MaxFunc(func(a, b pet) int { return byAge(b, a) })
	if err != nil || youngest.name != "Whiskers" {
		t.Errorf("got %v, %v", youngest, err)
	}
	rest, err := FromSlice(pets).Skip(1).MinFunc(byAge)
	if err != nil || rest.name != "Whiskers" {
		t.Errorf("got %v, %v", rest, err)
	}
	first, err := FromSlice(pets).Where(func(p pet) bool { return p.age == 4 }).MaxFunc(byAge)
	if err != nil || first.name != "Boots" {
		t.Errorf("expected the first of equal values, got %v, %v", first, err)
	}
}
