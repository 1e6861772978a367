package util

import (
	"math"
	"testing"
)

func TestAverage(t *testing.T) {
	if got := Average([]int{0, 4, 6}); math.Abs(got-10.0/3) > 1e-9 {
		t.Errorf("expected 3.333, got %f", got)
	}
	if got := Average([]int{}); got != 0 {
		t.Errorf("expected 0 for empty list, got %f", got)
	}
}

func TestSumAndMax(t *testing.T) {
	if got := Sum([]int{5, 3, 8}); got != 16 {
		t.Errorf("expected 16, got %d", got)
	}
	if got := Max([]int{5, 16, 8}); got != 16 {
		t.Errorf("expected 16, got %d", got)
	}
	if got := Max([]int{-3, -7}); got != -3 {
		t.Errorf("expected -3, got %d", got)
	}
}

func TestStdDev(t *testing.T) {
	if got := StdDev([]int{7}); got != 0 {
		t.Errorf("expected 0 for a single value, got %f", got)
	}
	if got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}); math.Abs(got-2) > 1e-9 {
		t.Errorf("expected 2, got %f", got)
	}
}
