package util

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](list []T) T {
	var sum T
	for _, val := range list {
		sum += val
	}
	return sum
}

// Average returns 0 for an empty list; callers that must reject empty input
// check before calling.
func Average[T Number](list []T) float64 {
	if len(list) == 0 {
		return 0
	}
	return float64(Sum(list)) / float64(len(list))
}

func Max[T Number](list []T) T {
	var max T
	for i, val := range list {
		if i == 0 || val > max {
			max = val
		}
	}
	return max
}

// StdDev is the population standard deviation of list.
func StdDev[T Number](list []T) float64 {
	if len(list) == 0 {
		return 0
	}
	values := make([]float64, len(list))
	for i, val := range list {
		values[i] = float64(val)
	}
	return stat.PopStdDev(values, nil)
}
