package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// MaxIndices returns the indices of every element equal to the maximum, in
// order. It returns nil for an empty slice.
func MaxIndices[T constraints.Ordered](slice []T) []int {
	if len(slice) == 0 {
		return nil
	}
	max := slice[0]
	indices := []int{0}
	for i, v := range slice[1:] {
		switch {
		case v > max:
			max = v
			indices = []int{i + 1}
		case v == max:
			indices = append(indices, i+1)
		}
	}
	return indices
}
