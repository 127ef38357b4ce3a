package utils

import "cmp"

func Clamp[T cmp.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// MaxIndices returns the indices of all elements equal to the maximum, in order.
func MaxIndices[T cmp.Ordered](values []T) []int {
	if len(values) == 0 {
		return nil
	}
	best := values[0]
	indices := []int{0}
	for i := 1; i < len(values); i++ {
		switch {
		case values[i] > best:
			best = values[i]
			indices = indices[:0]
			indices = append(indices, i)
		case values[i] == best:
			indices = append(indices, i)
		}
	}
	return indices
}
