package utils

import "golang.org/x/exp/slices"

// AppendUnique appends item unless the slice already holds it.
func AppendUnique[T comparable](slice []T, item T) []T {
	if slices.Contains(slice, item) {
		return slice
	}
	return append(slice, item)
}

// Without returns a new slice with every occurrence of item removed.
func Without[T comparable](slice []T, item T) []T {
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}
