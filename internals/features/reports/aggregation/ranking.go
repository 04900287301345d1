package aggregation

import (
	"cmp"
	"slices"
)

// TopN returns the n items with the highest score, highest first. Equal
// scores keep their input order.
func TopN[T any](items []T, n int, score func(T) float64) []T {
	return rank(items, n, func(a, b T) int { return cmp.Compare(score(b), score(a)) })
}

// BottomN returns the n items with the lowest score, lowest first. Equal
// scores keep their input order.
func BottomN[T any](items []T, n int, score func(T) float64) []T {
	return rank(items, n, func(a, b T) int { return cmp.Compare(score(a), score(b)) })
}

func rank[T any](items []T, n int, less func(a, b T) int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, less)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
