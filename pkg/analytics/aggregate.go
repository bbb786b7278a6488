package analytics

import (
	"errors"
	"sort"
)

// ErrNoRows is returned by mean and percentage computations that would
// otherwise divide by zero.
var ErrNoRows = errors.New("analytics: no rows to aggregate")

// GroupCount is one group of a counting aggregation.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GroupSum is one group of a summing aggregation.
type GroupSum struct {
	Key string  `json:"key"`
	Sum float64 `json:"sum"`
}

// CountBy groups rows by a key and counts each group. Groups come back in
// descending count order, ties in ascending key order, so identical input
// always yields identical output. Keys absent from the input never appear.
func CountBy[T any](rows []T, key func(T) string) []GroupCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[key(r)]++
	}
	out := make([]GroupCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, GroupCount{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// SumBy groups rows by a key and sums a value per group, with the same
// ordering contract as CountBy.
func SumBy[T any](rows []T, key func(T) string, value func(T) float64) []GroupSum {
	sums := make(map[string]float64)
	for _, r := range rows {
		sums[key(r)] += value(r)
	}
	out := make([]GroupSum, 0, len(sums))
	for k, s := range sums {
		out = append(out, GroupSum{Key: k, Sum: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sum != out[j].Sum {
			return out[i].Sum > out[j].Sum
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Mean averages the values produced by value over rows that have one.
// Returns ErrNoRows when no row yields a value; it never divides by zero.
func Mean[T any](rows []T, value func(T) (float64, bool)) (float64, error) {
	var sum float64
	var n int
	for _, r := range rows {
		v, ok := value(r)
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, ErrNoRows
	}
	return sum / float64(n), nil
}

// Percentage of rows matching pred. Returns ErrNoRows for an empty input;
// the caller is expected to guarantee at least one row.
func Percentage[T any](rows []T, pred func(T) bool) (count int, pct float64, err error) {
	if len(rows) == 0 {
		return 0, 0, ErrNoRows
	}
	for _, r := range rows {
		if pred(r) {
			count++
		}
	}
	return count, float64(count) / float64(len(rows)) * 100, nil
}
