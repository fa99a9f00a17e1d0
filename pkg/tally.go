// Package pkg provides small generic utilities for wptdiff.
package pkg

import "sort"

// Tally counts occurrences of comparable keys. Absent keys count as zero.
type Tally[K comparable] map[K]int

// NewTally returns an empty tally.
func NewTally[K comparable]() Tally[K] {
	return make(Tally[K])
}

// Add increments the count for key.
func (t Tally[K]) Add(key K) {
	t[key]++
}

// Get returns the count for key, zero when absent.
func (t Tally[K]) Get(key K) int {
	return t[key]
}

// Keys returns all counted keys ordered by the provided comparison.
func (t Tally[K]) Keys(less func(a, b K) bool) []K {
	keys := make([]K, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		return less(keys[i], keys[j])
	})

	return keys
}
