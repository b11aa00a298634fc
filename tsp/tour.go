// Package tsp - the Tour type and permutation utilities.
//
// A Tour owns its order slice and shares a read-only *citymap.DistanceMap.
// The order is a permutation of 0..n-1 before and after every operation in
// this package; only Crossover edits it in place.
package tsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gatsp/citymap"
)

// Tour is a candidate solution: a cyclic visiting order over all cities.
type Tour struct {
	order []int                // permutation of 0..n-1
	m     *citymap.DistanceMap // shared, never mutated
}

// RandomTour returns a tour whose order is a uniformly random permutation
// of the cities of m.
//
// Complexity: O(n).
func RandomTour(m *citymap.DistanceMap, rng Rand) *Tour {
	return &Tour{order: permRange(m.Count(), rng), m: m}
}

// FromPermutation returns a tour over m wrapping a copy of perm.
//
// Precondition: perm is a permutation of 0..m.Count()-1. It is not checked
// here; call ValidatePermutation first when the source is untrusted.
//
// Complexity: O(n).
func FromPermutation(m *citymap.DistanceMap, perm []int) *Tour {
	order := make([]int, len(perm))
	copy(order, perm)

	return &Tour{order: order, m: m}
}

// Size returns the number of cities in the tour.
func (t *Tour) Size() int {
	return len(t.order)
}

// Map returns the distance map the tour is defined over.
func (t *Tour) Map() *citymap.DistanceMap {
	return t.m
}

// Order returns a copy of the visiting order.
func (t *Tour) Order() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)

	return out
}

// Length returns the closed tour distance, including the edge from the last
// city back to the first.
//
// Complexity: O(n).
func (t *Tour) Length() float64 {
	var (
		sum float64
		n   = len(t.order)
		i   int
	)
	for i = 0; i < n; i++ {
		sum += t.m.Distance(t.order[i], t.order[(i+1)%n])
	}

	return sum
}

// Validate reports whether the order is still a permutation of the map's cities.
func (t *Tour) Validate() error {
	return ValidatePermutation(t.order, t.m.Count())
}

// String renders the order, e.g. "[0 3 1 2]".
func (t *Tour) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range t.order {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')

	return b.String()
}

// mutatedCopy returns a copy of t after swaps random index-pair swaps.
// Indices are drawn independently with replacement; i==j is a no-op.
func (t *Tour) mutatedCopy(swaps int, rng Rand) *Tour {
	order := make([]int, len(t.order))
	copy(order, t.order)

	var (
		n    = len(order)
		a, b int
		k    int
	)
	for k = 0; k < swaps; k++ {
		a = rng.Intn(n)
		b = rng.Intn(n)
		order[a], order[b] = order[b], order[a]
	}

	return &Tour{order: order, m: t.m}
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return fmt.Errorf("length %d for %d cities: %w", len(perm), n, ErrNotPermutation)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("city %d at position %d out of range: %w", v, i, ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("city %d repeated at position %d: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}
