// Package tsp_test holds helpers shared across the *_test.go files of tsp.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/citymap"
	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/tsp"
)

// scriptedRand replays fixed draws. Once a script is exhausted it keeps
// returning the fallback values.
type scriptedRand struct {
	ints      []int
	floats    []float64
	intFall   int
	floatFall float64
}

var _ tsp.Rand = (*scriptedRand)(nil)

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return r.intFall % n
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.floatFall
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// unitSquare returns the four corners (0,0), (0,1), (1,1), (1,0).
func unitSquare(t *testing.T) *citymap.DistanceMap {
	t.Helper()
	m, err := citymap.FromPoints([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}})
	require.NoError(t, err)
	return m
}

// randomMap builds a seeded uniform map of n cities.
func randomMap(t *testing.T, n int, seed uint64) *citymap.DistanceMap {
	t.Helper()
	gen, err := citymap.NewGenerator(citymap.WithSeed(seed))
	require.NoError(t, err)
	m, err := citymap.Build(n, gen)
	require.NoError(t, err)
	return m
}

// requirePermutation fails unless order is a permutation of 0..n-1.
func requirePermutation(t *testing.T, order []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(order, n), "order %v", order)
}

// requireValidPopulation checks the permutation invariant on every member.
func requireValidPopulation(t *testing.T, p *tsp.Population) {
	t.Helper()
	for i := 0; i < p.Size(); i++ {
		tour, err := p.Member(i)
		require.NoError(t, err)
		require.NoError(t, tour.Validate(), "member %d: %v", i, tour)
	}
}
