// SPDX-License-Identifier: MIT

package citymap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gatsp/geom"
)

// minCities is the smallest map for which a closed tour is meaningful.
const minCities = 2

// DistanceMap is an immutable set of city coordinates together with the
// precomputed symmetric distance matrix between them.
type DistanceMap struct {
	points []geom.Point   // index == city id
	dist   *mat.SymDense // zero diagonal, entries ≥ 0
}

// Build draws count points from gen (gen is called with i = 0..count-1, in
// order) and computes the pairwise distance matrix.
//
// Errors: ErrTooFewCities when count < 2, ErrNilGenerator when gen is nil,
// ErrBadCoordinate if the generator yields NaN/Inf.
//
// Complexity: O(count²) time and memory.
func Build(count int, gen Generator) (*DistanceMap, error) {
	if count < minCities {
		return nil, fmt.Errorf("build %d cities: %w", count, ErrTooFewCities)
	}
	if gen == nil {
		return nil, ErrNilGenerator
	}

	points := make([]geom.Point, count)
	var i int
	for i = 0; i < count; i++ {
		points[i] = gen(i)
	}

	return newDistanceMap(points)
}

// FromPoints builds a map over an explicit list of coordinates.
// The slice is copied; later edits by the caller do not leak into the map.
//
// Complexity: O(n²).
func FromPoints(points []geom.Point) (*DistanceMap, error) {
	if len(points) < minCities {
		return nil, fmt.Errorf("build %d cities: %w", len(points), ErrTooFewCities)
	}
	cp := make([]geom.Point, len(points))
	copy(cp, points)

	return newDistanceMap(cp)
}

// newDistanceMap takes ownership of points and fills the upper triangle of
// the symmetric matrix; SymDense mirrors it to the lower one.
func newDistanceMap(points []geom.Point) (*DistanceMap, error) {
	n := len(points)

	var i, j int
	for i = 0; i < n; i++ {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return nil, fmt.Errorf("city %d: %w", i, ErrBadCoordinate)
		}
	}

	dist := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dist.SetSym(i, j, geom.Distance(points[i], points[j]))
		}
	}

	return &DistanceMap{points: points, dist: dist}, nil
}

// Count returns the number of cities.
func (m *DistanceMap) Count() int {
	return len(m.points)
}

// Distance returns the distance between cities i and j.
// Indices outside [0, Count()) are a caller error and panic inside the matrix.
// Complexity: O(1).
func (m *DistanceMap) Distance(i, j int) float64 {
	return m.dist.At(i, j)
}

// Point returns the coordinates of city i.
func (m *DistanceMap) Point(i int) geom.Point {
	return m.points[i]
}

// Coordinates returns a copy of all city coordinates, indexed by city id.
func (m *DistanceMap) Coordinates() []geom.Point {
	out := make([]geom.Point, len(m.points))
	copy(out, m.points)

	return out
}

// Matrix exposes the distance matrix for read-only consumers
// (renderers, diagnostics). Callers must not type-assert and write to it.
func (m *DistanceMap) Matrix() mat.Symmetric {
	return m.dist
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
