// SPDX-License-Identifier: MIT
// Package geom holds the planar primitives shared by the city map and the
// renderers: a 2D point and the Euclidean distance between two points.
//
// Distance is deterministic: the same pair of points always yields the same
// float64, regardless of argument order.
package geom

import "gonum.org/v1/gonum/floats"

// Point is a city location on the plane.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Distance returns the Euclidean (L2) distance between a and b.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}
