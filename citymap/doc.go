// Package citymap builds the read-only distance map shared by every tour.
//
// A DistanceMap stores the coordinates of n ≥ 2 cities (the index is the city
// identifier) and the full symmetric matrix of pairwise Euclidean distances,
// computed once at construction. Nothing mutates a DistanceMap after Build
// returns, so it may be shared freely by any number of tours.
//
// Coordinates come from a Generator. Two generators are provided:
//
//   - Uniform: continuous coordinates in [0,width)×[0,height) drawn from
//     gonum's distuv.Uniform.
//   - Grid: integer coordinates in the same box, one Intn draw per axis.
//
// NewGenerator assembles either of them from functional options.
package citymap
