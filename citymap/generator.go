// SPDX-License-Identifier: MIT

package citymap

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/gatsp/geom"
)

// Generator yields the coordinates of city i. Build calls it exactly once per
// city, in index order, so a stateful generator backed by a seeded source
// produces the same map for the same seed.
type Generator func(i int) geom.Point

// Intner is the single method Grid needs from a random source.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Intner interface {
	Intn(n int) int
}

// Uniform returns a generator of continuous coordinates in
// [0,width)×[0,height). X and Y are drawn from the same source, X first.
// The caller is responsible for positive bounds (see NewGenerator).
func Uniform(width, height float64, src rand.Source) Generator {
	xs := distuv.Uniform{Min: 0, Max: width, Src: src}
	ys := distuv.Uniform{Min: 0, Max: height, Src: src}

	return func(int) geom.Point {
		x := xs.Rand()
		y := ys.Rand()

		return geom.Point{X: x, Y: y}
	}
}

// Grid returns a generator of integer coordinates: x ∈ [0,width), y ∈ [0,height).
func Grid(width, height int, rng Intner) Generator {
	return func(int) geom.Point {
		x := rng.Intn(width)
		y := rng.Intn(height)

		return geom.Point{X: float64(x), Y: float64(y)}
	}
}
