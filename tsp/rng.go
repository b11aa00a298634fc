// Package tsp - RNG utilities shared by the genetic operators.
//
// Goals:
//   - Determinism: same seed ⇒ identical tours and populations.
//   - Encapsulation: one seed policy; no time-based sources anywhere.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Use DeriveRand to give each
//     independent run its own stream.
package tsp

import "golang.org/x/exp/rand"

// Rand is the randomness the operators consume. *rand.Rand from
// golang.org/x/exp/rand (and from math/rand) satisfies it; tests script it.
type Rand interface {
	// Intn returns a uniform int in [0, n). n > 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed uint64 = 1

// NewRand returns a deterministic generator.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveRand returns the generator for an independent stream of seed,
// e.g. one per trial. Stream ids must differ to get different streams.
func DeriveRand(seed uint64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so neighbouring ids give uncorrelated seeds.
func deriveSeed(parent uint64, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, rng Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a uniformly random permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng Rand) []int {
	p := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleInts(p, rng)
	return p
}
