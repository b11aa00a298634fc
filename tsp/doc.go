// Package tsp evolves short closed tours over a citymap.DistanceMap with a
// genetic algorithm.
//
// A Tour is a permutation of the city ids 0..n-1 read as a cycle; its Length
// is the sum of the n edges including the closing one. A Population is a
// fixed-size slice of tours sharing one map. Each call to Evolve is one
// generation:
//
//  1. score every tour by 1/length, normalized by the best score;
//  2. each tour survives with probability equal to its score, otherwise it is
//     replaced by a copy of the best tour with random pairwise swaps applied;
//  3. survivors are shuffled, paired, and recombined in place by Crossover.
//
// Crossover swaps a random segment between two tours and then repairs the
// duplicates this introduces outside the segment by exchanging them between
// the two tours, so both children remain valid permutations.
//
// Randomness is always explicit: every stochastic entry point takes a Rand,
// and NewRand/DeriveRand build seeded generators. The package never reads a
// global source, so equal seeds reproduce equal runs.
//
// Nothing here logs or panics on user input; misuse of documented
// preconditions (FromPermutation with a non-permutation, tours over different
// maps) is the caller's responsibility.
package tsp
