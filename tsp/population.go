package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/citymap"
)

// Population is a fixed-size collection of tours over one shared map.
// Its length never changes; Evolve replaces and recombines members in place.
type Population struct {
	m       *citymap.DistanceMap
	members []*Tour
}

// NewPopulation builds size random tours over m.
//
// Errors: ErrNilMap, ErrPopulationSize (size < 1).
//
// Complexity: O(size·n).
func NewPopulation(m *citymap.DistanceMap, size int, rng Rand) (*Population, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if size < 1 {
		return nil, fmt.Errorf("size %d: %w", size, ErrPopulationSize)
	}

	members := make([]*Tour, size)
	var i int
	for i = 0; i < size; i++ {
		members[i] = RandomTour(m, rng)
	}

	return &Population{m: m, members: members}, nil
}

// Size returns the number of members.
func (p *Population) Size() int {
	return len(p.members)
}

// Map returns the shared distance map.
func (p *Population) Map() *citymap.DistanceMap {
	return p.m
}

// Lengths returns the tour length of every member, in member order.
func (p *Population) Lengths() []float64 {
	out := make([]float64, len(p.members))
	for i, t := range p.members {
		out[i] = t.Length()
	}

	return out
}

// FitnessScores returns one survival score per member: 1/length normalized
// by the best member's 1/length and scaled by saveRate. Every score lies in
// (0, saveRate] and the fittest member scores exactly saveRate.
//
// Errors: ErrSaveRate unless 0 < saveRate ≤ 1.
//
// Complexity: O(size·n).
func (p *Population) FitnessScores(saveRate float64) ([]float64, error) {
	if !(saveRate > 0 && saveRate <= 1) {
		return nil, fmt.Errorf("save rate %v: %w", saveRate, ErrSaveRate)
	}

	return p.scores(saveRate), nil
}

// scores assumes a valid saveRate.
func (p *Population) scores(saveRate float64) []float64 {
	raw := make([]float64, len(p.members))
	best := 0.0
	for i, t := range p.members {
		raw[i] = 1 / t.Length()
		if raw[i] > best {
			best = raw[i]
		}
	}
	for i := range raw {
		// The fittest member divides by itself; keep it exact.
		if raw[i] == best {
			raw[i] = saveRate
			continue
		}
		raw[i] = raw[i] / best * saveRate
	}

	return raw
}

// bestIndex returns the index of the highest score, first on ties.
func bestIndex(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return best
}

// Evolve advances the population by one generation.
//
//  1. Score all members with save rate 1 and locate the best one.
//  2. For each member i, draw u ∈ [0,1). If u > score[i] the member is
//     replaced by a copy of the best tour with floor(mutationFraction·n)
//     random pairwise swaps; otherwise it survives.
//  3. Survivor indices are shuffled and paired (2k, 2k+1); each pair is
//     recombined with Crossover. An odd survivor out is left as is.
//
// Scores are computed once, before any replacement, so a replacement in
// this generation never changes another member's survival odds.
//
// Errors: ErrMutationFraction for negative or NaN fractions.
//
// Complexity: O(size·n).
func (p *Population) Evolve(rng Rand, mutationFraction float64) error {
	if math.IsNaN(mutationFraction) || mutationFraction < 0 {
		return fmt.Errorf("mutation fraction %v: %w", mutationFraction, ErrMutationFraction)
	}

	scores := p.scores(1)
	best := p.members[bestIndex(scores)]
	swaps := int(math.Floor(mutationFraction * float64(p.m.Count())))

	survivors := make([]int, 0, len(p.members))
	for i := range p.members {
		if rng.Float64() > scores[i] {
			p.members[i] = best.mutatedCopy(swaps, rng)
			continue
		}
		survivors = append(survivors, i)
	}

	shuffleInts(survivors, rng)
	var k int
	for k = 0; k+1 < len(survivors); k += 2 {
		p.members[survivors[k]].Crossover(p.members[survivors[k+1]], rng)
	}

	return nil
}

// BestTour returns the member with the highest fitness (shortest tour),
// the first one on ties. The tour is shared with the population; it changes
// if a later Evolve recombines it.
func (p *Population) BestTour() *Tour {
	return p.members[bestIndex(p.scores(1))]
}

// Member returns the member at index (0-based).
//
// Errors: ErrInvalidSelection for indices outside [0, Size()).
func (p *Population) Member(index int) (*Tour, error) {
	if index < 0 || index >= len(p.members) {
		return nil, fmt.Errorf("index %d of %d: %w", index, len(p.members), ErrInvalidSelection)
	}

	return p.members[index], nil
}

// Select picks a tour for display: choice 0 means the best tour, choice
// 1..Size() means member choice-1.
//
// Errors: ErrInvalidSelection for any other choice.
func (p *Population) Select(choice int) (*Tour, error) {
	if choice == 0 {
		return p.BestTour(), nil
	}
	if choice < 1 || choice > len(p.members) {
		return nil, fmt.Errorf("choice %d of %d: %w", choice, len(p.members), ErrInvalidSelection)
	}

	return p.members[choice-1], nil
}
