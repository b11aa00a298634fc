package tsp

import "errors"

var (
	// ErrNilMap is returned when a population is requested without a distance map.
	ErrNilMap = errors.New("tsp: nil distance map")

	// ErrPopulationSize indicates a population size below one.
	ErrPopulationSize = errors.New("tsp: population size must be ≥ 1")

	// ErrSaveRate indicates a save rate outside (0, 1].
	ErrSaveRate = errors.New("tsp: save rate must be in (0, 1]")

	// ErrMutationFraction indicates a negative or NaN mutation fraction.
	ErrMutationFraction = errors.New("tsp: mutation fraction must be ≥ 0")

	// ErrInvalidSelection is returned when a tour index does not exist.
	ErrInvalidSelection = errors.New("tsp: invalid tour selection")

	// ErrNotPermutation is returned by ValidatePermutation.
	ErrNotPermutation = errors.New("tsp: not a permutation")
)
