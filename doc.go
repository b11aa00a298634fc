// Package gatsp evolves short closed tours over a set of cities with a
// genetic algorithm: a heuristic, not an exact solver.
//
// Layout:
//
//	geom/      — 2D point and Euclidean distance
//	citymap/   — DistanceMap (coordinates + symmetric distance matrix), coordinate generators
//	tsp/       — Tour, segment-swap crossover, Population (fitness, evolve, select), 2-opt polish
//	runner/    — generation loop, per-generation statistics, multi-trial summary
//	viz/       — tour and convergence plots
//	config/    — defaults, YAML/TOML loading, validation
//	cmd/gatsp/ — command-line driver
//
// Quick example:
//
//	gen, _ := citymap.NewGenerator(citymap.WithSeed(7))
//	m, _ := citymap.Build(50, gen)
//	rng := tsp.NewRand(1)
//	pop, _ := tsp.NewPopulation(m, 200, rng)
//	for i := 0; i < 100; i++ {
//		_ = pop.Evolve(rng, 0.1)
//	}
//	fmt.Println(pop.BestTour().Length())
//
// The core (geom, citymap, tsp) is single-threaded, silent and deterministic
// for a given seed; randomness is always passed in as a tsp.Rand.
//
//	go install github.com/katalvlaran/gatsp/cmd/gatsp@latest
package gatsp
