// Package runner drives a tsp.Population through a fixed number of
// generations, records per-generation statistics, and summarizes the final
// lengths of repeated trials.
//
// It is the only layer that logs; the core packages stay silent.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gatsp/citymap"
	"github.com/katalvlaran/gatsp/tsp"
)

// ErrGenerations indicates a negative generation count.
var ErrGenerations = errors.New("runner: generations must be ≥ 0")

// Options configures one run.
type Options struct {
	Generations      int
	MutationFraction float64
	// SaveRate scales the survival scores that are reported; evolution
	// itself always scores with rate 1.
	SaveRate float64
	// ReportEvery logs a progress line every k generations; 0 disables it.
	ReportEvery int
	// Polish runs 2-opt on the final best tour. History is unaffected.
	Polish bool
}

// Generation is the state of the population after one step.
// Index 0 is the initial population.
type Generation struct {
	Index        int
	Best         float64 // length of the best tour
	Mean         float64 // mean tour length
	StdDev       float64 // tour length standard deviation
	MeanSurvival float64 // mean survival score at Options.SaveRate
}

// Result is the outcome of a run.
type Result struct {
	// Initial is a snapshot of the best tour before the first generation.
	Initial *tsp.Tour
	// Best is a snapshot of the best tour at the end; later evolution of the
	// population does not affect it.
	Best *tsp.Tour
	// PolishMoves counts the 2-opt moves applied to Best when Options.Polish is set.
	PolishMoves int
	History     []Generation
	Elapsed     time.Duration
}

// BestLengths returns the best length of every recorded generation.
func (r Result) BestLengths() []float64 {
	out := make([]float64, len(r.History))
	for i, g := range r.History {
		out[i] = g.Best
	}
	return out
}

// Run evolves pop for opts.Generations generations with rng.
// Cancellation is checked between generations; on cancellation the partial
// result is returned together with ctx.Err().
func Run(ctx context.Context, pop *tsp.Population, rng tsp.Rand, opts Options, log *zap.Logger) (Result, error) {
	if opts.Generations < 0 {
		return Result{}, fmt.Errorf("generations %d: %w", opts.Generations, ErrGenerations)
	}
	if log == nil {
		log = zap.NewNop()
	}

	start := time.Now()
	res := Result{History: make([]Generation, 0, opts.Generations+1)}

	g, err := snapshot(pop, 0, opts.SaveRate)
	if err != nil {
		return Result{}, err
	}
	res.History = append(res.History, g)
	res.Initial = tsp.FromPermutation(pop.Map(), pop.BestTour().Order())

	for i := 1; i <= opts.Generations; i++ {
		if err = ctx.Err(); err != nil {
			res.finish(pop, start)
			log.Warn("run interrupted", zap.Int("generation", i-1), zap.Error(err))
			return res, err
		}
		if err = pop.Evolve(rng, opts.MutationFraction); err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", i, err)
		}
		if g, err = snapshot(pop, i, opts.SaveRate); err != nil {
			return Result{}, err
		}
		res.History = append(res.History, g)

		if opts.ReportEvery > 0 && i%opts.ReportEvery == 0 {
			log.Info("generation",
				zap.Int("generation", i),
				zap.Float64("best", g.Best),
				zap.Float64("mean", g.Mean),
				zap.Float64("stddev", g.StdDev),
			)
		}
	}

	res.finish(pop, start)
	if opts.Polish {
		before := res.Best.Length()
		res.Best, res.PolishMoves = tsp.TwoOpt(res.Best, 0)
		log.Debug("polished",
			zap.Int("moves", res.PolishMoves),
			zap.Float64("before", before),
			zap.Float64("after", res.Best.Length()),
		)
	}
	log.Debug("run finished",
		zap.Int("generations", opts.Generations),
		zap.Float64("best", res.Best.Length()),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

func (r *Result) finish(pop *tsp.Population, start time.Time) {
	r.Best = tsp.FromPermutation(pop.Map(), pop.BestTour().Order())
	r.Elapsed = time.Since(start)
}

// snapshot records the statistics of the current population.
func snapshot(pop *tsp.Population, index int, saveRate float64) (Generation, error) {
	scores, err := pop.FitnessScores(saveRate)
	if err != nil {
		return Generation{}, err
	}
	lengths := pop.Lengths()

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	mean, std := stat.MeanStdDev(lengths, nil)

	return Generation{
		Index:        index,
		Best:         lengths[best],
		Mean:         mean,
		StdDev:       std,
		MeanSurvival: stat.Mean(scores, nil),
	}, nil
}

// Solve builds a population of popSize over m from the stream'th derived
// generator of seed and runs it. Trials of one seed use streams 0, 1, ...
func Solve(ctx context.Context, m *citymap.DistanceMap, popSize int, seed, stream uint64, opts Options, log *zap.Logger) (Result, error) {
	rng := tsp.DeriveRand(seed, stream)
	pop, err := tsp.NewPopulation(m, popSize, rng)
	if err != nil {
		return Result{}, err
	}
	return Run(ctx, pop, rng, opts, log)
}
