package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/citymap"
	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/runner"
	"github.com/katalvlaran/gatsp/viz"
)

// run builds the map, runs every trial, renders the requested plots, and
// prints a summary to out.
func run(ctx context.Context, cfg config.Config, log *zap.Logger, out io.Writer) error {
	gen, err := citymap.NewGenerator(
		citymap.WithBounds(cfg.Width, cfg.Height),
		citymap.WithIntegerCoordinates(cfg.IntegerCoords),
		citymap.WithSeed(cfg.MapSeed),
	)
	if err != nil {
		return err
	}
	m, err := citymap.Build(cfg.Cities, gen)
	if err != nil {
		return err
	}

	opts := runner.Options{
		Generations:      cfg.Generations,
		MutationFraction: cfg.MutationFraction,
		SaveRate:         cfg.SaveRate,
		ReportEvery:      cfg.ReportEvery,
		Polish:           cfg.Polish,
	}
	log.Info("starting",
		zap.Int("cities", cfg.Cities),
		zap.Int("population", cfg.Population),
		zap.Int("generations", cfg.Generations),
		zap.Int("trials", cfg.Trials),
	)

	start := time.Now()
	finals := make([]float64, 0, cfg.Trials)
	var best runner.Result
	for trial := 0; trial < cfg.Trials; trial++ {
		res, err := runner.Solve(ctx, m, cfg.Population, cfg.Seed, uint64(trial), opts, log.With(zap.Int("trial", trial)))
		if err != nil {
			return fmt.Errorf("trial %d: %w", trial, err)
		}
		if trial == 0 && cfg.Output.InitialTour != "" {
			if err = viz.SaveTour(cfg.Output.InitialTour, m, res.Initial.Order(), "initial best"); err != nil {
				return err
			}
		}

		length := res.Best.Length()
		log.Info("trial finished",
			zap.Int("trial", trial),
			zap.Float64("initial", res.Initial.Length()),
			zap.Float64("best", length),
			zap.Duration("elapsed", res.Elapsed),
		)
		finals = append(finals, length)
		if best.Best == nil || length < best.Best.Length() {
			best = res
		}
	}

	if err = render(cfg.Output, m, best); err != nil {
		return err
	}

	sum, err := runner.Summarize(finals)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s cities, %s tours, %s generations × %s trials in %s\n",
		humanize.Comma(int64(cfg.Cities)),
		humanize.Comma(int64(cfg.Population)),
		humanize.Comma(int64(cfg.Generations)),
		humanize.Comma(int64(sum.Trials)),
		time.Since(start).Round(time.Millisecond),
	)
	fmt.Fprintf(out, "best %s  median %s  p90 %s  mean %s\n",
		humanize.FormatFloat("#,###.##", sum.Min),
		humanize.FormatFloat("#,###.##", sum.Median),
		humanize.FormatFloat("#,###.##", sum.P90),
		humanize.FormatFloat("#,###.##", sum.Mean),
	)
	fmt.Fprintf(out, "tour %v\n", best.Best)

	return nil
}

func render(o config.Output, m *citymap.DistanceMap, res runner.Result) error {
	if o.FinalTour != "" {
		if err := viz.SaveTour(o.FinalTour, m, res.Best.Order(), "final best"); err != nil {
			return err
		}
	}
	if o.Convergence != "" {
		mean := make([]float64, len(res.History))
		for i, g := range res.History {
			mean[i] = g.Mean
		}
		if err := viz.SaveConvergence(o.Convergence, res.BestLengths(), mean, "best length per generation"); err != nil {
			return err
		}
	}
	return nil
}
