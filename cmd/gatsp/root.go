package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gatsp/config"
)

// newRootCmd wires flags onto a default Config; only flags the user set
// override the config file.
func newRootCmd() *cobra.Command {
	var (
		path string
		cfg  = config.Default()
	)

	cmd := &cobra.Command{
		Use:          "gatsp",
		Short:        "Evolve short TSP tours with a genetic algorithm",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			final, err := resolveConfig(path, cfg, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(final.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cmd.Context(), final, log, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&path, "config", "c", "", "config file (.yaml, .yml or .toml)")
	f.IntVar(&cfg.Cities, "cities", cfg.Cities, "number of cities")
	f.Float64Var(&cfg.Width, "width", cfg.Width, "map width")
	f.Float64Var(&cfg.Height, "height", cfg.Height, "map height")
	f.BoolVar(&cfg.IntegerCoords, "integer-coords", cfg.IntegerCoords, "snap cities to integer coordinates")
	f.Uint64Var(&cfg.MapSeed, "map-seed", cfg.MapSeed, "seed of the city map")
	f.IntVarP(&cfg.Population, "population", "p", cfg.Population, "population size")
	f.IntVarP(&cfg.Generations, "generations", "g", cfg.Generations, "number of generations")
	f.Float64VarP(&cfg.MutationFraction, "mutation", "m", cfg.MutationFraction, "swaps per mutant as a fraction of the city count")
	f.Float64Var(&cfg.SaveRate, "save-rate", cfg.SaveRate, "maximum survival score used for reporting, in (0,1]")
	f.Uint64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "seed of the evolution streams")
	f.IntVarP(&cfg.Trials, "trials", "t", cfg.Trials, "independent runs on the same map")
	f.IntVar(&cfg.ReportEvery, "report-every", cfg.ReportEvery, "log progress every k generations (0 = never)")
	f.BoolVar(&cfg.Polish, "polish", cfg.Polish, "apply 2-opt to the final best tour of every trial")
	f.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn or error")
	f.BoolVar(&cfg.Log.Development, "log-dev", cfg.Log.Development, "human-friendly console logs")
	f.StringVar(&cfg.Output.InitialTour, "initial-tour", "", "render the initial best tour of trial 0 to this file")
	f.StringVar(&cfg.Output.FinalTour, "final-tour", "", "render the final best tour of the best trial to this file")
	f.StringVar(&cfg.Output.Convergence, "convergence", "", "render the convergence curve of the best trial to this file")

	return cmd
}

// resolveConfig layers defaults, the config file, then explicitly set flags.
func resolveConfig(path string, flagged config.Config, flags *pflag.FlagSet) (config.Config, error) {
	cfg := flagged
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		flags.Visit(func(f *pflag.Flag) {
			overlay(&cfg, flagged, f.Name)
		})
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// overlay copies the field bound to flag name from src into dst.
func overlay(dst *config.Config, src config.Config, name string) {
	switch name {
	case "cities":
		dst.Cities = src.Cities
	case "width":
		dst.Width = src.Width
	case "height":
		dst.Height = src.Height
	case "integer-coords":
		dst.IntegerCoords = src.IntegerCoords
	case "map-seed":
		dst.MapSeed = src.MapSeed
	case "population":
		dst.Population = src.Population
	case "generations":
		dst.Generations = src.Generations
	case "mutation":
		dst.MutationFraction = src.MutationFraction
	case "save-rate":
		dst.SaveRate = src.SaveRate
	case "seed":
		dst.Seed = src.Seed
	case "trials":
		dst.Trials = src.Trials
	case "report-every":
		dst.ReportEvery = src.ReportEvery
	case "polish":
		dst.Polish = src.Polish
	case "log-level":
		dst.Log.Level = src.Log.Level
	case "log-dev":
		dst.Log.Development = src.Log.Development
	case "initial-tour":
		dst.Output.InitialTour = src.Output.InitialTour
	case "final-tour":
		dst.Output.FinalTour = src.Output.FinalTour
	case "convergence":
		dst.Output.Convergence = src.Output.Convergence
	}
}

func newLogger(c config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
