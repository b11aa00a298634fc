// Package config holds the run configuration of the gatsp command: defaults,
// loading from YAML or TOML files, and validation.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Config is a complete description of a run.
type Config struct {
	Cities           int     `yaml:"cities" toml:"cities"`
	Width            float64 `yaml:"width" toml:"width"`
	Height           float64 `yaml:"height" toml:"height"`
	IntegerCoords    bool    `yaml:"integer_coords" toml:"integer_coords"`
	MapSeed          uint64  `yaml:"map_seed" toml:"map_seed"`
	Population       int     `yaml:"population" toml:"population"`
	Generations      int     `yaml:"generations" toml:"generations"`
	MutationFraction float64 `yaml:"mutation_fraction" toml:"mutation_fraction"`
	SaveRate         float64 `yaml:"save_rate" toml:"save_rate"`
	Seed             uint64  `yaml:"seed" toml:"seed"`
	Trials           int     `yaml:"trials" toml:"trials"`
	ReportEvery      int     `yaml:"report_every" toml:"report_every"`
	Polish           bool    `yaml:"polish" toml:"polish"`
	Log              Log     `yaml:"log" toml:"log"`
	Output           Output  `yaml:"output" toml:"output"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" toml:"level"`
	Development bool   `yaml:"development" toml:"development"`
}

// Output names the optional plot files; empty means "do not render".
type Output struct {
	InitialTour string `yaml:"initial_tour" toml:"initial_tour"`
	FinalTour   string `yaml:"final_tour" toml:"final_tour"`
	Convergence string `yaml:"convergence" toml:"convergence"`
}

// Default mirrors the classic demo: 100 cities on a 100×200 map, 1000 tours,
// 200 generations, 10 swaps per mutant, reporting with save rate 0.8.
func Default() Config {
	return Config{
		Cities:           100,
		Width:            100,
		Height:           200,
		IntegerCoords:    true,
		MapSeed:          1,
		Population:       1000,
		Generations:      200,
		MutationFraction: 0.1,
		SaveRate:         0.8,
		Seed:             1,
		Trials:           1,
		ReportEvery:      10,
		Log:              Log{Level: "info"},
	}
}

// Load reads path over the defaults. The format follows the extension:
// .yaml/.yml or .toml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Config{}, err
		}
		defer f.Close()

		d := yaml.NewDecoder(f)
		d.KnownFields(true)
		if err = d.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: decode %s: unknown key %q", path, undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	return cfg, nil
}

// Validate checks every field and reports the first invalid one.
func (c Config) Validate() error {
	switch {
	case c.Cities < 2:
		return invalid("cities", c.Cities, "need at least 2")
	case !(c.Width > 0) || math.IsInf(c.Width, 0):
		return invalid("width", c.Width, "must be > 0")
	case !(c.Height > 0) || math.IsInf(c.Height, 0):
		return invalid("height", c.Height, "must be > 0")
	case c.IntegerCoords && (c.Width < 1 || c.Height < 1):
		return invalid("width/height", fmt.Sprintf("%gx%g", c.Width, c.Height), "integer coordinates need bounds ≥ 1")
	case c.Population < 1:
		return invalid("population", c.Population, "must be ≥ 1")
	case c.Generations < 0:
		return invalid("generations", c.Generations, "must be ≥ 0")
	case !(c.MutationFraction >= 0):
		return invalid("mutation_fraction", c.MutationFraction, "must be ≥ 0")
	case !(c.SaveRate > 0 && c.SaveRate <= 1):
		return invalid("save_rate", c.SaveRate, "must be in (0, 1]")
	case c.Trials < 1:
		return invalid("trials", c.Trials, "must be ≥ 1")
	case c.ReportEvery < 0:
		return invalid("report_every", c.ReportEvery, "must be ≥ 0")
	}

	return nil
}

func invalid(field string, v any, why string) error {
	return fmt.Errorf("%w: %s=%v: %s", ErrInvalid, field, v, why)
}
