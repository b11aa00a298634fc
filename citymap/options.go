// SPDX-License-Identifier: MIT
// Package: gatsp/citymap
//
// options.go - functional options for NewGenerator.
//
// Contract:
//   • Option constructors PANIC on programmer errors (nil source).
//   • Bounds are validated by NewGenerator, which returns ErrBadBounds.
//   • Determinism is explicit: seed via WithSeed or pass a source via WithSource.

package citymap

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Defaults follow the classic 100×200 demo map.
const (
	DefaultWidth  = 100.0
	DefaultHeight = 200.0

	defaultSeed uint64 = 1
)

// GeneratorOption customizes NewGenerator.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	width, height float64
	integer       bool
	src           rand.Source
}

// WithBounds sets the map box [0,width)×[0,height).
func WithBounds(width, height float64) GeneratorOption {
	return func(c *generatorConfig) {
		c.width, c.height = width, height
	}
}

// WithIntegerCoordinates snaps cities to integer grid points.
func WithIntegerCoordinates(on bool) GeneratorOption {
	return func(c *generatorConfig) {
		c.integer = on
	}
}

// WithSource provides the random source. Panics on nil.
func WithSource(src rand.Source) GeneratorOption {
	if src == nil {
		panic("citymap: WithSource(nil)")
	}
	return func(c *generatorConfig) {
		c.src = src
	}
}

// WithSeed seeds a fresh source; seed 0 maps to a fixed default seed.
func WithSeed(seed uint64) GeneratorOption {
	if seed == 0 {
		seed = defaultSeed
	}
	return func(c *generatorConfig) {
		c.src = rand.NewSource(seed)
	}
}

// NewGenerator assembles a Uniform or Grid generator from opts.
// Later options override earlier ones.
//
// Errors: ErrBadBounds for non-positive bounds, or, with integer coordinates,
// bounds below 1.
func NewGenerator(opts ...GeneratorOption) (Generator, error) {
	c := generatorConfig{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		c.src = rand.NewSource(defaultSeed)
	}
	if !(c.width > 0) || !(c.height > 0) {
		return nil, fmt.Errorf("%gx%g: %w", c.width, c.height, ErrBadBounds)
	}

	if c.integer {
		w, h := int(c.width), int(c.height)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("%gx%g: %w", c.width, c.height, ErrBadBounds)
		}
		return Grid(w, h, rand.New(c.src)), nil
	}

	return Uniform(c.width, c.height, c.src), nil
}
