// SPDX-License-Identifier: MIT
// Package citymap: sentinel errors. Callers match them with errors.Is.

package citymap

import "errors"

var (
	// ErrTooFewCities is returned when a map is requested with fewer than two cities.
	ErrTooFewCities = errors.New("citymap: at least two cities are required")

	// ErrNilGenerator indicates that Build was called without a coordinate generator.
	ErrNilGenerator = errors.New("citymap: nil coordinate generator")

	// ErrBadBounds indicates non-positive map width or height.
	ErrBadBounds = errors.New("citymap: bounds must be > 0")

	// ErrBadCoordinate signals a NaN or ±Inf coordinate.
	ErrBadCoordinate = errors.New("citymap: NaN or Inf coordinate")
)
