package runner

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary aggregates the final best lengths of several trials.
type Summary struct {
	Trials int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	P90    float64
	StdDev float64
}

// Summarize computes a Summary over lengths. It fails on empty input.
func Summarize(lengths []float64) (Summary, error) {
	data := stats.Float64Data(lengths)

	lo, err := data.Min()
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	hi, err := data.Max()
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	mean, err := data.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	p90, err := stats.Percentile(data, 90)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	std, err := data.StandardDeviation()
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	return Summary{
		Trials: len(lengths),
		Min:    lo,
		Max:    hi,
		Mean:   mean,
		Median: median,
		P90:    p90,
		StdDev: std,
	}, nil
}
