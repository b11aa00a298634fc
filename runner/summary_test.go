package runner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/runner"
)

func TestSummarize(t *testing.T) {
	s, err := runner.Summarize([]float64{4, 1, 3, 2, 5})
	require.NoError(t, err)
	require.Equal(t, 5, s.Trials)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 5.0, s.Max)
	require.Equal(t, 3.0, s.Mean)
	require.Equal(t, 3.0, s.Median)
	require.GreaterOrEqual(t, s.P90, s.Median)
	require.LessOrEqual(t, s.P90, s.Max)
	require.InDelta(t, 1.4142135623730951, s.StdDev, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := runner.Summarize(nil)
	require.Error(t, err)
}
