package viz_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/citymap"
	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/tsp"
	"github.com/katalvlaran/gatsp/viz"
)

func square(t *testing.T) *citymap.DistanceMap {
	t.Helper()
	m, err := citymap.FromPoints([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}})
	require.NoError(t, err)
	return m
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestSaveTour(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tour.png", "tour.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, viz.SaveTour(path, square(t), []int{0, 1, 2, 3}, "square"))
		requireNonEmptyFile(t, path)
	}
}

func TestTourPlot_RejectsBadOrder(t *testing.T) {
	_, err := viz.TourPlot(square(t), []int{0, 1, 1, 3}, "bad")
	require.ErrorIs(t, err, tsp.ErrNotPermutation)
}

func TestSaveConvergence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, viz.SaveConvergence(path, []float64{6, 5, 4.5, 4}, []float64{7, 6, 5, 4.2}, "run"))
	requireNonEmptyFile(t, path)

	p, err := viz.ConvergencePlot([]float64{3, 2}, nil, "best only")
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestConvergencePlot_Empty(t *testing.T) {
	_, err := viz.ConvergencePlot(nil, nil, "empty")
	require.ErrorIs(t, err, viz.ErrEmptySeries)
}
