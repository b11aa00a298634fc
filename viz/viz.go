// Package viz renders a tour over its city map and the convergence curve of
// a run, using gonum/plot. The format follows the file extension passed to
// the Save helpers (.png, .svg, .pdf, ...).
//
// Renderers only read the map and the orders they are given.
package viz

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gatsp/citymap"
	"github.com/katalvlaran/gatsp/tsp"
)

// Default image size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// ErrEmptySeries is returned when a convergence plot has no points.
var ErrEmptySeries = errors.New("viz: empty series")

// TourPlot draws every city as a point and the tour as a closed polyline.
func TourPlot(m *citymap.DistanceMap, order []int, title string) (*plot.Plot, error) {
	if err := tsp.ValidatePermutation(order, m.Count()); err != nil {
		return nil, fmt.Errorf("tour plot: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	cities := make(plotter.XYs, m.Count())
	for i, pt := range m.Coordinates() {
		cities[i].X, cities[i].Y = pt.X, pt.Y
	}

	// n+1 points: the last repeats the first to close the cycle.
	path := make(plotter.XYs, len(order)+1)
	for i, c := range order {
		pt := m.Point(c)
		path[i].X, path[i].Y = pt.X, pt.Y
	}
	path[len(order)] = path[0]

	line, err := plotter.NewLine(path)
	if err != nil {
		return nil, err
	}
	scatter, err := plotter.NewScatter(cities)
	if err != nil {
		return nil, err
	}
	p.Add(line, scatter)

	return p, nil
}

// ConvergencePlot draws best length per generation and, when mean is
// non-nil, the mean length as a second line.
func ConvergencePlot(best, mean []float64, title string) (*plot.Plot, error) {
	if len(best) == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Length"

	bestLine, err := plotter.NewLine(series(best))
	if err != nil {
		return nil, err
	}
	p.Add(bestLine)
	p.Legend.Add("best", bestLine)

	if mean != nil {
		meanLine, err := plotter.NewLine(series(mean))
		if err != nil {
			return nil, err
		}
		meanLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(meanLine)
		p.Legend.Add("mean", meanLine)
	}
	p.Legend.Top = true

	return p, nil
}

func series(ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(i)
		pts[i].Y = y
	}
	return pts
}

// SaveTour renders a tour to path at the default size.
func SaveTour(path string, m *citymap.DistanceMap, order []int, title string) error {
	p, err := TourPlot(m, order, title)
	if err != nil {
		return err
	}
	return p.Save(DefaultWidth, DefaultHeight, path)
}

// SaveConvergence renders a convergence curve to path.
func SaveConvergence(path string, best, mean []float64, title string) error {
	p, err := ConvergencePlot(best, mean, title)
	if err != nil {
		return err
	}
	return p.Save(DefaultWidth, 4*vg.Inch, path)
}
