package interpoly

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Grid returns n evenly spaced points from xmin to xmax inclusive.
// With n == 1 the grid is just xmin.
func Grid(xmin, xmax float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoSamples, n)
	}
	xs := make([]float64, n)
	xs[0] = xmin
	if n == 1 {
		return xs, nil
	}
	step := (xmax - xmin) / float64(n-1)
	for i := 1; i < n-1; i++ {
		xs[i] = xmin + float64(i)*step
	}
	xs[n-1] = xmax
	return xs, nil
}

// Sample evaluates f on Grid(xmin, xmax, n).
func (f *InterPoly) Sample(xmin, xmax float64, n int) ([]float64, error) {
	xs, err := Grid(xmin, xmax, n)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = f.F(x)
	}
	return ys, nil
}

// YRange approximates the range of f over [xmin, xmax] from n samples.
func (f *InterPoly) YRange(xmin, xmax float64, n int) (ymin, ymax float64, err error) {
	ys, err := f.Sample(xmin, xmax, n)
	if err != nil {
		return 0, 0, err
	}
	if ymin, err = stats.Min(ys); err != nil {
		return 0, 0, err
	}
	if ymax, err = stats.Max(ys); err != nil {
		return 0, 0, err
	}
	return ymin, ymax, nil
}
