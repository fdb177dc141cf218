package interpoly

import (
	"fmt"
	"slices"
)

// InterPoly is an interpolating polynomial in Newton form which can be
// grown one point at a time.
//
// The divided-difference table is stored flat: row n (1-based, the row
// appended together with the n-th point) starts at rowOffset(n) and holds
// n entries, f[x_n], f[x_{n-1},x_n], ..., f[x_1,...,x_n]. The last entry
// of each row is the Newton coefficient for that row.
//
// InterPoly is not safe for concurrent use.
type InterPoly struct {
	x     []float64
	coef  []float64
	table []float64
}

// Create
func New() *InterPoly {
	return &InterPoly{}
}

// NewFromPoints creates an interpolator through the points (xs[i], ys[i]),
// added in order.
func NewFromPoints(xs, ys []float64) (*InterPoly, error) {
	f := New()
	if err := f.AddPoints(xs, ys); err != nil {
		return nil, err
	}
	return f, nil
}

// rowOffset returns the index of the first table entry of row n.
func rowOffset(n int) int {
	return n * (n - 1) / 2
}

// AddPoint adds the sample (Xn, Yn). It costs O(n) time and space for the
// n-th point. If Xn has already been added the interpolator is left
// unchanged and ErrDuplicateAbscissa is returned.
func (f *InterPoly) AddPoint(Xn, Yn float64) error {
	if i := slices.Index(f.x, Xn); i >= 0 {
		return fmt.Errorf("%w: x=%v (point %d)", ErrDuplicateAbscissa, Xn, i+1)
	}

	n := len(f.x) + 1
	prev := f.table[rowOffset(n-1):]
	f.table = slices.Grow(f.table, n)
	f.table = append(f.table, Yn)

	v := Yn
	for k := n - 1; k >= 1; k-- {
		// prev[n-k-1] is f[x_k,...,x_{n-1}]
		v = (v - prev[n-k-1]) / (Xn - f.x[k-1])
		f.table = append(f.table, v)
	}

	f.x = append(f.x, Xn)
	f.coef = append(f.coef, v)
	return nil
}

// AddPoints adds the samples (xs[i], ys[i]) in order. The whole batch is
// validated first: on error nothing is added.
func (f *InterPoly) AddPoints(xs, ys []float64) error {
	if err := f.checkBatch(xs, ys); err != nil {
		return err
	}
	for i := range xs {
		if err := f.AddPoint(xs[i], ys[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *InterPoly) checkBatch(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x-values, %d y-values", ErrLengthMismatch, len(xs), len(ys))
	}
	seen := make(map[float64]int, len(f.x)+len(xs))
	for i, x := range f.x {
		seen[x] = i + 1
	}
	for i, x := range xs {
		if j, ok := seen[x]; ok {
			return fmt.Errorf("%w: x=%v (point %d)", ErrDuplicateAbscissa, x, j)
		}
		seen[x] = len(f.x) + i + 1
	}
	return nil
}

// F evaluates the polynomial at xi by nested multiplication. The empty
// interpolator is the zero polynomial.
func (f *InterPoly) F(xi float64) float64 {
	n := len(f.coef)
	if n == 0 {
		return 0
	}
	res := f.coef[n-1]
	for i := n - 2; i >= 0; i-- {
		res = res*(xi-f.x[i]) + f.coef[i]
	}
	return res
}

// Evaluate is an alias for F.
func (f *InterPoly) Evaluate(xi float64) float64 {
	return f.F(xi)
}

// Assign makes f an independent copy of s.
func (f *InterPoly) Assign(s *InterPoly) {
	f.x = slices.Clone(s.x)
	f.coef = slices.Clone(s.coef)
	f.table = slices.Clone(s.table)
}

func (f *InterPoly) Clone() *InterPoly {
	c := New()
	c.Assign(f)
	return c
}

func (f *InterPoly) GetNdots() int {
	return len(f.x)
}

// Abscissas returns a copy of the sample x-values in insertion order.
func (f *InterPoly) Abscissas() []float64 {
	return slices.Clone(f.x)
}

// Coefficients returns a copy of the Newton coefficients c_1..c_n.
func (f *InterPoly) Coefficients() []float64 {
	return slices.Clone(f.coef)
}

// Row returns a copy of row n (1-based) of the divided-difference table,
// or nil if n is out of range.
func (f *InterPoly) Row(n int) []float64 {
	if n < 1 || n > len(f.x) {
		return nil
	}
	off := rowOffset(n)
	return slices.Clone(f.table[off : off+n])
}

func (f *InterPoly) String() string {
	s := "\nInterpolating polynomial:\n"
	s = fmt.Sprintf("%s\tndots: %v\n", s, len(f.x))
	s = fmt.Sprintf("%s\tx: %v\n", s, f.x)
	s = fmt.Sprintf("%s\tcoefficients: %v\n", s, f.coef)
	return s
}
