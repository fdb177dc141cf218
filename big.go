package interpoly

import (
	"fmt"
	"math/big"
	"slices"
)

// BigInterPoly is InterPoly over *big.Float. All intermediate results are
// rounded to prec bits. Use NewBig; the zero value has no precision set.
type BigInterPoly struct {
	prec  uint
	x     []*big.Float
	coef  []*big.Float
	table []*big.Float
}

// NewBig creates an empty interpolator working at prec bits of mantissa.
// prec == 0 means 53 bits, the precision of a float64.
func NewBig(prec uint) *BigInterPoly {
	if prec == 0 {
		prec = 53
	}
	return &BigInterPoly{prec: prec}
}

func (f *BigInterPoly) newFloat() *big.Float {
	return new(big.Float).SetPrec(f.prec)
}

func (f *BigInterPoly) Prec() uint {
	return f.prec
}

// AddPoint adds the sample (Xn, Yn). The arguments are copied and rounded
// to the interpolator's precision; Xn is checked for duplicates after
// rounding. Infinite arguments are rejected with ErrNonFinite.
func (f *BigInterPoly) AddPoint(Xn, Yn *big.Float) error {
	if Yn.IsInf() {
		return fmt.Errorf("%w: y=%v", ErrNonFinite, Yn)
	}
	xn, err := f.roundAbscissa(Xn)
	if err != nil {
		return err
	}
	if i := f.indexAbscissa(f.x, xn); i >= 0 {
		return fmt.Errorf("%w: x=%v (point %d)", ErrDuplicateAbscissa, xn, i+1)
	}

	n := len(f.x) + 1
	prev := f.table[rowOffset(n-1):]
	row := make([]*big.Float, 0, n)
	v := f.newFloat().Set(Yn)
	row = append(row, v)

	for k := n - 1; k >= 1; k-- {
		// v = (v - f[x_k,...,x_{n-1}]) / (xn - x_k)
		dx := f.newFloat().Sub(xn, f.x[k-1])
		next := f.newFloat().Sub(v, prev[n-k-1])
		next.Quo(next, dx)
		row = append(row, next)
		v = next
	}

	f.table = append(f.table, row...)
	f.x = append(f.x, xn)
	f.coef = append(f.coef, v)
	return nil
}

// roundAbscissa returns a copy of x rounded to f's precision.
func (f *BigInterPoly) roundAbscissa(x *big.Float) (*big.Float, error) {
	if x.IsInf() {
		return nil, fmt.Errorf("%w: x=%v", ErrNonFinite, x)
	}
	return f.newFloat().Set(x), nil
}

func (f *BigInterPoly) indexAbscissa(xs []*big.Float, x *big.Float) int {
	return slices.IndexFunc(xs, func(v *big.Float) bool { return v.Cmp(x) == 0 })
}

// AddPoints adds the samples (xs[i], ys[i]) in order. On error nothing is
// added.
func (f *BigInterPoly) AddPoints(xs, ys []*big.Float) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x-values, %d y-values", ErrLengthMismatch, len(xs), len(ys))
	}
	all := slices.Clone(f.x)
	for i := range xs {
		if ys[i].IsInf() {
			return fmt.Errorf("%w: y=%v", ErrNonFinite, ys[i])
		}
		xn, err := f.roundAbscissa(xs[i])
		if err != nil {
			return err
		}
		if j := f.indexAbscissa(all, xn); j >= 0 {
			return fmt.Errorf("%w: x=%v (point %d)", ErrDuplicateAbscissa, xn, j+1)
		}
		all = append(all, xn)
	}
	for i := range xs {
		if err := f.AddPoint(xs[i], ys[i]); err != nil {
			return err
		}
	}
	return nil
}

// AddPointFloat64 is AddPoint for float64 arguments.
func (f *BigInterPoly) AddPointFloat64(Xn, Yn float64) error {
	return f.AddPoint(big.NewFloat(Xn), big.NewFloat(Yn))
}

// F evaluates the polynomial at xi. The result is newly allocated; the
// empty interpolator evaluates to zero.
func (f *BigInterPoly) F(xi *big.Float) *big.Float {
	n := len(f.coef)
	res := f.newFloat()
	if n == 0 {
		return res
	}
	res.Set(f.coef[n-1])
	dx := f.newFloat()
	for i := n - 2; i >= 0; i-- {
		// res = res*(xi - x_i) + c_i
		dx.Sub(xi, f.x[i])
		res.Mul(res, dx)
		res.Add(res, f.coef[i])
	}
	return res
}

// Assign makes f an independent copy of s.
func (f *BigInterPoly) Assign(s *BigInterPoly) {
	f.prec = s.prec
	f.x = cloneFloats(s.x)
	f.coef = cloneFloats(s.coef)
	f.table = cloneFloats(s.table)
}

func (f *BigInterPoly) Clone() *BigInterPoly {
	c := NewBig(f.prec)
	c.Assign(f)
	return c
}

func cloneFloats(s []*big.Float) []*big.Float {
	if s == nil {
		return nil
	}
	c := make([]*big.Float, len(s))
	for i, v := range s {
		c[i] = new(big.Float).Copy(v)
	}
	return c
}

func (f *BigInterPoly) GetNdots() int {
	return len(f.x)
}

// Coefficients returns copies of the Newton coefficients.
func (f *BigInterPoly) Coefficients() []*big.Float {
	return cloneFloats(f.coef)
}

// Float64 returns a float64 interpolator through the same samples, in the
// same order. Samples that collide after rounding to float64 are an error.
func (f *BigInterPoly) Float64() (*InterPoly, error) {
	xs := make([]float64, len(f.x))
	ys := make([]float64, len(f.x))
	for i := range f.x {
		xs[i], _ = f.x[i].Float64()
		ys[i], _ = f.table[rowOffset(i+1)].Float64()
	}
	return NewFromPoints(xs, ys)
}

func (f *BigInterPoly) String() string {
	s := "\nInterpolating polynomial (big):\n"
	s = fmt.Sprintf("%s\tprec: %v; ndots: %v\n", s, f.prec, len(f.x))
	s = fmt.Sprintf("%s\tx: %v\n", s, f.x)
	s = fmt.Sprintf("%s\tcoefficients: %v\n", s, f.coef)
	return s
}
