package interpoly

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFloats(vs ...float64) []*big.Float {
	r := make([]*big.Float, len(vs))
	for i, v := range vs {
		r[i] = big.NewFloat(v)
	}
	return r
}

func TestBigAddPoint(t *testing.T) {
	f := NewBig(0)
	assert.Equal(t, uint(53), f.Prec())
	assert.Equal(t, 0, f.F(big.NewFloat(3)).Sign())

	require.NoError(t, f.AddPointFloat64(0, 1))
	require.NoError(t, f.AddPointFloat64(1, 2))
	require.NoError(t, f.AddPointFloat64(2, 5))

	for x, want := range map[float64]float64{0: 1, 1: 2, 2: 5, 3: 10, -4: 17} {
		got, _ := f.F(big.NewFloat(x)).Float64()
		assert.Equal(t, want, got, "x=%v", x)
	}
	for _, c := range f.Coefficients() {
		assert.Equal(t, 0, c.Cmp(big.NewFloat(1)))
	}
	t.Logf("%v", f)
}

func TestBigMatchesFloat64(t *testing.T) {
	xs := []float64{-1.5, 0.3, 2, 4.25, -3, 7}
	ys := []float64{2, -1, 0.5, 3, 8, -2}

	b := NewBig(256)
	require.NoError(t, b.AddPoints(bigFloats(xs...), bigFloats(ys...)))
	f, err := NewFromPoints(xs, ys)
	require.NoError(t, err)

	for _, x := range []float64{-3, -1, 0, 1.1, 4.25, 6} {
		got, _ := b.F(big.NewFloat(x)).Float64()
		assert.InDelta(t, f.F(x), got, 1e-9, "x=%v", x)
	}

	g, err := b.Float64()
	require.NoError(t, err)
	assert.Equal(t, f.Abscissas(), g.Abscissas())
	for n := 1; n <= len(xs); n++ {
		assert.Equal(t, ys[n-1], g.Row(n)[0])
	}
}

func TestBigHighOrder(t *testing.T) {
	// y = x^14 sampled at the integers 0..14 has a single non-zero
	// divided difference of order 14, equal to 1.
	b := NewBig(512)
	for i := int64(0); i <= 14; i++ {
		x := new(big.Float).SetInt64(i)
		y := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(i), big.NewInt(14), nil))
		require.NoError(t, b.AddPoint(x, y))
	}
	c14, _ := b.Coefficients()[14].Float64()
	assert.InDelta(t, 1.0, c14, 1e-12)

	got := b.F(big.NewFloat(20))
	want := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(20), big.NewInt(14), nil))
	rel := new(big.Float).Sub(got, want)
	rel.Quo(rel, want).Abs(rel)
	assert.True(t, rel.Cmp(big.NewFloat(1e-100)) < 0, "F(20)=%v, want %v", got, want)
}

func TestBigDuplicate(t *testing.T) {
	b := NewBig(64)
	require.NoError(t, b.AddPointFloat64(1, 5))
	before := b.Clone()

	assert.ErrorIs(t, b.AddPointFloat64(1, 9), ErrDuplicateAbscissa)
	assert.Equal(t, before, b)

	assert.ErrorIs(t, b.AddPoints(bigFloats(2, 3), bigFloats(1)), ErrLengthMismatch)
	assert.ErrorIs(t, b.AddPoints(bigFloats(2, 2), bigFloats(1, 1)), ErrDuplicateAbscissa)
	assert.ErrorIs(t, b.AddPoints(bigFloats(2, 1), bigFloats(1, 1)), ErrDuplicateAbscissa)
	assert.Equal(t, before, b)

	v, _ := b.F(big.NewFloat(1)).Float64()
	assert.Equal(t, 5.0, v)
}

func TestBigClone(t *testing.T) {
	b := NewBig(128)
	require.NoError(t, b.AddPoints(bigFloats(0, 1), bigFloats(1, 3)))
	c := b.Clone()
	require.NoError(t, c.AddPointFloat64(2, 0))

	assert.Equal(t, 2, b.GetNdots())
	assert.Equal(t, 3, c.GetNdots())
	assert.Equal(t, uint(128), c.Prec())

	v, _ := b.F(big.NewFloat(2)).Float64()
	assert.Equal(t, 5.0, v)
}

func TestBigDuplicateAfterRounding(t *testing.T) {
	// 2^53 and 2^53+1 are distinct at 64 bits but equal at 53.
	x0 := new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 53))
	x1 := new(big.Float).SetInt(new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 53), big.NewInt(1)))
	require.NotEqual(t, 0, x0.Cmp(x1))

	for _, y1 := range []float64{1, 2} {
		b := NewBig(0)
		require.NoError(t, b.AddPoint(x0, big.NewFloat(1)))
		before := b.Clone()

		assert.ErrorIs(t, b.AddPoint(x1, big.NewFloat(y1)), ErrDuplicateAbscissa, "y=%v", y1)
		assert.Equal(t, before, b)
		assert.Len(t, b.table, 1)

		assert.ErrorIs(t, b.AddPoints([]*big.Float{x1}, bigFloats(y1)), ErrDuplicateAbscissa)
		assert.Equal(t, before, b)
	}

	b := NewBig(0)
	assert.ErrorIs(t, b.AddPoints([]*big.Float{x0, x1}, bigFloats(1, 2)), ErrDuplicateAbscissa)
	assert.Equal(t, 0, b.GetNdots())

	// At 64 bits they stay apart.
	b = NewBig(64)
	require.NoError(t, b.AddPoints([]*big.Float{x0, x1}, bigFloats(1, 2)))
	c1, _ := b.Coefficients()[1].Float64()
	assert.Equal(t, 1.0, c1)
}

func TestBigNonFinite(t *testing.T) {
	inf := math.Inf(1)

	b := NewBig(0)
	require.NoError(t, b.AddPointFloat64(0, 1))
	before := b.Clone()

	assert.ErrorIs(t, b.AddPointFloat64(1, inf), ErrNonFinite)
	assert.ErrorIs(t, b.AddPointFloat64(inf, 1), ErrNonFinite)
	assert.ErrorIs(t, b.AddPointFloat64(math.Inf(-1), 1), ErrNonFinite)
	assert.ErrorIs(t, b.AddPoints(bigFloats(1, 2), bigFloats(3, inf)), ErrNonFinite)
	assert.ErrorIs(t, b.AddPoints(bigFloats(1, inf), bigFloats(3, 4)), ErrNonFinite)
	assert.Equal(t, before, b)
	assert.Len(t, b.table, 1)
	assert.Equal(t, 1, b.GetNdots())

	e := NewBig(0)
	assert.ErrorIs(t, e.AddPointFloat64(0, inf), ErrNonFinite)
	assert.Equal(t, 0, e.GetNdots())
	assert.Empty(t, e.table)
}

func TestBigCloneKeepsPrecision(t *testing.T) {
	b := NewBig(200)
	c := b.Clone()
	assert.Equal(t, uint(200), c.Prec())

	require.NoError(t, c.AddPoint(new(big.Float).SetInt64(0), new(big.Float).Quo(big.NewFloat(1), big.NewFloat(3))))
	assert.Equal(t, uint(200), c.Coefficients()[0].Prec())
	assert.Equal(t, 0, b.GetNdots())
}
