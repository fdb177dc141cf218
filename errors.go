package interpoly

import "errors"

var (
	// ErrDuplicateAbscissa is returned when a point is added whose x equals
	// the x of a point already added.
	ErrDuplicateAbscissa = errors.New("duplicate abscissa")
	// ErrLengthMismatch is returned when x- and y-sequences differ in length.
	ErrLengthMismatch = errors.New("x and y lengths differ")
	// ErrNoSamples is returned when a curve is sampled at fewer than one point.
	ErrNoSamples = errors.New("number of samples must be positive")
	// ErrNonFinite is returned by BigInterPoly for infinite x or y.
	ErrNonFinite = errors.New("non-finite sample")
)
