package spline

import "errors"

var (
	// ErrLengthMismatch indicates the knot and value slices differ in length.
	ErrLengthMismatch = errors.New("spline: xs and ys lengths differ")

	// ErrTooFewPoints indicates fewer than the three knots a cubic spline needs.
	ErrTooFewPoints = errors.New("spline: at least 3 points required")

	// ErrNotStrictlyIncreasing indicates duplicated or inverted knots.
	ErrNotStrictlyIncreasing = errors.New("spline: knots not strictly increasing")

	// ErrOutOfRange indicates an evaluation point outside the knot interval.
	ErrOutOfRange = errors.New("spline: evaluation point outside knot range")

	// ErrSingular indicates a tridiagonal system with a vanishing pivot.
	ErrSingular = errors.New("spline: tridiagonal system is singular")
)
