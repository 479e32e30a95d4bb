package spline

import "fmt"

// SolveTridiag solves the tridiagonal system
//
//	| b0 c0          |   | out0 |   | r0 |
//	| a1 b1 c1       |   | out1 |   | r1 |
//	|    ..  ..  ..  | * | ..   | = | .. |
//	|        an  bn  |   | outn |   | rn |
//
// for out0..outn in place in the supplied slice, using the Thomas
// algorithm (forward elimination, back substitution). a0 and the last c
// entry are ignored; all five slices must share one length.
//
// Returns ErrLengthMismatch on ragged inputs and ErrSingular when a pivot
// vanishes during elimination (the algorithm performs no pivoting, which
// is safe for the diagonally dominant systems produced by spline fitting).
//
// Complexity: O(n) time, O(n) scratch memory.
func SolveTridiag(a, b, c, r, out []float64) error {
	n := len(b)
	if len(a) != n || len(c) != n || len(r) != n || len(out) != n {
		return fmt.Errorf("%w: a=%d b=%d c=%d r=%d out=%d",
			ErrLengthMismatch, len(a), n, len(c), len(r), len(out))
	}
	if n == 0 {
		return nil
	}

	scratch := make([]float64, n)

	beta := b[0]
	if beta == 0 {
		return fmt.Errorf("%w: zero pivot at row 0", ErrSingular)
	}
	out[0] = r[0] / beta

	// forward sweep
	for i := 1; i < n; i++ {
		scratch[i] = c[i-1] / beta
		beta = b[i] - a[i]*scratch[i]
		if beta == 0 {
			return fmt.Errorf("%w: zero pivot at row %d", ErrSingular, i)
		}
		out[i] = (r[i] - a[i]*out[i-1]) / beta
	}

	// back substitution
	for i := n - 2; i >= 0; i-- {
		out[i] -= scratch[i+1] * out[i+1]
	}

	return nil
}
