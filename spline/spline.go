package spline

import "fmt"

// Spline — natural cubic spline through a table of knots.
//
// Description:
//
//	A Spline fits one cubic polynomial per knot interval so that values,
//	first and second derivatives agree at every interior knot, and the
//	second derivative vanishes at both endpoints (the "natural" boundary).
//	On interval i the spline reads
//
//	  s(x) = ys[i] + b[i]·dt + c[i]·dt² + d[i]·dt³,  dt = x − xs[i].
//
// Algorithm Outline:
//  1. Assemble the symmetric tridiagonal system for the interior second
//     derivatives (endpoints pinned to zero by the natural boundary).
//  2. Solve it with SolveTridiag.
//  3. Convert second derivatives to per-interval polynomial coefficients.
//
// Complexity:
//
//	Fit      = O(n) time and memory
//	Evaluate = O(1) amortized on near-uniform knots, O(log n) worst case
//
// Errors:
//   - ErrLengthMismatch        — xs and ys differ in length.
//   - ErrTooFewPoints          — fewer than 3 knots.
//   - ErrNotStrictlyIncreasing — duplicated or inverted knots.
//   - ErrOutOfRange            — evaluation outside [xs[0], xs[n-1]].
type Spline struct {
	xs, ys  []float64
	y2s     []float64 // second derivative at each knot
	b, c, d []float64 // per-interval coefficients, len(xs)-1 each

	// mean knot spacing, seeds the uniform-spacing index guess
	dx float64
}

// New fits a natural cubic spline through the points (xs[i], ys[i]).
// Both slices are deep-copied; the knots must be strictly increasing.
// Complexity: O(n).
func New(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs) = %d, len(ys) = %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	for i := 0; i+1 < len(xs); i++ {
		if xs[i+1] <= xs[i] {
			return nil, fmt.Errorf("%w: xs[%d] = %v, xs[%d] = %v",
				ErrNotStrictlyIncreasing, i, xs[i], i+1, xs[i+1])
		}
	}

	n := len(xs)
	sp := &Spline{
		xs:  append([]float64(nil), xs...),
		ys:  append([]float64(nil), ys...),
		y2s: make([]float64, n),
		b:   make([]float64, n-1),
		c:   make([]float64, n-1),
		d:   make([]float64, n-1),
		dx:  (xs[n-1] - xs[0]) / float64(n-1),
	}
	if err := sp.fit(); err != nil {
		return nil, err
	}

	return sp, nil
}

// fit solves for the interior second derivatives and derives the
// per-interval coefficients.
func (sp *Spline) fit() error {
	n := len(sp.xs)
	xs, ys := sp.xs, sp.ys

	// Interior system: (n-2) unknown second derivatives. The natural
	// boundary pins y2s[0] and y2s[n-1] to zero.
	m := n - 2
	lower := make([]float64, m)
	diag := make([]float64, m)
	upper := make([]float64, m)
	rhs := make([]float64, m)
	for i := 0; i < m; i++ {
		j := i + 1
		lower[i] = (xs[j] - xs[j-1]) / 6
		diag[i] = (xs[j+1] - xs[j-1]) / 3
		upper[i] = (xs[j+1] - xs[j]) / 6
		rhs[i] = (ys[j+1]-ys[j])/(xs[j+1]-xs[j]) - (ys[j]-ys[j-1])/(xs[j]-xs[j-1])
	}
	if err := SolveTridiag(lower, diag, upper, rhs, sp.y2s[1:n-1]); err != nil {
		return err
	}

	for i := 0; i < n-1; i++ {
		h := xs[i+1] - xs[i]
		sp.b[i] = (ys[i+1]-ys[i])/h - h*(2*sp.y2s[i]+sp.y2s[i+1])/6
		sp.c[i] = sp.y2s[i] / 2
		sp.d[i] = (sp.y2s[i+1] - sp.y2s[i]) / (6 * h)
	}

	return nil
}

// Size returns the number of knots.
func (sp *Spline) Size() int { return len(sp.xs) }

// At evaluates the spline at x.
// Returns ErrOutOfRange when x lies outside [xs[0], xs[n-1]].
func (sp *Spline) At(x float64) (float64, error) {
	i, err := sp.interval(x)
	if err != nil {
		return 0, err
	}
	dt := x - sp.xs[i]

	return sp.ys[i] + dt*(sp.b[i]+dt*(sp.c[i]+dt*sp.d[i])), nil
}

// DerivativeAt evaluates the first derivative of the spline at x.
// Returns ErrOutOfRange when x lies outside [xs[0], xs[n-1]].
func (sp *Spline) DerivativeAt(x float64) (float64, error) {
	i, err := sp.interval(x)
	if err != nil {
		return 0, err
	}
	dt := x - sp.xs[i]

	return sp.b[i] + dt*(2*sp.c[i]+dt*3*sp.d[i]), nil
}

// SecondDerivativeAt evaluates the second derivative of the spline at x.
// Returns ErrOutOfRange when x lies outside [xs[0], xs[n-1]].
func (sp *Spline) SecondDerivativeAt(x float64) (float64, error) {
	i, err := sp.interval(x)
	if err != nil {
		return 0, err
	}
	dt := x - sp.xs[i]

	return 2*sp.c[i] + 6*sp.d[i]*dt, nil
}

// NodeDerivatives returns the spline's first derivative at every knot,
// one estimate per knot, in a freshly allocated slice.
//
// This is the derivative-estimator contract the bicubic package consumes:
// the natural cubic spline through (xs, ys) has exactly these slopes at
// the knots.
// Complexity: O(n).
func (sp *Spline) NodeDerivatives() []float64 {
	n := len(sp.xs)
	out := make([]float64, n)
	copy(out, sp.b)

	// The last knot has no interval of its own: evaluate the final
	// polynomial's derivative at its right end.
	h := sp.xs[n-1] - sp.xs[n-2]
	out[n-1] = (sp.ys[n-1]-sp.ys[n-2])/h + h*(2*sp.y2s[n-1]+sp.y2s[n-2])/6

	return out
}

// Derivatives fits a natural cubic spline through (xs, ys) and returns its
// first derivative at every knot. One-shot convenience over New followed
// by NodeDerivatives; same validation and errors as New.
// Complexity: O(n).
func Derivatives(xs, ys []float64) ([]float64, error) {
	sp, err := New(xs, ys)
	if err != nil {
		return nil, err
	}

	return sp.NodeDerivatives(), nil
}

// interval returns the index of the knot interval containing x.
func (sp *Spline) interval(x float64) (int, error) {
	n := len(sp.xs)
	// Negated form so NaN lands on the error path too.
	if !(x >= sp.xs[0] && x <= sp.xs[n-1]) {
		return 0, fmt.Errorf("%w: x = %v outside [%v, %v]",
			ErrOutOfRange, x, sp.xs[0], sp.xs[n-1])
	}
	if x == sp.xs[n-1] {
		return n - 2, nil
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - sp.xs[0]) / sp.dx)
	if guess >= 0 && guess < n-1 && sp.xs[guess] <= x && x < sp.xs[guess+1] {
		return guess, nil
	}

	// Binary search.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= sp.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}
