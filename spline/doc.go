// Package spline provides 1-D natural cubic spline interpolation and the
// tridiagonal machinery behind it. It supports:
//
//   - Fitting a natural ("free", "unclamped") cubic spline through a table
//     of strictly increasing knots: second derivative zero at both ends,
//     C² continuity at every interior knot
//   - Evaluating the fitted spline, its first and second derivatives
//   - Per-knot first-derivative estimates (Derivatives), the contract the
//     bicubic package consumes to synthesize derivative grids
//   - Solving general tridiagonal systems in-place (SolveTridiag)
//
// A fitted Spline is immutable and safe for unlimited concurrent reads.
//
// Derivative estimates are exact for data sampled from straight lines and
// cubic polynomials with matching natural boundary conditions; for other
// data they are spline estimates, not exact derivatives.
package spline
