// Package bicubic provides C¹-continuous bivariate interpolation over
// rectangular grids. It supports:
//
//   - Patch: closed-form bicubic Hermite coefficients for one grid cell,
//     built from corner values and partial derivatives on the unit square
//   - Function: the grid-interpolating surface, in two variants behind one
//     evaluation interface —
//     NewFunction   (explicit-derivative bicubic: caller supplies ∂f/∂x,
//     ∂f/∂y and ∂²f/∂x∂y grids)
//     NewPiecewise  (piecewise bicubic spline: derivative grids estimated
//     from the values alone via per-row/per-column natural cubic splines)
//   - Cached: optional thread-safe per-cell patch memoization around an
//     otherwise pure Function
//
// The variant list is closed: KindBicubic and KindPiecewiseBicubic are the
// only kinds, and both evaluate through the same Interpolator contract.
//
// Evaluation is strictly interpolation: Value returns ErrOutOfRange for
// points outside the grid rectangle, even though the underlying axis
// lookups could technically serve extrapolation. Use IsValidPoint to probe
// the covered rectangle first.
//
// The piecewise variant's cross-derivative grid is a two-pass estimate
// (a spline derivative of already-estimated derivatives), not an exact
// cross partial; expect looser accuracy than the explicit variant away
// from the grid nodes.
//
// Every constructed value is immutable and safe for unlimited concurrent
// reads; no locks are taken anywhere except inside Cached.
package bicubic
