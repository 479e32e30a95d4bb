// Package axis provides windowed stencil lookup along one monotone
// coordinate axis of grid data. It supports:
//
//   - Any stencil width n ≥ 2 (2 for linear cells, 4 for cubic stencils…)
//   - Balanced window placement around the query point where bounds permit
//   - Graceful one-sided windows near the grid edges and under extrapolation
//   - O(1) repeated lookups via an atomic last-window cache
//
// An Axis is immutable after construction and safe for unlimited concurrent
// use: the internal cache is a single atomic integer, never a lock.
//
// Locate never fails: querying outside the grid simply selects the first or
// last feasible window, so interpolation degrades into extrapolation instead
// of failing near the grid edges. Range policy, if any, belongs to the
// caller (see bicubic.Function.IsValidPoint).
package axis
