// Package bicubic: evaluation contract, variant tags and construction options.
package bicubic

import "github.com/katalvlaran/gridinterp/spline"

// Kind tags the interpolation variant of a Function.
//
// The set is closed by design: no third-party variant can be registered at
// runtime. Both kinds share construction validation and the whole
// evaluation path; they differ only in where the derivative grids come
// from.
type Kind int

const (
	// KindBicubic — explicit-derivative bicubic: all three derivative
	// grids supplied by the caller.
	KindBicubic Kind = iota

	// KindPiecewiseBicubic — piecewise bicubic spline: derivative grids
	// estimated from the value grid via natural cubic splines.
	KindPiecewiseBicubic
)

// String returns a human-readable variant name.
func (k Kind) String() string {
	switch k {
	case KindBicubic:
		return "bicubic"
	case KindPiecewiseBicubic:
		return "piecewise-bicubic"
	default:
		return "unknown"
	}
}

// Interpolator is the common evaluation contract over grid surfaces.
//
// Implementations are immutable after construction and safe for unlimited
// concurrent use (Cached serializes its memo internally).
type Interpolator interface {
	// Value evaluates the surface at (x, y). Returns ErrOutOfRange when
	// the point lies outside the grid rectangle.
	Value(x, y float64) (float64, error)
	// IsValidPoint reports whether (x, y) lies inside the rectangle
	// [XMin, XMax] × [YMin, YMax] covered by the grid.
	IsValidPoint(x, y float64) bool
	// XMin, XMax, YMin, YMax bound the covered rectangle.
	XMin() float64
	XMax() float64
	YMin() float64
	YMax() float64
}

var (
	_ Interpolator = (*Function)(nil)
	_ Interpolator = (*Cached)(nil)
)

// Estimator produces one first-derivative estimate per node from a node
// sequence and an equal-length sequence of sampled values. Any component
// honoring this contract can replace the default natural-cubic-spline
// estimator (spline.Derivatives).
type Estimator func(nodes, values []float64) ([]float64, error)

// Options configures the piecewise variant.
//
// Fields:
//   - XEstimator — per-column estimator along the x-axis (fills ∂f/∂x).
//   - YEstimator — per-row estimator along the y-axis (fills ∂f/∂y, and
//     is applied a second time over the ∂f/∂x grid to approximate
//     ∂²f/∂x∂y).
//
// A nil *Options or a nil field falls back to the defaults.
type Options struct {
	XEstimator Estimator
	YEstimator Estimator
}

// DefaultOptions returns the stock configuration: natural cubic spline
// derivative estimates in both directions.
func DefaultOptions() Options {
	return Options{
		XEstimator: spline.Derivatives,
		YEstimator: spline.Derivatives,
	}
}
