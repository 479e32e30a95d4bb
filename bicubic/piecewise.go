package bicubic

import "fmt"

// minPiecewiseNodes is the smallest grid the piecewise variant accepts per
// axis: a 4-wide cubic stencil plus one node of context for the spline
// derivative estimates.
const minPiecewiseNodes = 5

// NewPiecewise constructs the piecewise bicubic spline variant from
// strictly increasing node sequences (at least 5 per axis) and a value
// grid shaped len(xs) × len(ys), rows indexed by x. The three derivative
// grids are synthesized once, at construction:
//
//  1. ∂f/∂y — one estimator run per grid row, along the y nodes;
//  2. ∂f/∂x — one estimator run per grid column, along the x nodes;
//  3. ∂²f/∂x∂y — the y-direction estimator applied a second time, over
//     the rows of the freshly estimated ∂f/∂x grid.
//
// The third pass differentiates data that is itself an estimate, so the
// cross grid is an approximation, not an exact cross partial. This is the
// standard piecewise-bicubic trade-off and is kept deliberately so
// results match the classical construction.
//
// opts may be nil for the defaults (natural cubic spline estimates both
// ways); estimator failures surface wrapped, tagged with the direction
// and the row or column index.
//
// Errors: ErrNilGrid, ErrTooFewNodes, axis.ErrNotStrictlyIncreasing
// (wrapped), ErrDimensionMismatch, plus whatever the estimators return.
func NewPiecewise(xs, ys []float64, f [][]float64, opts *Options) (*Function, error) {
	// Apply options or defaults.
	def := DefaultOptions()
	xEst, yEst := def.XEstimator, def.YEstimator
	if opts != nil {
		if opts.XEstimator != nil {
			xEst = opts.XEstimator
		}
		if opts.YEstimator != nil {
			yEst = opts.YEstimator
		}
	}

	if xs == nil {
		return nil, fmt.Errorf("%w: xs", ErrNilGrid)
	}
	if ys == nil {
		return nil, fmt.Errorf("%w: ys", ErrNilGrid)
	}
	if len(xs) < minPiecewiseNodes || len(ys) < minPiecewiseNodes {
		return nil, fmt.Errorf("%w: %s needs at least %d, got %d×%d",
			ErrTooFewNodes, KindPiecewiseBicubic, minPiecewiseNodes, len(xs), len(ys))
	}

	// Build the axes first, so malformed node sequences surface as axis
	// errors instead of reaching the estimators.
	xAxis, yAxis, err := newAxes(xs, ys)
	if err != nil {
		return nil, err
	}

	// Validate and deep-copy the value grid before differentiating it.
	vals, err := copyGrid("f", f, len(xs), len(ys))
	if err != nil {
		return nil, err
	}

	nx, ny := len(xs), len(ys)

	// ∂f/∂y: estimate along each grid row.
	dfdy := make([][]float64, nx)
	for i := 0; i < nx; i++ {
		if dfdy[i], err = yEst(ys, vals[i]); err != nil {
			return nil, fmt.Errorf("bicubic: d/dy estimate, row %d: %w", i, err)
		}
		if len(dfdy[i]) != ny {
			return nil, fmt.Errorf("%w: d/dy estimate, row %d: %d values, want %d",
				ErrDimensionMismatch, i, len(dfdy[i]), ny)
		}
	}

	// ∂f/∂x: estimate along each grid column.
	dfdx := make([][]float64, nx)
	for i := range dfdx {
		dfdx[i] = make([]float64, ny)
	}
	col := make([]float64, nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			col[i] = vals[i][j]
		}
		est, estErr := xEst(xs, col)
		if estErr != nil {
			return nil, fmt.Errorf("bicubic: d/dx estimate, column %d: %w", j, estErr)
		}
		if len(est) != nx {
			return nil, fmt.Errorf("%w: d/dx estimate, column %d: %d values, want %d",
				ErrDimensionMismatch, j, len(est), nx)
		}
		for i := 0; i < nx; i++ {
			dfdx[i][j] = est[i]
		}
	}

	// ∂²f/∂x∂y: second estimator pass over the ∂f/∂x rows.
	d2fdxdy := make([][]float64, nx)
	for i := 0; i < nx; i++ {
		if d2fdxdy[i], err = yEst(ys, dfdx[i]); err != nil {
			return nil, fmt.Errorf("bicubic: d²/dxdy estimate, row %d: %w", i, err)
		}
		if len(d2fdxdy[i]) != ny {
			return nil, fmt.Errorf("%w: d²/dxdy estimate, row %d: %d values, want %d",
				ErrDimensionMismatch, i, len(d2fdxdy[i]), ny)
		}
	}

	return assemble(KindPiecewiseBicubic, xAxis, yAxis, vals, dfdx, dfdy, d2fdxdy)
}
