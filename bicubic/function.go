package bicubic

import (
	"fmt"

	"github.com/katalvlaran/gridinterp/axis"
)

// cellStencil is the axis stencil width for locating the enclosing cell:
// the two nodes bounding it.
const cellStencil = 2

// minExplicitNodes is the smallest grid the explicit-derivative variant
// accepts per axis (one cell).
const minExplicitNodes = 2

// Function — a grid-interpolating bicubic surface.
//
// Description:
//
//	A Function owns two axes, a value grid aligned with them, and the three
//	derivative grids (∂f/∂x, ∂f/∂y, ∂²f/∂x∂y) — supplied by the caller
//	(KindBicubic) or estimated at construction (KindPiecewiseBicubic).
//	Value locates the enclosing cell through the axes, builds the cell's
//	bicubic Hermite patch with derivative samples rescaled to unit-square
//	coordinates, and evaluates it at the normalized offset.
//
// Guarantees:
//   - exact reproduction of the value grid at every node;
//   - continuous value and first partials across interior cell edges,
//     because adjoining patches share their corner data;
//   - immutable after construction, safe for concurrent use.
//
// Complexity: Value is O(1) amortized on regular grids (axis cache),
// O(log size) worst case; construction is O(nx·ny).
type Function struct {
	kind  Kind
	x, y  *axis.Axis
	f     [][]float64
	dfdx  [][]float64
	dfdy  [][]float64
	dfdxy [][]float64
}

// NewFunction constructs the explicit-derivative bicubic variant from
// strictly increasing node sequences (at least 2 per axis), a value grid
// and the three derivative grids, all shaped len(xs) × len(ys) with rows
// indexed by x. Every grid is deep-copied.
//
// Errors: ErrNilGrid (naming the missing argument), ErrTooFewNodes,
// axis.ErrNotStrictlyIncreasing (wrapped, with the offending pair) and
// ErrDimensionMismatch (with expected vs actual sizes).
func NewFunction(xs, ys []float64, f, dfdx, dfdy, d2fdxdy [][]float64) (*Function, error) {
	return newFunction(KindBicubic, minExplicitNodes, xs, ys, f, dfdx, dfdy, d2fdxdy)
}

// newFunction is the shared construction path behind both variants.
func newFunction(kind Kind, minNodes int, xs, ys []float64, f, dfdx, dfdy, d2fdxdy [][]float64) (*Function, error) {
	if xs == nil {
		return nil, fmt.Errorf("%w: xs", ErrNilGrid)
	}
	if ys == nil {
		return nil, fmt.Errorf("%w: ys", ErrNilGrid)
	}
	if len(xs) < minNodes || len(ys) < minNodes {
		return nil, fmt.Errorf("%w: %s needs at least %d, got %d×%d",
			ErrTooFewNodes, kind, minNodes, len(xs), len(ys))
	}

	xAxis, yAxis, err := newAxes(xs, ys)
	if err != nil {
		return nil, err
	}

	return assemble(kind, xAxis, yAxis, f, dfdx, dfdy, d2fdxdy)
}

// newAxes builds and validates both coordinate axes.
func newAxes(xs, ys []float64) (*axis.Axis, *axis.Axis, error) {
	xAxis, err := axis.New(xs, cellStencil)
	if err != nil {
		return nil, nil, fmt.Errorf("bicubic: x axis: %w", err)
	}
	yAxis, err := axis.New(ys, cellStencil)
	if err != nil {
		return nil, nil, fmt.Errorf("bicubic: y axis: %w", err)
	}

	return xAxis, yAxis, nil
}

// assemble validates the grid shapes against prepared axes and deep-copies
// everything into the final surface.
func assemble(kind Kind, xAxis, yAxis *axis.Axis, f, dfdx, dfdy, d2fdxdy [][]float64) (*Function, error) {
	fn := &Function{kind: kind, x: xAxis, y: yAxis}
	for _, g := range []struct {
		name string
		src  [][]float64
		dst  *[][]float64
	}{
		{"f", f, &fn.f},
		{"dfdx", dfdx, &fn.dfdx},
		{"dfdy", dfdy, &fn.dfdy},
		{"d2fdxdy", d2fdxdy, &fn.dfdxy},
	} {
		cp, err := copyGrid(g.name, g.src, xAxis.Size(), yAxis.Size())
		if err != nil {
			return nil, err
		}
		*g.dst = cp
	}

	return fn, nil
}

// copyGrid validates the shape of one rows×cols grid and deep-copies it.
func copyGrid(name string, src [][]float64, rows, cols int) ([][]float64, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilGrid, name)
	}
	if len(src) != rows {
		return nil, fmt.Errorf("%w: %s has %d rows, want %d", ErrDimensionMismatch, name, len(src), rows)
	}
	dst := make([][]float64, rows)
	for i, row := range src {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: %s row %d has %d columns, want %d",
				ErrDimensionMismatch, name, i, len(row), cols)
		}
		dst[i] = append([]float64(nil), row...)
	}

	return dst, nil
}

// Kind returns the variant tag of the surface.
func (fn *Function) Kind() Kind { return fn.kind }

// XMin returns the lower x bound of the covered rectangle.
func (fn *Function) XMin() float64 { return fn.x.Min() }

// XMax returns the upper x bound of the covered rectangle.
func (fn *Function) XMax() float64 { return fn.x.Max() }

// YMin returns the lower y bound of the covered rectangle.
func (fn *Function) YMin() float64 { return fn.y.Min() }

// YMax returns the upper y bound of the covered rectangle.
func (fn *Function) YMax() float64 { return fn.y.Max() }

// IsValidPoint reports whether (x, y) lies inside the covered rectangle.
// IsValidPoint(x, y) == false exactly when Value(x, y) would return
// ErrOutOfRange, so callers can distinguish "need extrapolation" from a
// malformed query before evaluating.
func (fn *Function) IsValidPoint(x, y float64) bool {
	return x >= fn.x.Min() && x <= fn.x.Max() && y >= fn.y.Min() && y <= fn.y.Max()
}

// Value evaluates the surface at (x, y).
//
// Returns ErrOutOfRange — reporting the offending coordinate and the
// valid interval — when the point lies outside the grid rectangle. This
// is deliberately stricter than the axes, which would happily serve the
// nearest boundary cell for extrapolation.
func (fn *Function) Value(x, y float64) (float64, error) {
	i, j, u, v, err := fn.cell(x, y)
	if err != nil {
		return 0, err
	}

	return fn.patch(i, j).At(u, v), nil
}

// PartialX evaluates ∂f/∂x at (x, y) in physical units.
// Same domain policy and errors as Value.
func (fn *Function) PartialX(x, y float64) (float64, error) {
	i, j, u, v, err := fn.cell(x, y)
	if err != nil {
		return 0, err
	}

	return fn.patch(i, j).PartialU(u, v) / fn.width(i), nil
}

// PartialY evaluates ∂f/∂y at (x, y) in physical units.
// Same domain policy and errors as Value.
func (fn *Function) PartialY(x, y float64) (float64, error) {
	i, j, u, v, err := fn.cell(x, y)
	if err != nil {
		return 0, err
	}

	return fn.patch(i, j).PartialV(u, v) / fn.height(j), nil
}

// PartialXY evaluates ∂²f/∂x∂y at (x, y) in physical units. For the
// piecewise variant this rests on the two-pass cross-derivative estimate,
// so treat it as an approximation.
// Same domain policy and errors as Value.
func (fn *Function) PartialXY(x, y float64) (float64, error) {
	i, j, u, v, err := fn.cell(x, y)
	if err != nil {
		return 0, err
	}

	return fn.patch(i, j).PartialUV(u, v) / (fn.width(i) * fn.height(j)), nil
}

// cell locates the grid cell owning (x, y) and the normalized in-cell
// coordinates. Shared by Function and Cached.
func (fn *Function) cell(x, y float64) (i, j int, u, v float64, err error) {
	// The negated forms keep NaN queries on the error path, preserving the
	// IsValidPoint equivalence.
	if !(x >= fn.x.Min() && x <= fn.x.Max()) {
		return 0, 0, 0, 0, fmt.Errorf("%w: x = %v outside [%v, %v]",
			ErrOutOfRange, x, fn.x.Min(), fn.x.Max())
	}
	if !(y >= fn.y.Min() && y <= fn.y.Max()) {
		return 0, 0, 0, 0, fmt.Errorf("%w: y = %v outside [%v, %v]",
			ErrOutOfRange, y, fn.y.Min(), fn.y.Max())
	}

	i = fn.x.Locate(x)
	j = fn.y.Locate(y)
	u = (x - fn.x.Node(i)) / fn.width(i)
	v = (y - fn.y.Node(j)) / fn.height(j)

	return i, j, u, v, nil
}

// patch builds the bicubic Hermite patch for cell (i, j), rescaling the
// derivative samples so the unit-square partials match the physical ones.
func (fn *Function) patch(i, j int) *Patch {
	xR := fn.width(i)
	yR := fn.height(j)

	var f, fu, fv, fuv [2][2]float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			f[a][b] = fn.f[i+a][j+b]
			fu[a][b] = fn.dfdx[i+a][j+b] * xR
			fv[a][b] = fn.dfdy[i+a][j+b] * yR
			fuv[a][b] = fn.dfdxy[i+a][j+b] * xR * yR
		}
	}

	return NewPatch(f, fu, fv, fuv)
}

// width returns the physical width of cell column i.
func (fn *Function) width(i int) float64 { return fn.x.Node(i+1) - fn.x.Node(i) }

// height returns the physical height of cell row j.
func (fn *Function) height(j int) float64 { return fn.y.Node(j+1) - fn.y.Node(j) }
