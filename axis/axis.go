package axis

import (
	"fmt"
	"sync/atomic"
)

// Axis — windowed stencil lookup along one grid dimension.
//
// Description:
//
//	An Axis owns a strictly increasing sequence of node coordinates and a
//	fixed stencil width n. Locate(t) returns the start index of the n-node
//	contiguous window best suited for interpolating a value at t: balanced
//	around t where the bounds permit, one-sided near the edges, and clamped
//	to the first or last feasible window when t lies outside the grid.
//
// Algorithm Outline:
//  1. Reuse the cached window when t still falls in its balanced middle
//     (or in the unbalanced edge areas the cached window already covers).
//  2. Otherwise run an interpolative search over the feasible balanced
//     range: guess the index by linear interpolation between the current
//     bracket values, clamp the guess inside the bracket, and narrow.
//     For near-uniform grids this converges in O(1) steps; for arbitrary
//     monotone grids it still terminates like bisection.
//  3. Shift the found mid-node back by the balanced offset (n-1)/2 and
//     publish it to the cache.
//
// Complexity:
//
//	Time   = O(1) amortized on regular grids, O(log size) worst case
//	Memory = O(size) (one copied node slice)
//
// Errors:
//   - ErrBadStencil          — stencil width below 2.
//   - ErrInsufficientNodes   — fewer nodes than the stencil width.
//   - ErrNotStrictlyIncreasing — duplicated or inverted nodes.
type Axis struct {
	nodes []float64
	n     int

	// start index of the last returned window; lock-free reuse across
	// goroutines, same discipline as an atomic counter
	cache atomic.Int64
}

// New constructs an Axis from a node sequence and a stencil width n
// (2 for linear interpolation, 3 for quadratic, 4 for cubic…).
// The nodes are deep-copied to ensure immutability.
// Returns ErrBadStencil, ErrInsufficientNodes or ErrNotStrictlyIncreasing
// on invalid input; the error carries the offending sizes or node pair.
func New(nodes []float64, n int) (*Axis, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadStencil, n)
	}
	if len(nodes) < n {
		return nil, fmt.Errorf("%w: %d nodes < stencil %d", ErrInsufficientNodes, len(nodes), n)
	}
	for i := 0; i+1 < len(nodes); i++ {
		if nodes[i+1] <= nodes[i] {
			return nil, fmt.Errorf("%w: nodes[%d] = %v, nodes[%d] = %v",
				ErrNotStrictlyIncreasing, i, nodes[i], i+1, nodes[i+1])
		}
	}

	cp := make([]float64, len(nodes))
	copy(cp, nodes)

	return &Axis{nodes: cp, n: n}, nil
}

// Size returns the number of nodes on the axis.
// Complexity: O(1).
func (a *Axis) Size() int { return len(a.nodes) }

// Stencil returns the stencil width fixed at construction.
// Complexity: O(1).
func (a *Axis) Stencil() int { return a.n }

// Node returns the coordinate of the node at index i.
// Complexity: O(1).
func (a *Axis) Node(i int) float64 { return a.nodes[i] }

// Min returns the coordinate of the first node.
func (a *Axis) Min() float64 { return a.nodes[0] }

// Max returns the coordinate of the last node.
func (a *Axis) Max() float64 { return a.nodes[len(a.nodes)-1] }

// Locate returns the start index i of the stencil window for coordinate t,
// so that nodes i, i+1, …, i+n-1 are the interpolation nodes. The result
// always satisfies 0 ≤ i and i+n-1 < Size().
//
// Window placement:
//   - interior t, far from the edges: the window is balanced, with the
//     floor-offset node nodes[i+(n-1)/2] being the last node ≤ t;
//   - interior t near an edge: the window shifts toward the interior;
//   - t below the grid: i = 0; t above the grid: i = Size()-n.
//
// Locate is total over all real t: out-of-grid queries are not an error,
// they select the nearest feasible window so the interpolation becomes an
// extrapolation. Safe for concurrent use.
func (a *Axis) Locate(t float64) int {
	mid := (a.n - 1) / 2
	iInf := mid
	iSup := len(a.nodes) - (a.n - 1) + mid

	// Fast path: the previously published window often still fits when
	// successive queries land close together (e.g. scanning a fine mesh
	// over a loose grid).
	cached := int(a.cache.Load())
	middle := cached + mid
	switch {
	case t < a.nodes[middle]:
		if middle == iInf {
			// unbalanced low area
			return cached
		}
	case t < a.nodes[middle+1]:
		// balanced middle area
		return cached
	default:
		if middle == iSup-1 {
			// unbalanced high area
			return cached
		}
	}

	// Interpolative search over the balanced range [iInf, iSup].
	aInf := a.nodes[iInf]
	aSup := a.nodes[iSup]
	for iSup-iInf > 1 {
		iGuess := int((float64(iInf)*(aSup-t) + float64(iSup)*(t-aInf)) / (aSup - aInf))
		iMed := max(iInf+1, min(iGuess, iSup-1))
		if t < a.nodes[iMed] {
			iSup = iMed
			aSup = a.nodes[iSup]
		} else {
			iInf = iMed
			aInf = a.nodes[iInf]
		}
	}

	start := iInf - mid
	a.cache.CompareAndSwap(int64(cached), int64(start))

	return start
}
