package axis_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/gridinterp/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLinear builds an axis over the evenly spaced nodes 2i + 0.5.
func newLinear(t *testing.T, size, n int) *axis.Axis {
	t.Helper()
	nodes := make([]float64, size)
	for i := range nodes {
		nodes[i] = 2*float64(i) + 0.5
	}
	a, err := axis.New(nodes, n)
	require.NoError(t, err, "linear axis must construct")

	return a
}

// newQuadratic builds an axis whose spacing grows with the index.
func newQuadratic(t *testing.T, size, n int) *axis.Axis {
	t.Helper()
	nodes := make([]float64, size)
	for i := range nodes {
		nodes[i] = (float64(i) + 0.5) * (float64(i) + 3)
	}
	a, err := axis.New(nodes, n)
	require.NoError(t, err, "quadratic axis must construct")

	return a
}

// newIrregular builds an axis from sorted uniform random draws.
func newIrregular(t *testing.T, rng *rand.Rand, size, n int) *axis.Axis {
	t.Helper()
	nodes := make([]float64, size)
	for i := range nodes {
		nodes[i] = 50 * rng.Float64()
	}
	sort.Float64s(nodes)
	for i := 0; i+1 < len(nodes); i++ {
		if nodes[i+1] <= nodes[i] {
			nodes[i+1] = math.Nextafter(nodes[i], math.Inf(1)) // duplicates are astronomically unlikely, but cheap to repair
		}
	}
	a, err := axis.New(nodes, n)
	require.NoError(t, err, "irregular axis must construct")

	return a
}

// checkLocate verifies every windowing invariant for one query:
// bounds, bracketing for interior queries, balanced placement where
// feasible, and edge clamping under extrapolation.
func checkLocate(t *testing.T, a *axis.Axis, q float64) {
	t.Helper()
	s, n := a.Size(), a.Stencil()
	o, p := (n-1)/2, n/2
	i := a.Locate(q)
	require.GreaterOrEqual(t, i, 0, "window start must be non-negative")
	require.Less(t, i+n-1, s, "window must fit inside the axis")

	switch {
	case q < a.Node(0):
		// extrapolating below the grid
		assert.Equal(t, 0, i, "below-grid query must clamp to the first window")
	case q < a.Node(s-1):
		// interpolating inside the grid: the window must bracket q
		assert.LessOrEqual(t, a.Node(i), q, "window start node must not exceed the query")
		assert.Greater(t, a.Node(i+n-1), q, "window end node must exceed the query")
		if q >= a.Node(o) && q < a.Node(s-p) {
			// balancing is feasible here: the central pair must bracket q
			assert.LessOrEqual(t, a.Node(i+o), q, "balanced window: central node must not exceed the query")
			assert.Greater(t, a.Node(i+o+1), q, "balanced window: next central node must exceed the query")
		}
	default:
		// extrapolating above the grid
		assert.Equal(t, s-n, i, "above-grid query must clamp to the last window")
	}
}

// sweep scans the axis from below the first node to above the last one in
// both directions, plus a batch of random queries, exercising the cache
// in its friendly (monotone) and hostile (jumping) access patterns.
func sweep(t *testing.T, rng *rand.Rand, a *axis.Axis) {
	t.Helper()
	inf := a.Node(0) - 2
	sup := a.Node(a.Size()-1) + 2
	for q := inf; q < sup; q += 0.125 {
		checkLocate(t, a, q)
	}
	for q := sup; q > inf; q -= 0.125 {
		checkLocate(t, a, q)
	}
	for k := 0; k < 1000; k++ {
		checkLocate(t, a, inf+rng.Float64()*(sup-inf))
	}
}

// TestAxis_LocateLinear checks the windowing invariants on evenly spaced
// nodes for every stencil width from 2 to 11.
func TestAxis_LocateLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(0x967ab812))
	for n := 2; n < 12; n++ {
		sweep(t, rng, newLinear(t, 25, n))
	}
}

// TestAxis_LocateQuadratic checks the windowing invariants on stretching
// node spacing, where the interpolative guess is systematically wrong.
func TestAxis_LocateQuadratic(t *testing.T) {
	rng := rand.New(rand.NewSource(0x80fc3b30))
	for n := 2; n < 12; n++ {
		sweep(t, rng, newQuadratic(t, 25, n))
	}
}

// TestAxis_LocateIrregular checks the windowing invariants on random
// monotone nodes.
func TestAxis_LocateIrregular(t *testing.T) {
	rng := rand.New(rand.NewSource(0x66133fa0))
	for n := 2; n < 12; n++ {
		sweep(t, rng, newIrregular(t, rng, 25, n))
	}
}

// TestAxis_BalancedScenario pins the documented balanced placement: nodes
// {0.5, 2.5, …, 49.5}, stencil 4, query 25.3. The window must bracket the
// query and center it with offset 1.
func TestAxis_BalancedScenario(t *testing.T) {
	a := newLinear(t, 25, 4)

	i := a.Locate(25.3)
	assert.Equal(t, 11, i, "balanced window for 25.3 must start at index 11")
	assert.LessOrEqual(t, a.Node(i+1), 25.3, "offset-1 node must not exceed the query")
	assert.Greater(t, a.Node(i+2), 25.3, "offset-2 node must exceed the query")
}

// TestAxis_MinimalGrid covers the degenerate size == stencil case, where
// only one window exists.
func TestAxis_MinimalGrid(t *testing.T) {
	a, err := axis.New([]float64{1, 2, 3, 4}, 4)
	require.NoError(t, err)

	for _, q := range []float64{-10, 1, 2.5, 4, 100} {
		assert.Equal(t, 0, a.Locate(q), "a size==stencil axis has a single window")
	}
}

// TestAxis_NonFiniteQueries ensures Locate stays total and in-bounds for
// infinities and NaN.
func TestAxis_NonFiniteQueries(t *testing.T) {
	a := newLinear(t, 25, 4)

	assert.Equal(t, 0, a.Locate(math.Inf(-1)), "-Inf clamps to the first window")
	assert.Equal(t, a.Size()-4, a.Locate(math.Inf(1)), "+Inf clamps to the last window")

	i := a.Locate(math.NaN())
	assert.GreaterOrEqual(t, i, 0, "NaN must still return an in-bounds window")
	assert.Less(t, i+3, a.Size(), "NaN must still return an in-bounds window")
}

// TestAxis_Accessors verifies Size, Stencil, Node, Min and Max, and that
// construction deep-copies the input.
func TestAxis_Accessors(t *testing.T) {
	nodes := []float64{0.5, 2.5, 4.5, 6.5}
	a, err := axis.New(nodes, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, a.Size())
	assert.Equal(t, 2, a.Stencil())
	assert.Equal(t, 0.5, a.Min())
	assert.Equal(t, 6.5, a.Max())
	for i, want := range nodes {
		assert.Equal(t, want, a.Node(i))
	}

	nodes[2] = -100 // mutating the caller's slice must not reach the axis
	assert.Equal(t, 4.5, a.Node(2), "axis must own a private copy of the nodes")
}

// TestAxis_ErrInsufficientNodes ensures a grid shorter than the stencil is
// rejected with the documented sentinel.
func TestAxis_ErrInsufficientNodes(t *testing.T) {
	_, err := axis.New([]float64{1, 2, 3}, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, axis.ErrInsufficientNodes)
	assert.ErrorContains(t, err, "3", "error must report the grid size")
	assert.ErrorContains(t, err, "4", "error must report the stencil width")
}

// TestAxis_ErrNotStrictlyIncreasing ensures inversions and duplicates are
// rejected with the offending pair and positions.
func TestAxis_ErrNotStrictlyIncreasing(t *testing.T) {
	_, err := axis.New([]float64{0, 1, 0.5, 2}, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, axis.ErrNotStrictlyIncreasing)
	assert.ErrorContains(t, err, "nodes[1] = 1", "error must report the left offender")
	assert.ErrorContains(t, err, "nodes[2] = 0.5", "error must report the right offender")

	_, err = axis.New([]float64{0, 1, 1, 2}, 2)
	assert.ErrorIs(t, err, axis.ErrNotStrictlyIncreasing, "duplicates count as not strictly increasing")
}

// TestAxis_ErrBadStencil ensures stencil widths below 2 are rejected.
func TestAxis_ErrBadStencil(t *testing.T) {
	_, err := axis.New([]float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, axis.ErrBadStencil)
}

// TestAxis_ConcurrentLocate hammers one axis from several goroutines; the
// atomic cache must never corrupt results (run with -race).
func TestAxis_ConcurrentLocate(t *testing.T) {
	a := newLinear(t, 25, 4)

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(seed int64) {
			defer func() { done <- struct{}{} }()
			rng := rand.New(rand.NewSource(seed))
			for k := 0; k < 2000; k++ {
				q := -2 + rng.Float64()*53
				i := a.Locate(q)
				if i < 0 || i+3 >= a.Size() {
					t.Errorf("Locate(%v) = %d out of bounds", q, i)

					return
				}
			}
		}(int64(g) + 1)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
