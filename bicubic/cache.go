package bicubic

import "sync"

// cellKey identifies one grid cell by its lower-left node indices.
type cellKey struct {
	i, j int
}

// Cached — explicit per-cell patch memoization around a Function.
//
// Description:
//
//	A Function rebuilds the cell's Hermite patch on every call, which keeps
//	it pure. Cached wraps one Function and remembers each cell's patch the
//	first time the cell is visited, a worthwhile trade when many
//	evaluations land in few cells (dense resampling of a loose grid).
//	Results are bit-for-bit identical to the wrapped Function's.
//
// Concurrency: the memo map is guarded by a sync.RWMutex — reads share the
// lock, the first visit to a cell takes it exclusively. The wrapped
// Function itself stays untouched and lock-free.
//
// Complexity: O(1) per evaluation after the owning cell's first visit;
// memory grows to one Patch per visited cell, at most (nx-1)·(ny-1).
type Cached struct {
	fn *Function

	mu      sync.RWMutex
	patches map[cellKey]*Patch
}

// NewCached wraps fn with a per-cell patch memo. The wrapper shares fn's
// grids (no copying) and implements the same Interpolator contract.
func NewCached(fn *Function) *Cached {
	return &Cached{
		fn:      fn,
		patches: make(map[cellKey]*Patch),
	}
}

// Value evaluates the wrapped surface at (x, y), reusing the owning
// cell's patch when it was built before. Same domain policy and errors
// as Function.Value.
func (c *Cached) Value(x, y float64) (float64, error) {
	i, j, u, v, err := c.fn.cell(x, y)
	if err != nil {
		return 0, err
	}

	return c.patchFor(i, j).At(u, v), nil
}

// patchFor returns the memoized patch for cell (i, j), building and
// publishing it on first use. Duplicate builds under contention are
// harmless: NewPatch is deterministic, so whichever write wins stores the
// same coefficients.
func (c *Cached) patchFor(i, j int) *Patch {
	key := cellKey{i: i, j: j}

	c.mu.RLock()
	p := c.patches[key]
	c.mu.RUnlock()
	if p != nil {
		return p
	}

	p = c.fn.patch(i, j)
	c.mu.Lock()
	c.patches[key] = p
	c.mu.Unlock()

	return p
}

// Kind returns the variant tag of the wrapped surface.
func (c *Cached) Kind() Kind { return c.fn.Kind() }

// IsValidPoint reports whether (x, y) lies inside the wrapped surface's
// rectangle.
func (c *Cached) IsValidPoint(x, y float64) bool { return c.fn.IsValidPoint(x, y) }

// XMin returns the lower x bound of the covered rectangle.
func (c *Cached) XMin() float64 { return c.fn.XMin() }

// XMax returns the upper x bound of the covered rectangle.
func (c *Cached) XMax() float64 { return c.fn.XMax() }

// YMin returns the lower y bound of the covered rectangle.
func (c *Cached) YMin() float64 { return c.fn.YMin() }

// YMax returns the upper y bound of the covered rectangle.
func (c *Cached) YMax() float64 { return c.fn.YMax() }
