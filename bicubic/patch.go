package bicubic

// hermiteBasis is the cubic Hermite basis on the unit interval: row k maps
// the data vector (f(0), f(1), f'(0), f'(1)) to the coefficient of u^k.
var hermiteBasis = [4][4]float64{
	{1, 0, 0, 0},
	{0, 0, 1, 0},
	{-3, 3, -2, -1},
	{2, -2, 1, 1},
}

// Patch — one bicubic Hermite cell on the unit square.
//
// Description:
//
//	A Patch stores the 4×4 coefficient matrix a of the bivariate cubic
//
//	  z(u, v) = Σ a[k][l] · u^k · v^l,   0 ≤ k, l ≤ 3,
//
//	built from the four corner values and their partial derivatives in
//	unit-square coordinates. The 16×16 interpolation system has the fixed
//	closed-form solution
//
//	  a = B · F · Bᵀ,
//
//	where B is the constant Hermite basis and F packs the corner data
//	(values, ∂/∂u, ∂/∂v, ∂²/∂u∂v). No runtime linear solve is needed.
//
// Guarantee: the patch reproduces all sixteen corner samples exactly —
// z, ∂z/∂u, ∂z/∂v and ∂²z/∂u∂v at each of the four corners.
//
// Complexity: construction and every evaluation are O(1).
type Patch struct {
	a [4][4]float64
}

// NewPatch builds the patch from corner data in unit-square coordinates.
// Each [2][2] array is indexed [i][j] for the corner (u=i, v=j): f holds
// the corner values, fu the ∂/∂u samples, fv the ∂/∂v samples and fuv the
// cross partials. Callers interpolating over a physical cell must scale
// their derivative samples by the cell extents first (∂/∂x·Δx and so on);
// see Function.patch.
//
// Pure function of its sixteen inputs; it cannot fail.
func NewPatch(f, fu, fv, fuv [2][2]float64) *Patch {
	// Pack the corner data the way the closed form expects: value block
	// top-left, ∂/∂v right, ∂/∂u below, cross partials bottom-right.
	data := [4][4]float64{
		{f[0][0], f[0][1], fv[0][0], fv[0][1]},
		{f[1][0], f[1][1], fv[1][0], fv[1][1]},
		{fu[0][0], fu[0][1], fuv[0][0], fuv[0][1]},
		{fu[1][0], fu[1][1], fuv[1][0], fuv[1][1]},
	}

	// a = B · data · Bᵀ, expanded over the fixed 4×4 basis.
	var p Patch
	for k := 0; k < 4; k++ {
		for l := 0; l < 4; l++ {
			var sum float64
			for r := 0; r < 4; r++ {
				br := hermiteBasis[k][r]
				if br == 0 {
					continue
				}
				for s := 0; s < 4; s++ {
					sum += br * data[r][s] * hermiteBasis[l][s]
				}
			}
			p.a[k][l] = sum
		}
	}

	return &p
}

// Coeff returns the coefficient of u^k · v^l.
func (p *Patch) Coeff(k, l int) float64 { return p.a[k][l] }

// At evaluates the patch at (u, v). Points outside [0,1]² are permitted
// (the polynomial extends beyond the cell) but the owning surface is
// expected to pick the cell so that interior points stay inside.
func (p *Patch) At(u, v float64) float64 {
	var z float64
	for k := 3; k >= 0; k-- {
		z = z*u + p.rowAt(k, v)
	}

	return z
}

// PartialU evaluates ∂z/∂u at (u, v) in unit-square coordinates. Rescale
// by the physical cell width to obtain ∂z/∂x.
func (p *Patch) PartialU(u, v float64) float64 {
	var z float64
	for k := 3; k >= 1; k-- {
		z = z*u + float64(k)*p.rowAt(k, v)
	}

	return z
}

// PartialV evaluates ∂z/∂v at (u, v) in unit-square coordinates. Rescale
// by the physical cell height to obtain ∂z/∂y.
func (p *Patch) PartialV(u, v float64) float64 {
	var z float64
	for k := 3; k >= 0; k-- {
		z = z*u + p.rowDerivAt(k, v)
	}

	return z
}

// PartialUV evaluates ∂²z/∂u∂v at (u, v) in unit-square coordinates.
// Rescale by both cell extents to obtain ∂²z/∂x∂y.
func (p *Patch) PartialUV(u, v float64) float64 {
	var z float64
	for k := 3; k >= 1; k-- {
		z = z*u + float64(k)*p.rowDerivAt(k, v)
	}

	return z
}

// rowAt evaluates the row-k polynomial Σ_l a[k][l]·v^l by Horner's rule.
func (p *Patch) rowAt(k int, v float64) float64 {
	row := &p.a[k]

	return ((row[3]*v+row[2])*v+row[1])*v + row[0]
}

// rowDerivAt evaluates d/dv of the row-k polynomial.
func (p *Patch) rowDerivAt(k int, v float64) float64 {
	row := &p.a[k]

	return (3*row[3]*v+2*row[2])*v + row[1]
}
