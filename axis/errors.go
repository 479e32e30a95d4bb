package axis

import "errors"

var (
	// ErrInsufficientNodes indicates the node sequence is shorter than the
	// requested stencil width.
	ErrInsufficientNodes = errors.New("axis: fewer nodes than stencil width")

	// ErrNotStrictlyIncreasing indicates two consecutive nodes are out of
	// order or duplicated.
	ErrNotStrictlyIncreasing = errors.New("axis: nodes not strictly increasing")

	// ErrBadStencil indicates a stencil width below the minimum of 2.
	ErrBadStencil = errors.New("axis: stencil width must be at least 2")
)
