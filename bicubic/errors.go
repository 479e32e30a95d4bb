package bicubic

import "errors"

var (
	// ErrNilGrid indicates a required array argument is absent.
	ErrNilGrid = errors.New("bicubic: required array is nil")

	// ErrDimensionMismatch indicates a grid whose shape does not match the axes.
	ErrDimensionMismatch = errors.New("bicubic: grid shape does not match axes")

	// ErrTooFewNodes indicates an axis too short for the requested variant.
	ErrTooFewNodes = errors.New("bicubic: too few nodes per axis")

	// ErrOutOfRange indicates an evaluation point outside the grid rectangle.
	ErrOutOfRange = errors.New("bicubic: evaluation point outside the grid")
)
