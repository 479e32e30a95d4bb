// Package gridinterp is your in-memory toolkit for smooth bivariate
// interpolation over rectangular grids — from stencil indexing primitives
// to C¹-continuous bicubic surfaces.
//
// 🚀 What is gridinterp?
//
//	A modern, thread-safe library that brings together:
//		• Axis indexing: balanced stencil windows over monotone node sequences
//		• Natural cubic splines: fitting, evaluation & per-node derivative estimates
//		• Bicubic patches: closed-form Hermite coefficients on the unit square
//		• Grid surfaces: explicit-derivative bicubic & piecewise bicubic splines
//		• Patch caching: optional memoization for hot evaluation loops
//
// ✨ Why choose gridinterp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – eager validation, descriptive sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Immutable – every value is safe for unlimited concurrent reads
//
// Under the hood, everything is organized under three subpackages:
//
//	axis/    — windowed stencil lookup along one monotone coordinate axis
//	spline/  — 1-D natural cubic splines & tridiagonal systems
//	bicubic/ — bicubic patches & grid-interpolating surfaces (both variants)
//
// Quick ASCII example:
//
//	y₁ ┌────┬────┐
//	   │ •  │    │      a 2-D value grid; the dot is an evaluation
//	y₀ ├────┼────┤      point inside one bicubic cell
//	   x₀   x₁   x₂
//
// Next up: field-valued grids, monotonicity-preserving schemes and beyond.
// Dive into examples/ and the per-package example tests for full scenarios.
//
//	go get github.com/katalvlaran/gridinterp
package gridinterp
