// Package spline defines the contract densityfn's Spline node consumes —
// "evaluate a black-box function of resolved axis values" — and a reference
// cubic Hermite multi-point spline good enough to compose the terrain-shape
// graphs described in builder/terrain_params.go.
//
// spec.md puts the real terrain-shape control points (the exact offset,
// factor and jaggedness curves) out of scope: this package provides the
// composition mechanics — nested, axis-indexed control points with Hermite
// blending between them, the same recursive "spline of splines" shape used
// by the reviewed terrain generators — without claiming to reproduce any
// particular game's tuned numbers.
package spline
