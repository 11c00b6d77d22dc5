package spline

import "errors"

// ErrEmptyPoints indicates a Multi spline was built with no control points.
var ErrEmptyPoints = errors.New("spline: at least one control point required")

// Spline is the black-box evaluator densityfn.Spline nodes call once their
// axis Nodes have been sampled. axes[i] holds the i-th resolved input
// value (continentalness, erosion, ridges, ridgesFolded, in that order for
// the terrain-shape splines built in builder/terrain_params.go).
type Spline interface {
	Eval(axes []float64) float64
}

// Constant is a Spline that ignores its axes and always returns the same
// value — the leaf case of the recursive "spline of splines" shape used by
// Multi's control points.
type Constant float64

// Eval implements Spline.
func (c Constant) Eval(_ []float64) float64 { return float64(c) }
