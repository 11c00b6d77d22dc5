package densityfn

import "github.com/katalvlaran/densegraph/noise"

// InterpolatedParams names the five scale constants builder/impl_base3d.go
// supplies per biome family. xzFactor/yFactor additionally smear the sampled
// octave across a coarser cell before SmearScaleMultiplier rescales it back
// — the shape of the "signature interpolated 3D noise" spec.md treats as an
// opaque external collaborator; a concrete, representative implementation
// ships here so the node is testable.
type InterpolatedParams struct {
	XZScale              float64
	YScale               float64
	XZFactor             float64
	YFactor              float64
	SmearScaleMultiplier float64
}

// interpolatedNoiseNode wraps a noise.Sampler with InterpolatedNoise's
// five-constant scale recipe.
type interpolatedNoiseNode struct {
	ref    noise.Sampler
	params InterpolatedParams
}

// InterpolatedNoise builds the base-3D-noise node used by base_3d_noise_*.
func InterpolatedNoise(ref noise.Sampler, params InterpolatedParams) Node {
	return &interpolatedNoiseNode{ref: ref, params: params}
}

func (n *interpolatedNoiseNode) Sample(pos Pos) float64 {
	p := n.params
	x := float64(pos.X()) * p.XZScale / p.XZFactor
	y := float64(pos.Y()) * p.YScale / p.YFactor
	z := float64(pos.Z()) * p.XZScale / p.XZFactor
	return n.ref.Sample(x, y, z) * p.SmearScaleMultiplier
}

func (n *interpolatedNoiseNode) Fill(dest []float64, applier Applier) {
	fillBySample(n, dest, applier)
}

func (n *interpolatedNoiseNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node {
		clone := &interpolatedNoiseNode{ref: visitor.ApplyInternalNoise(n.ref), params: n.params}
		return visitor.Apply(clone)
	})
}

func (n *interpolatedNoiseNode) Min() float64 {
	return -n.ref.MaxValue() * n.params.SmearScaleMultiplier
}
func (n *interpolatedNoiseNode) Max() float64 {
	return n.ref.MaxValue() * n.params.SmearScaleMultiplier
}

func (n *interpolatedNoiseNode) NodeKind() string { return "InterpolatedNoise" }
