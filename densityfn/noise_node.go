package densityfn

import "github.com/katalvlaran/densegraph/noise"

// noiseNode samples a noise.Sampler at a scaled position.
type noiseNode struct {
	ref            noise.Sampler
	xzScale, yScale float64
}

// Noise builds a node sampling ref.Sample(x*xzScale, y*yScale, z*xzScale).
// Bounds are ±ref.MaxValue().
func Noise(ref noise.Sampler, xzScale, yScale float64) Node {
	return &noiseNode{ref: ref, xzScale: xzScale, yScale: yScale}
}

func (n *noiseNode) Sample(pos Pos) float64 {
	return n.ref.Sample(
		float64(pos.X())*n.xzScale,
		float64(pos.Y())*n.yScale,
		float64(pos.Z())*n.xzScale,
	)
}

func (n *noiseNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *noiseNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node {
		clone := &noiseNode{ref: visitor.ApplyInternalNoise(n.ref), xzScale: n.xzScale, yScale: n.yScale}
		return visitor.Apply(clone)
	})
}

func (n *noiseNode) Min() float64 { return -n.ref.MaxValue() }
func (n *noiseNode) Max() float64 { return n.ref.MaxValue() }

func (n *noiseNode) NodeKind() string { return "Noise" }

// shiftKind distinguishes ShiftA, which samples (x, 0, z), from ShiftB,
// which samples (z, x, 0): the two offset-lookup shapes used to decorrelate
// axes.
type shiftKind uint8

const (
	shiftKindA shiftKind = iota
	shiftKindB
)

// shiftNode is the offset-lookup primitive backing shift_x/shift_z: it
// samples its noise ref at a quarter-scaled position and multiplies by 4.
type shiftNode struct {
	ref  noise.Sampler
	kind shiftKind
}

// ShiftA builds an offset-lookup node sampling ref.Sample(x*0.25, 0, z*0.25)*4.
func ShiftA(ref noise.Sampler) Node {
	return &shiftNode{ref: ref, kind: shiftKindA}
}

// ShiftB builds an offset-lookup node sampling ref.Sample(z*0.25, x*0.25, 0)*4.
func ShiftB(ref noise.Sampler) Node {
	return &shiftNode{ref: ref, kind: shiftKindB}
}

func (n *shiftNode) Sample(pos Pos) float64 {
	x, z := float64(pos.X()), float64(pos.Z())
	switch n.kind {
	case shiftKindA:
		return n.ref.Sample(x*0.25, 0, z*0.25) * 4
	case shiftKindB:
		return n.ref.Sample(z*0.25, x*0.25, 0) * 4
	default:
		return 0
	}
}

func (n *shiftNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *shiftNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node {
		clone := &shiftNode{ref: visitor.ApplyInternalNoise(n.ref), kind: n.kind}
		return visitor.Apply(clone)
	})
}

func (n *shiftNode) Min() float64 { return -4 * n.ref.MaxValue() }
func (n *shiftNode) Max() float64 { return 4 * n.ref.MaxValue() }

func (n *shiftNode) NodeKind() string {
	if n.kind == shiftKindA {
		return "ShiftA"
	}
	return "ShiftB"
}
