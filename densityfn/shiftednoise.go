package densityfn

import "github.com/katalvlaran/densegraph/noise"

// shiftedNoiseNode samples a noise ref at a position offset by three shift
// Nodes (sampled at the same position) before scaling.
type shiftedNoiseNode struct {
	sx, sy, sz      Node
	xzScale, yScale float64
	ref             noise.Sampler
}

// ShiftedNoise builds a node sampling
// ref.Sample(x*xzScale+sx(pos), y*yScale+sy(pos), z*xzScale+sz(pos)).
func ShiftedNoise(sx, sy, sz Node, xzScale, yScale float64, ref noise.Sampler) Node {
	return &shiftedNoiseNode{sx: sx, sy: sy, sz: sz, xzScale: xzScale, yScale: yScale, ref: ref}
}

func (n *shiftedNoiseNode) Sample(pos Pos) float64 {
	x := float64(pos.X())*n.xzScale + n.sx.Sample(pos)
	y := float64(pos.Y())*n.yScale + n.sy.Sample(pos)
	z := float64(pos.Z())*n.xzScale + n.sz.Sample(pos)
	return n.ref.Sample(x, y, z)
}

func (n *shiftedNoiseNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *shiftedNoiseNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node {
		clone := &shiftedNoiseNode{
			sx: n.sx.Apply(visitor), sy: n.sy.Apply(visitor), sz: n.sz.Apply(visitor),
			xzScale: n.xzScale, yScale: n.yScale, ref: visitor.ApplyInternalNoise(n.ref),
		}
		return visitor.Apply(clone)
	})
}

func (n *shiftedNoiseNode) Min() float64 { return -n.ref.MaxValue() }
func (n *shiftedNoiseNode) Max() float64 { return n.ref.MaxValue() }

func (n *shiftedNoiseNode) NodeKind() string { return "ShiftedNoise" }
