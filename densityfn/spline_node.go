package densityfn

import "github.com/katalvlaran/densegraph/spline"

// splineNode evaluates an embedded spline.Spline whose axes are themselves
// density-function Node inputs, resolved at Sample time.
type splineNode struct {
	axes []Node
	ref  spline.Spline
	lo   float64
	hi   float64
}

// Spline builds a node that samples each of axes at pos, feeds the results
// to ref.Eval, and reports the given [lo, hi] as its static bounds — the
// caller (typically builder/terrain_params.go) knows the spline's tuned
// output range and supplies it, since ref is an opaque black box here.
func Spline(ref spline.Spline, lo, hi float64, axes ...Node) Node {
	return &splineNode{axes: axes, ref: ref, lo: lo, hi: hi}
}

func (n *splineNode) Sample(pos Pos) float64 {
	values := make([]float64, len(n.axes))
	for i, a := range n.axes {
		values[i] = a.Sample(pos)
	}
	return n.ref.Eval(values)
}

func (n *splineNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *splineNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node {
		rewritten := make([]Node, len(n.axes))
		for i, a := range n.axes {
			rewritten[i] = a.Apply(visitor)
		}
		clone := &splineNode{axes: rewritten, ref: n.ref, lo: n.lo, hi: n.hi}
		return visitor.Apply(clone)
	})
}

func (n *splineNode) Min() float64 { return n.lo }
func (n *splineNode) Max() float64 { return n.hi }

func (n *splineNode) NodeKind() string { return "Spline" }
