package densityfn

// linearNode is the normal form `slope*input + offset` produced by folding
// constants into an existing linear expression (see Add/Mul in
// constructors.go). Keeping this shape explicit lets later additions and
// multiplications by constants fold into the same node instead of growing a
// chain of Binary wrappers.
type linearNode struct {
	slope, offset float64
	input         Node
}

func newLinear(slope, offset float64, input Node) Node {
	return &linearNode{slope: slope, offset: offset, input: input}
}

// asLinear reports (node, true) if n is already in normal linear form.
func asLinear(n Node) (*linearNode, bool) {
	l, ok := n.(*linearNode)
	return l, ok
}

func (l *linearNode) Sample(pos Pos) float64 {
	return l.slope*l.input.Sample(pos) + l.offset
}

func (l *linearNode) Fill(dest []float64, applier Applier) {
	fillBySample(l, dest, applier)
}

func (l *linearNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(l, func() Node {
		rewritten := l.input.Apply(visitor)
		clone := &linearNode{slope: l.slope, offset: l.offset, input: rewritten}
		return visitor.Apply(clone)
	})
}

func (l *linearNode) Min() float64 {
	a, b := l.slope*l.input.Min()+l.offset, l.slope*l.input.Max()+l.offset
	if a < b {
		return a
	}
	return b
}

func (l *linearNode) Max() float64 {
	a, b := l.slope*l.input.Min()+l.offset, l.slope*l.input.Max()+l.offset
	if a > b {
		return a
	}
	return b
}

func (l *linearNode) NodeKind() string { return "Linear" }
