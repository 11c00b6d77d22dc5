package densityfn

// rangeNode selects between two branches based on whether input's sample
// falls in [lo, hi).
type rangeNode struct {
	input          Node
	lo, hi         float64
	inRange, out   Node
}

// Range builds a node returning inRange.Sample(pos) when
// lo <= input.Sample(pos) < hi, else out.Sample(pos).
func Range(input Node, lo, hi float64, inRange, out Node) Node {
	return &rangeNode{input: input, lo: lo, hi: hi, inRange: inRange, out: out}
}

func (n *rangeNode) Sample(pos Pos) float64 {
	v := n.input.Sample(pos)
	if v >= n.lo && v < n.hi {
		return n.inRange.Sample(pos)
	}
	return n.out.Sample(pos)
}

func (n *rangeNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *rangeNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node {
		clone := &rangeNode{
			input: n.input.Apply(visitor), lo: n.lo, hi: n.hi,
			inRange: n.inRange.Apply(visitor), out: n.out.Apply(visitor),
		}
		return visitor.Apply(clone)
	})
}

func (n *rangeNode) Min() float64 { return minOf2(n.inRange.Min(), n.out.Min()) }
func (n *rangeNode) Max() float64 { return maxOf2(n.inRange.Max(), n.out.Max()) }

func (n *rangeNode) NodeKind() string { return "Range" }
