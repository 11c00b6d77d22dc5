package densityfn

// clampedYNode is linear in integer Y between (from, fromVal) and
// (to, toVal), clamped to the value range at the ends.
type clampedYNode struct {
	from, to       int32
	fromVal, toVal float64
}

// ClampedY builds the Y-identity-style node: linear in Y on [from, to],
// clamped to fromVal/toVal outside that range.
func ClampedY(from, to int32, fromVal, toVal float64) Node {
	return &clampedYNode{from: from, to: to, fromVal: fromVal, toVal: toVal}
}

func (n *clampedYNode) Sample(pos Pos) float64 {
	y := pos.Y()
	if y <= n.from {
		return n.fromVal
	}
	if y >= n.to {
		return n.toVal
	}
	t := float64(y-n.from) / float64(n.to-n.from)
	return n.fromVal + t*(n.toVal-n.fromVal)
}

func (n *clampedYNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *clampedYNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node { return visitor.Apply(n) })
}

func (n *clampedYNode) Min() float64 { return minOf2(n.fromVal, n.toVal) }
func (n *clampedYNode) Max() float64 { return maxOf2(n.fromVal, n.toVal) }

func (n *clampedYNode) NodeKind() string { return "ClampedY" }
