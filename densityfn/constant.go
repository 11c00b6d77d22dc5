package densityfn

// constantNode always returns the same value regardless of position.
type constantNode struct {
	v float64
}

// Constant builds a node that returns v everywhere; Min and Max both equal v.
func Constant(v float64) Node {
	return &constantNode{v: v}
}

func (c *constantNode) Sample(Pos) float64 { return c.v }

func (c *constantNode) Fill(dest []float64, applier Applier) {
	fillBySample(c, dest, applier)
}

func (c *constantNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(c, func() Node { return visitor.Apply(c) })
}

func (c *constantNode) Min() float64 { return c.v }
func (c *constantNode) Max() float64 { return c.v }

func (c *constantNode) NodeKind() string { return "Constant" }

// constVal reports (value, true) if n is a Constant, else (0, false) — used
// throughout constructors.go for constant-folding decisions.
func constVal(n Node) (float64, bool) {
	c, ok := n.(*constantNode)
	if !ok {
		return 0, false
	}
	return c.v, true
}
