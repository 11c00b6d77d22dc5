package densityfn

// clampNode restricts its input's sampled value to [lo, hi].
//
// Bounds: this implementation reports the input-bound intersection with
// [lo, hi] rather than [lo, hi] itself — the more conservative of the two
// options the node kind permits, since an input whose own bounds never
// reach lo or hi should not advertise a wider range than it can produce.
type clampNode struct {
	input  Node
	lo, hi float64
}

// Clamp builds a node that clamps input's sample to [lo, hi].
func Clamp(input Node, lo, hi float64) Node {
	return &clampNode{input: input, lo: lo, hi: hi}
}

func clampValue(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *clampNode) Sample(pos Pos) float64 {
	return clampValue(c.input.Sample(pos), c.lo, c.hi)
}

func (c *clampNode) Fill(dest []float64, applier Applier) {
	fillBySample(c, dest, applier)
}

func (c *clampNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(c, func() Node {
		clone := &clampNode{input: c.input.Apply(visitor), lo: c.lo, hi: c.hi}
		return visitor.Apply(clone)
	})
}

func (c *clampNode) Min() float64 {
	return clampValue(c.input.Min(), c.lo, c.hi)
}

func (c *clampNode) Max() float64 {
	return clampValue(c.input.Max(), c.lo, c.hi)
}

func (c *clampNode) NodeKind() string { return "Clamp" }
