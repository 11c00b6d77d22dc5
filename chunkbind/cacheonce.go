package chunkbind

import "github.com/katalvlaran/densegraph/densityfn"

// CacheOnceBound is a single-slab memo: Fill records the applier it ran
// against and every value it produced; later Sample calls driven by the
// same applier (in the same iteration order) replay the recorded value
// instead of recomputing input. Sample calls outside of a matching Fill
// recompute directly — this cache only amortizes the fill-then-rescan
// pattern lerp_density relies on for its CacheOnce-wrapped delta.
type CacheOnceBound struct {
	input   densityfn.Node
	applier densityfn.Applier
	values  []float64
	next    int
}

// NewCacheOnceBound wraps input in a single-slab memo.
func NewCacheOnceBound(input densityfn.Node) *CacheOnceBound {
	return &CacheOnceBound{input: input}
}

func (c *CacheOnceBound) Sample(pos densityfn.Pos) float64 {
	if c.applier != nil && c.next < len(c.values) {
		slot := c.applier.At(c.next)
		if slot.X() == pos.X() && slot.Y() == pos.Y() && slot.Z() == pos.Z() {
			v := c.values[c.next]
			c.next++
			return v
		}
	}
	return c.input.Sample(pos)
}

func (c *CacheOnceBound) Fill(dest []float64, applier densityfn.Applier) {
	for i := range dest {
		dest[i] = c.input.Sample(applier.At(i))
	}
	c.applier = applier
	c.values = append(c.values[:0], dest...)
	c.next = 0
}

func (c *CacheOnceBound) Apply(visitor densityfn.Visitor) densityfn.Node {
	return visitor.Memoize(c, func() densityfn.Node { return visitor.Apply(c) })
}

func (c *CacheOnceBound) Min() float64 { return c.input.Min() }
func (c *CacheOnceBound) Max() float64 { return c.input.Max() }

func (c *CacheOnceBound) NodeKind() string { return "CacheOnceBound" }
