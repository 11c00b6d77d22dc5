package chunkbind

import "github.com/katalvlaran/densegraph/densityfn"

// Cache2DBound is a single-entry memo keyed by the most recently sampled
// (x, z): it targets tight inner loops scanning Y within one column, where
// consecutive Sample calls share horizontal coordinates.
type Cache2DBound struct {
	input densityfn.Node
	hasX  bool
	lastX int32
	lastZ int32
	value float64
}

// NewCache2DBound wraps input in a last-column memo.
func NewCache2DBound(input densityfn.Node) *Cache2DBound {
	return &Cache2DBound{input: input}
}

func (c *Cache2DBound) Sample(pos densityfn.Pos) float64 {
	if c.hasX && pos.X() == c.lastX && pos.Z() == c.lastZ {
		return c.value
	}
	v := c.input.Sample(pos)
	c.hasX, c.lastX, c.lastZ, c.value = true, pos.X(), pos.Z(), v
	return v
}

func (c *Cache2DBound) Fill(dest []float64, applier densityfn.Applier) {
	for i := range dest {
		dest[i] = c.Sample(applier.At(i))
	}
}

func (c *Cache2DBound) Apply(visitor densityfn.Visitor) densityfn.Node {
	return visitor.Memoize(c, func() densityfn.Node { return visitor.Apply(c) })
}

func (c *Cache2DBound) Min() float64 { return c.input.Min() }
func (c *Cache2DBound) Max() float64 { return c.input.Max() }

func (c *Cache2DBound) NodeKind() string { return "Cache2DBound" }
