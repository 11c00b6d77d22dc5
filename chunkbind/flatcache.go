package chunkbind

import "github.com/katalvlaran/densegraph/densityfn"

// FlatCacheBound stores one value per (x, z) column in the chunk, computed
// on demand and memoized. Two sample calls at the same column but different
// Y therefore invoke input exactly once.
type FlatCacheBound struct {
	input   densityfn.Node
	sampler ChunkNoiseSampler
	values  []float64
	filled  []bool
}

// NewFlatCacheBound allocates a column-memoizing cache over input, sized to
// sampler's chunk footprint.
func NewFlatCacheBound(input densityfn.Node, sampler ChunkNoiseSampler) *FlatCacheBound {
	n := sampler.NumColumns()
	return &FlatCacheBound{
		input:   input,
		sampler: sampler,
		values:  make([]float64, n),
		filled:  make([]bool, n),
	}
}

func (c *FlatCacheBound) Sample(pos densityfn.Pos) float64 {
	idx := c.sampler.ColumnIndex(pos.X(), pos.Z())
	if c.filled[idx] {
		return c.values[idx]
	}
	v := c.input.Sample(pos)
	c.values[idx] = v
	c.filled[idx] = true
	return v
}

// Fill iterates the applier, routing every sample through the column cache
// so repeated columns across differing Y still hit the memo.
func (c *FlatCacheBound) Fill(dest []float64, applier densityfn.Applier) {
	for i := range dest {
		dest[i] = c.Sample(applier.At(i))
	}
}

func (c *FlatCacheBound) Apply(visitor densityfn.Visitor) densityfn.Node {
	return visitor.Memoize(c, func() densityfn.Node { return visitor.Apply(c) })
}

func (c *FlatCacheBound) Min() float64 { return c.input.Min() }
func (c *FlatCacheBound) Max() float64 { return c.input.Max() }

func (c *FlatCacheBound) NodeKind() string { return "FlatCacheBound" }
