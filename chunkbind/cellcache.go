package chunkbind

import "github.com/katalvlaran/densegraph/densityfn"

// CellCacheBound caches one value per cell-corner. Sample returns the
// memoized corner value when pos lies exactly on a cell corner, else
// delegates straight to input — most positions within a cell are not
// corners, so this only helps the corner-resolution passes that seed
// InterpolatorBound's 2x2x2 blend.
type CellCacheBound struct {
	input   densityfn.Node
	sampler ChunkNoiseSampler
	values  []float64
	filled  []bool
}

// NewCellCacheBound allocates a corner-memoizing cache over input.
func NewCellCacheBound(input densityfn.Node, sampler ChunkNoiseSampler) *CellCacheBound {
	n := sampler.NumCellCorners()
	return &CellCacheBound{
		input:   input,
		sampler: sampler,
		values:  make([]float64, n),
		filled:  make([]bool, n),
	}
}

func (c *CellCacheBound) Sample(pos densityfn.Pos) float64 {
	idx, ok := c.sampler.CellCorner(pos)
	if !ok {
		return c.input.Sample(pos)
	}
	if c.filled[idx] {
		return c.values[idx]
	}
	v := c.input.Sample(pos)
	c.values[idx] = v
	c.filled[idx] = true
	return v
}

func (c *CellCacheBound) Fill(dest []float64, applier densityfn.Applier) {
	for i := range dest {
		dest[i] = c.Sample(applier.At(i))
	}
}

func (c *CellCacheBound) Apply(visitor densityfn.Visitor) densityfn.Node {
	return visitor.Memoize(c, func() densityfn.Node { return visitor.Apply(c) })
}

func (c *CellCacheBound) Min() float64 { return c.input.Min() }
func (c *CellCacheBound) Max() float64 { return c.input.Max() }

func (c *CellCacheBound) NodeKind() string { return "CellCacheBound" }
