package chunkbind

import "github.com/katalvlaran/densegraph/densityfn"

// InterpolatorBound stores the eight corner samples of the cell containing
// the most recently queried position and returns their tri-linear blend,
// using the per-axis fractions the sampler computes for each queried
// position.
// Corner samples are recomputed whenever pos moves to a different cell.
type InterpolatorBound struct {
	input   densityfn.Node
	sampler ChunkNoiseSampler

	hasCell                 bool
	cellX, cellY, cellZ     int32
	corners                 [8]float64
}

// NewInterpolatorBound wraps input in a tri-linear cell interpolator.
func NewInterpolatorBound(input densityfn.Node, sampler ChunkNoiseSampler) *InterpolatorBound {
	return &InterpolatorBound{input: input, sampler: sampler}
}

func (ib *InterpolatorBound) Sample(pos densityfn.Pos) float64 {
	cellX, cellY, cellZ, fx, fy, fz := ib.sampler.CellFractions(pos)
	if !ib.hasCell || cellX != ib.cellX || cellY != ib.cellY || cellZ != ib.cellZ {
		ib.fillCorners(pos, cellX, cellY, cellZ)
	}
	return trilerp(ib.corners, fx, fy, fz)
}

func (ib *InterpolatorBound) fillCorners(pos densityfn.Pos, cellX, cellY, cellZ int32) {
	cw, ch := ib.sampler.CellWidth(), ib.sampler.CellHeight()
	bl := pos.Blender()
	idx := 0
	for _, dy := range [2]int32{0, ch} {
		for _, dz := range [2]int32{0, cw} {
			for _, dx := range [2]int32{0, cw} {
				corner := BoundPos{Px: cellX + dx, Py: cellY + dy, Pz: cellZ + dz, Bl: bl}
				ib.corners[idx] = ib.input.Sample(corner)
				idx++
			}
		}
	}
	ib.hasCell, ib.cellX, ib.cellY, ib.cellZ = true, cellX, cellY, cellZ
}

// trilerp blends an 8-corner cube ordered (y,z,x) fastest-x, matching the
// corner-fill loop in fillCorners: corners[0..3] is the y=0 face
// (z0x0,z0x1,z1x0,z1x1), corners[4..7] the y=1 face.
func trilerp(c [8]float64, fx, fy, fz float64) float64 {
	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }

	y0z0 := lerp(c[0], c[1], fx)
	y0z1 := lerp(c[2], c[3], fx)
	y0 := lerp(y0z0, y0z1, fz)

	y1z0 := lerp(c[4], c[5], fx)
	y1z1 := lerp(c[6], c[7], fx)
	y1 := lerp(y1z0, y1z1, fz)

	return lerp(y0, y1, fy)
}

func (ib *InterpolatorBound) Fill(dest []float64, applier densityfn.Applier) {
	for i := range dest {
		dest[i] = ib.Sample(applier.At(i))
	}
}

func (ib *InterpolatorBound) Apply(visitor densityfn.Visitor) densityfn.Node {
	return visitor.Memoize(ib, func() densityfn.Node { return visitor.Apply(ib) })
}

func (ib *InterpolatorBound) Min() float64 { return ib.input.Min() }
func (ib *InterpolatorBound) Max() float64 { return ib.input.Max() }

func (ib *InterpolatorBound) NodeKind() string { return "InterpolatorBound" }
