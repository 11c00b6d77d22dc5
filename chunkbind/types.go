package chunkbind

import "github.com/katalvlaran/densegraph/densityfn"

// ChunkNoiseSampler is the per-chunk collaborator a Binding asks for block
// range, cell-grid shape, and per-cell interpolation fractions. Concrete
// implementations own the chunk's coordinate system; the bound cache node
// types in this package only ever go through this interface.
type ChunkNoiseSampler interface {
	// MinBlockX, MinBlockY, MinBlockZ are the chunk's block-space origin.
	MinBlockX() int32
	MinBlockY() int32
	MinBlockZ() int32

	// HorizontalBlockCount is the chunk's width in blocks along X and Z.
	HorizontalBlockCount() int32

	// VerticalBlockCount is the chunk's height in blocks along Y.
	VerticalBlockCount() int32

	// CellWidth and CellHeight are the cell grid's block span horizontally
	// and vertically; InterpolatorBound and CellCacheBound tile the chunk
	// into cells of this size.
	CellWidth() int32
	CellHeight() int32

	// ColumnIndex maps a block (x, z) within the chunk to a flat index into
	// a FlatCacheBound buffer; NumColumns is that buffer's required length.
	ColumnIndex(x, z int32) int
	NumColumns() int

	// CellCorner maps pos to a cell-corner index when pos lies exactly on a
	// cell corner (ok==false otherwise); NumCellCorners is the buffer
	// length a CellCacheBound needs.
	CellCorner(pos densityfn.Pos) (idx int, ok bool)
	NumCellCorners() int

	// CellFractions resolves pos to the interpolation fractions within its
	// containing cell (each in [0,1)) and that cell's lower corner
	// coordinates, for InterpolatorBound's tri-linear blend.
	CellFractions(pos densityfn.Pos) (cellX, cellY, cellZ int32, fx, fy, fz float64)

	// Blender is the active neighbor-chunk blending facility for this
	// chunk, or densityfn.NoBlend if none.
	Blender() densityfn.Blender
}

// ColumnApplier iterates every (x, z) column in a ChunkNoiseSampler at a
// fixed Y, the shape FlatCacheBound.Fill expects.
type ColumnApplier struct {
	Sampler ChunkNoiseSampler
	Y       int32
}

// At implements densityfn.Applier.
func (a ColumnApplier) At(i int) densityfn.Pos {
	width := a.Sampler.HorizontalBlockCount()
	x := int32(i) % width
	z := int32(i) / width
	return BoundPos{
		Px: a.Sampler.MinBlockX() + x,
		Py: a.Y,
		Pz: a.Sampler.MinBlockZ() + z,
		Bl: a.Sampler.Blender(),
	}
}

// Fill implements densityfn.Applier by sampling n at every column position.
func (a ColumnApplier) Fill(dest []float64, n densityfn.Node) {
	for i := range dest {
		dest[i] = n.Sample(a.At(i))
	}
}

// BoundPos is a densityfn.Pos carrying the chunk's active Blender.
type BoundPos struct {
	Px, Py, Pz int32
	Bl         densityfn.Blender
}

func (p BoundPos) X() int32                  { return p.Px }
func (p BoundPos) Y() int32                  { return p.Py }
func (p BoundPos) Z() int32                  { return p.Pz }
func (p BoundPos) Blender() densityfn.Blender { return p.Bl }
