package chunkbind

import "github.com/katalvlaran/densegraph/densityfn"

// SimpleChunkSampler is a reference ChunkNoiseSampler covering one
// rectangular chunk: width x width blocks horizontally, height blocks
// vertically, tiled into cells of cellWidth x cellHeight blocks. Good enough
// to exercise every bound cache node in tests and the demo CLI.
type SimpleChunkSampler struct {
	MinX, MinY, MinZ   int32
	Width, Height      int32
	CellW, CellH       int32
	Active             densityfn.Blender
}

// NewSimpleChunkSampler builds a SimpleChunkSampler with densityfn.NoBlend
// as its active blender.
func NewSimpleChunkSampler(minX, minY, minZ, width, height, cellW, cellH int32) *SimpleChunkSampler {
	return &SimpleChunkSampler{
		MinX: minX, MinY: minY, MinZ: minZ,
		Width: width, Height: height,
		CellW: cellW, CellH: cellH,
		Active: densityfn.NoBlend,
	}
}

func (s *SimpleChunkSampler) MinBlockX() int32 { return s.MinX }
func (s *SimpleChunkSampler) MinBlockY() int32 { return s.MinY }
func (s *SimpleChunkSampler) MinBlockZ() int32 { return s.MinZ }

func (s *SimpleChunkSampler) HorizontalBlockCount() int32 { return s.Width }
func (s *SimpleChunkSampler) VerticalBlockCount() int32   { return s.Height }

func (s *SimpleChunkSampler) CellWidth() int32  { return s.CellW }
func (s *SimpleChunkSampler) CellHeight() int32 { return s.CellH }

func (s *SimpleChunkSampler) ColumnIndex(x, z int32) int {
	lx, lz := x-s.MinX, z-s.MinZ
	return int(lz*s.Width + lx)
}

func (s *SimpleChunkSampler) NumColumns() int {
	return int(s.Width * s.Width)
}

func (s *SimpleChunkSampler) cellCounts() (nx, ny, nz int32) {
	nx = s.Width/s.CellW + 1
	ny = s.Height/s.CellH + 1
	nz = s.Width/s.CellW + 1
	return
}

func (s *SimpleChunkSampler) CellCorner(pos densityfn.Pos) (int, bool) {
	lx, ly, lz := pos.X()-s.MinX, pos.Y()-s.MinY, pos.Z()-s.MinZ
	if lx%s.CellW != 0 || ly%s.CellH != 0 || lz%s.CellW != 0 {
		return 0, false
	}
	nx, _, nz := s.cellCounts()
	cx, cy, cz := lx/s.CellW, ly/s.CellH, lz/s.CellW
	idx := int(cy*nz*nx + cz*nx + cx)
	return idx, true
}

func (s *SimpleChunkSampler) NumCellCorners() int {
	nx, ny, nz := s.cellCounts()
	return int(nx * ny * nz)
}

func (s *SimpleChunkSampler) CellFractions(pos densityfn.Pos) (cellX, cellY, cellZ int32, fx, fy, fz float64) {
	lx, ly, lz := pos.X()-s.MinX, pos.Y()-s.MinY, pos.Z()-s.MinZ

	cx := lx / s.CellW
	cy := ly / s.CellH
	cz := lz / s.CellW

	cellX = s.MinX + cx*s.CellW
	cellY = s.MinY + cy*s.CellH
	cellZ = s.MinZ + cz*s.CellW

	fx = float64(lx%s.CellW) / float64(s.CellW)
	fy = float64(ly%s.CellH) / float64(s.CellH)
	fz = float64(lz%s.CellW) / float64(s.CellW)
	return
}

func (s *SimpleChunkSampler) Blender() densityfn.Blender { return s.Active }
