package densityfn

import "github.com/katalvlaran/densegraph/noise"

// RarityMapper converts a modulator value into a per-region scale factor
// for a Weird node. Caves and Tunnels are the two fixed piecewise maps the
// built-in cave functions use; both are monotonic step tables, representative
// of the shape used by the reviewed cave-generation recipes rather than a
// reproduction of any specific tuned table.
type RarityMapper func(v float64) float64

// rarityEntry is one (threshold, scale) step of the table shape shared by
// Caves and Tunnels. mapRarity returns the scale of the first entry whose
// threshold exceeds v (the last entry's scale past the end), so entries
// must be sorted by ascending threshold.
type rarityEntry struct {
	threshold float64
	scale     float64
}

func mapRarity(v float64, table []rarityEntry) float64 {
	for _, e := range table {
		if v < e.threshold {
			return e.scale
		}
	}
	return table[len(table)-1].scale
}

// CavesRarity is the RarityMapper used by the spaghetti-2D and pillar cave
// recipes.
var CavesRarity RarityMapper = func(v float64) float64 {
	return mapRarity(v, []rarityEntry{
		{threshold: -0.5, scale: 0.75},
		{threshold: 0, scale: 1.0},
		{threshold: 0.5, scale: 1.5},
		{threshold: 1.0, scale: 2.0},
	})
}

// TunnelsRarity is the RarityMapper used by the entrance cave recipe.
var TunnelsRarity RarityMapper = func(v float64) float64 {
	return mapRarity(v, []rarityEntry{
		{threshold: -0.75, scale: 0.5},
		{threshold: -0.25, scale: 0.75},
		{threshold: 0.25, scale: 1.0},
		{threshold: 0.75, scale: 1.5},
		{threshold: 1.0, scale: 3.0},
	})
}

// weirdNode computes rarity.map(modulator.Sample(pos)) * noiseRef scaled at
// pos; the rarity-mapped modulator acts as a per-region amplitude for the
// noise lookup.
type weirdNode struct {
	modulator       Node
	ref             noise.Sampler
	rarity          RarityMapper
	xzScale, yScale float64
}

// Weird builds a node combining modulator's rarity-mapped value with a
// scaled noise sample.
func Weird(modulator Node, ref noise.Sampler, rarity RarityMapper, xzScale, yScale float64) Node {
	return &weirdNode{modulator: modulator, ref: ref, rarity: rarity, xzScale: xzScale, yScale: yScale}
}

func (n *weirdNode) Sample(pos Pos) float64 {
	scale := n.rarity(n.modulator.Sample(pos))
	x, y, z := float64(pos.X())*n.xzScale, float64(pos.Y())*n.yScale, float64(pos.Z())*n.xzScale
	return scale * n.ref.Sample(x, y, z)
}

func (n *weirdNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *weirdNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node {
		clone := &weirdNode{
			modulator: n.modulator.Apply(visitor),
			ref:       visitor.ApplyInternalNoise(n.ref),
			rarity:    n.rarity,
			xzScale:   n.xzScale, yScale: n.yScale,
		}
		return visitor.Apply(clone)
	})
}

// Min and Max use a fixed, generous rarity ceiling (3.0, the widest scale
// either built-in table produces) rather than inspecting the table, since
// RarityMapper is an opaque func value.
func (n *weirdNode) Min() float64 { return -3.0 * n.ref.MaxValue() }
func (n *weirdNode) Max() float64 { return 3.0 * n.ref.MaxValue() }

func (n *weirdNode) NodeKind() string { return "Weird" }
