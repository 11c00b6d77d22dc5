package densityfn

import "math"

// endIslandNode is a closed-form island-mask function: islands are denser
// near (0,0) and fall off with distance, perturbed by a seeded integer hash
// so neighboring islands don't form a perfect ring.
type endIslandNode struct {
	seed int64
}

// EndIsland builds the closed-form End-island mask node for the given seed.
func EndIsland(seed int64) Node {
	return &endIslandNode{seed: seed}
}

func (n *endIslandNode) Sample(pos Pos) float64 {
	cellX, cellZ := pos.X()>>4, pos.Z()>>4
	var best float64 = 100.0
	for dx := int32(-12); dx <= 12; dx++ {
		for dz := int32(-12); dz <= 12; dz++ {
			cx, cz := cellX+dx, cellZ+dz
			if cx*cx+cz*cz > 4096 {
				continue
			}
			h := islandHash(n.seed, cx, cz)
			dist := math.Hypot(float64(pos.X())-float64(cx)*16, float64(pos.Z())-float64(cz)*16)
			score := dist/8 - h
			if score < best {
				best = score
			}
		}
	}
	v := (-best+0.25)*0.25 - 0.4
	return clampValue(v, -1, 1)
}

func islandHash(seed int64, x, z int32) float64 {
	h := seed
	h = h*6364136223846793005 + int64(x)*3266489917 + 1
	h = h*6364136223846793005 + int64(z)*3266489917 + 1
	h ^= h >> 29
	frac := float64(uint64(h)%10000) / 10000.0
	return frac * 2
}

func (n *endIslandNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *endIslandNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node { return visitor.Apply(n) })
}

func (n *endIslandNode) Min() float64 { return -1 }
func (n *endIslandNode) Max() float64 { return 1 }

func (n *endIslandNode) NodeKind() string { return "EndIsland" }
