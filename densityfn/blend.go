package densityfn

import "math"

// blendAlphaNode proxies pos.Blender().ApplyBlendAlpha. Under NoBlend this
// is the constant 1; an active blender (see chunkbind) interpolates against
// neighbor-chunk data. The unbound form consults the Blender directly
// through Pos rather than waiting for a chunk binding — a bound graph
// instead rewrites this node to chunkbind.BlendAlphaBound, which amortizes
// the lookup per chunk.
type blendAlphaNode struct{}

// BlendAlpha is the singleton unbound blend-alpha proxy node.
var BlendAlpha Node = blendAlphaNode{}

func (blendAlphaNode) Sample(pos Pos) float64 { return pos.Blender().ApplyBlendAlpha(pos) }
func (blendAlphaNode) Fill(dest []float64, applier Applier) {
	fillBySample(blendAlphaNode{}, dest, applier)
}
func (blendAlphaNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(blendAlphaNode{}, func() Node { return visitor.Apply(blendAlphaNode{}) })
}
func (blendAlphaNode) Min() float64               { return 0 }
func (blendAlphaNode) Max() float64               { return 1 }
func (blendAlphaNode) NodeKind() string           { return "BlendAlpha" }

// blendOffsetNode proxies pos.Blender().ApplyBlendOffset. Under NoBlend
// this is the constant 0.
type blendOffsetNode struct{}

// BlendOffset is the singleton unbound blend-offset proxy node.
var BlendOffset Node = blendOffsetNode{}

func (blendOffsetNode) Sample(pos Pos) float64 { return pos.Blender().ApplyBlendOffset(pos) }
func (blendOffsetNode) Fill(dest []float64, applier Applier) {
	fillBySample(blendOffsetNode{}, dest, applier)
}
func (blendOffsetNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(blendOffsetNode{}, func() Node { return visitor.Apply(blendOffsetNode{}) })
}
func (blendOffsetNode) Min() float64               { return -1 }
func (blendOffsetNode) Max() float64               { return 1 }
func (blendOffsetNode) NodeKind() string           { return "BlendOffset" }

// blendDensityNode proxies pos.Blender().ApplyBlendDensity(pos, inner.Sample(pos)).
// Under NoBlend this passes inner's sample through unchanged.
type blendDensityNode struct {
	inner Node
}

// BlendDensity wraps inner so its sampled value is mixed with
// neighbor-chunk data under an active blender.
func BlendDensity(inner Node) Node {
	return &blendDensityNode{inner: inner}
}

func (n *blendDensityNode) Sample(pos Pos) float64 {
	return pos.Blender().ApplyBlendDensity(pos, n.inner.Sample(pos))
}

func (n *blendDensityNode) Fill(dest []float64, applier Applier) { fillBySample(n, dest, applier) }

func (n *blendDensityNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(n, func() Node {
		clone := &blendDensityNode{inner: n.inner.Apply(visitor)}
		return visitor.Apply(clone)
	})
}

// Min and Max widen generously since an active blender may mix in
// arbitrary neighbor-chunk density beyond inner's own bounds.
func (n *blendDensityNode) Min() float64 { return math.Inf(-1) }
func (n *blendDensityNode) Max() float64 { return math.Inf(1) }

func (n *blendDensityNode) NodeKind() string { return "BlendDensity" }

// IsBlendAlpha reports whether n is the unbound BlendAlpha proxy, letting a
// binding Converter recognize it without depending on densityfn's
// unexported node types.
func IsBlendAlpha(n Node) bool {
	_, ok := n.(blendAlphaNode)
	return ok
}

// IsBlendOffset reports whether n is the unbound BlendOffset proxy.
func IsBlendOffset(n Node) bool {
	_, ok := n.(blendOffsetNode)
	return ok
}
