package chunkbind

import "github.com/katalvlaran/densegraph/densityfn"

// BlendAlphaBound replaces the unbound BlendAlpha proxy once a graph is
// bound to a chunk. It delegates to the chunk's Blender; under NoBlend this
// behaves as Constant(1).
type BlendAlphaBound struct {
	blender densityfn.Blender
}

// NewBlendAlphaBound builds a bound blend-alpha node consulting blender.
func NewBlendAlphaBound(blender densityfn.Blender) *BlendAlphaBound {
	return &BlendAlphaBound{blender: blender}
}

func (b *BlendAlphaBound) Sample(pos densityfn.Pos) float64 { return b.blender.ApplyBlendAlpha(pos) }
func (b *BlendAlphaBound) Fill(dest []float64, applier densityfn.Applier) {
	for i := range dest {
		dest[i] = b.Sample(applier.At(i))
	}
}
func (b *BlendAlphaBound) Apply(visitor densityfn.Visitor) densityfn.Node {
	return visitor.Memoize(b, func() densityfn.Node { return visitor.Apply(b) })
}
func (b *BlendAlphaBound) Min() float64                                  { return 0 }
func (b *BlendAlphaBound) Max() float64                                  { return 1 }
func (b *BlendAlphaBound) NodeKind() string                              { return "BlendAlphaBound" }

// BlendOffsetBound replaces the unbound BlendOffset proxy once a graph is
// bound to a chunk. Under NoBlend this behaves as Constant(0).
type BlendOffsetBound struct {
	blender densityfn.Blender
}

// NewBlendOffsetBound builds a bound blend-offset node consulting blender.
func NewBlendOffsetBound(blender densityfn.Blender) *BlendOffsetBound {
	return &BlendOffsetBound{blender: blender}
}

func (b *BlendOffsetBound) Sample(pos densityfn.Pos) float64 { return b.blender.ApplyBlendOffset(pos) }
func (b *BlendOffsetBound) Fill(dest []float64, applier densityfn.Applier) {
	for i := range dest {
		dest[i] = b.Sample(applier.At(i))
	}
}
func (b *BlendOffsetBound) Apply(visitor densityfn.Visitor) densityfn.Node {
	return visitor.Memoize(b, func() densityfn.Node { return visitor.Apply(b) })
}
func (b *BlendOffsetBound) Min() float64                                  { return -1 }
func (b *BlendOffsetBound) Max() float64                                  { return 1 }
func (b *BlendOffsetBound) NodeKind() string                              { return "BlendOffsetBound" }
