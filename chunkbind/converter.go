package chunkbind

import (
	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

// Converter is the ChunkSamplerConverter Visitor: bound to a chunk sampler,
// it replaces Wrapper nodes with their chunk-bound cache counterparts and
// the unbound blend proxies with their bound forms. All other nodes pass
// through unchanged — their children have already been rewritten by the
// post-order Apply contract.
type Converter struct {
	sampler ChunkNoiseSampler
}

// NewConverter builds a Converter bound to sampler.
func NewConverter(sampler ChunkNoiseSampler) *Converter {
	return &Converter{sampler: sampler}
}

// Apply implements densityfn.Visitor.
func (c *Converter) Apply(n densityfn.Node) densityfn.Node {
	if input, kind, ok := densityfn.WrapperInput(n); ok {
		switch kind {
		case densityfn.WrapperCache2D:
			return NewCache2DBound(input)
		case densityfn.WrapperCacheFlat:
			return NewFlatCacheBound(input, c.sampler)
		case densityfn.WrapperCacheOnce:
			return NewCacheOnceBound(input)
		case densityfn.WrapperCacheCell:
			return NewCellCacheBound(input, c.sampler)
		case densityfn.WrapperInterpolated:
			return NewInterpolatorBound(input, c.sampler)
		}
		return input
	}
	if densityfn.IsBlendAlpha(n) {
		return NewBlendAlphaBound(c.sampler.Blender())
	}
	if densityfn.IsBlendOffset(n) {
		return NewBlendOffsetBound(c.sampler.Blender())
	}
	return n
}

// ApplyInternalNoise implements densityfn.Visitor; Converter never
// substitutes noise samplers.
func (c *Converter) ApplyInternalNoise(ref noise.Sampler) noise.Sampler { return ref }
