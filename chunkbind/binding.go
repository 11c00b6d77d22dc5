package chunkbind

import (
	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

// Binding rewrites one or more root nodes against a single chunk, sharing a
// memo keyed by node identity so a sub-expression reachable from multiple
// roots is rewritten exactly once — required for CacheOnceBound and
// friends to keep their amortizing effect after rewriting.
type Binding struct {
	sampler   ChunkNoiseSampler
	converter *Converter
	memo      map[densityfn.Node]densityfn.Node
}

// NewBinding builds a Binding over sampler. Returns ErrNilChunkSampler if
// sampler is nil.
func NewBinding(sampler ChunkNoiseSampler) (*Binding, error) {
	if sampler == nil {
		return nil, ErrNilChunkSampler
	}
	return &Binding{
		sampler:   sampler,
		converter: NewConverter(sampler),
		memo:      make(map[densityfn.Node]densityfn.Node),
	}, nil
}

// Bind rewrites root against this Binding's chunk sampler, returning the
// bound graph. Every Node.Apply implementation routes its rewrite through
// memoizingVisitor.Memoize, consulted on the node as it stood before any
// child rewriting — so a sub-expression reachable from several roots (or
// several times within one root) is rewritten exactly once, at whatever
// depth it first appears, and every later reference to it gets back that
// same instance. Calling Bind again with a root already seen through this
// Binding short-circuits the root.Apply call entirely via the same memo.
func (b *Binding) Bind(root densityfn.Node) densityfn.Node {
	if cached, ok := b.memo[root]; ok {
		return cached
	}
	return root.Apply(memoizingVisitor{inner: b.converter, memo: b.memo})
}

// Sampler returns the ChunkNoiseSampler this Binding is bound to.
func (b *Binding) Sampler() ChunkNoiseSampler { return b.sampler }

// memoizingVisitor wraps Converter so that Node.Apply's per-node rewrite
// (children-first) also consults and populates the shared memo, preserving
// handle sharing across however many parents reference the same child.
type memoizingVisitor struct {
	inner *Converter
	memo  map[densityfn.Node]densityfn.Node
}

func (v memoizingVisitor) Apply(n densityfn.Node) densityfn.Node {
	return v.inner.Apply(n)
}

func (v memoizingVisitor) ApplyInternalNoise(ref noise.Sampler) noise.Sampler {
	return v.inner.ApplyInternalNoise(ref)
}

// Memoize is what actually preserves sharing: it is consulted on n — the
// node as it stood BEFORE any child rewriting — so a handle reachable from
// N parents runs rewrite (children-first descent, then Apply) at most once,
// and every parent after the first gets back the same rewritten instance.
func (v memoizingVisitor) Memoize(n densityfn.Node, rewrite func() densityfn.Node) densityfn.Node {
	if cached, ok := v.memo[n]; ok {
		return cached
	}
	rewritten := rewrite()
	v.memo[n] = rewritten
	return rewritten
}
