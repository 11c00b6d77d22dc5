package densityfn

import "github.com/katalvlaran/densegraph/noise"

// Visitor is the structural-rewrite contract driven by Node.Apply. Apply is
// called once per node, after that node's children have already been
// rewritten (post-order) — see Node.Apply's contract.
type Visitor interface {
	// Apply receives a node whose children (if any) are already rewritten
	// and returns the node that should replace it — itself, for visitors
	// that only care about specific kinds.
	Apply(n Node) Node

	// ApplyInternalNoise lets a visitor substitute the noise sampler
	// backing Noise/ShiftA/ShiftB/ShiftedNoise nodes, e.g. to re-seed a
	// graph. Visitors that don't touch noise samplers return ref unchanged.
	ApplyInternalNoise(ref noise.Sampler) noise.Sampler

	// Memoize lets a Node.Apply implementation consult a sharing-preserving
	// cache keyed on n — the receiver as seen BEFORE descending into its
	// children — before running rewrite, which performs the actual
	// children-first descent and the call to Apply. A node reachable from
	// N parents must still call rewrite at most once: Visitors that don't
	// cache (UnwrapVisitor, one-shot rewrites) implement this as a
	// pass-through that always calls rewrite.
	Memoize(n Node, rewrite func() Node) Node
}

// unwrapVisitor strips every Wrapper node down to its inner child, leaving
// everything else untouched. Used to recover the logical, cache-free graph
// for testing.
type unwrapVisitor struct{}

// UnwrapVisitor is the identity-preserving Visitor that removes wrapper
// annotations (Cache2D, CacheFlat, CacheOnce, CacheCell, Interpolated).
var UnwrapVisitor Visitor = unwrapVisitor{}

func (unwrapVisitor) Apply(n Node) Node {
	if w, ok := n.(*wrapperNode); ok {
		return w.input
	}
	return n
}

func (unwrapVisitor) ApplyInternalNoise(ref noise.Sampler) noise.Sampler {
	return ref
}

func (unwrapVisitor) Memoize(_ Node, rewrite func() Node) Node {
	return rewrite()
}
