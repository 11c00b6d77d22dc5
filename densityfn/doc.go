// Package densityfn implements the node family at the heart of the density
// evaluation graph: a tagged set of node kinds that all expose the same
// four operations — Sample, Fill, Apply (structural rewrite), and static
// Min/Max bounds — over a 3D integer position.
//
// Nodes are immutable once constructed. Expression constructors (Add, Mul,
// Min, Max, Abs, ...) fold constants eagerly so that built graphs never
// carry redundant arithmetic from them; Clamp builds its node without
// folding. A Node never errors: Sample always returns a
// float64, by contract of the evaluation model this package implements.
//
// Wrapper nodes (Cache2D, CacheFlat, CacheOnce, CacheCell, Interpolated)
// are transparent at Sample time and exist purely as markers for a later
// rewrite pass — see the chunkbind package, which replaces them with
// chunk-bound caches when a graph is bound to a chunk.
package densityfn
