// Package densegraph is an in-memory density-function evaluation graph for
// voxel terrain generation.
//
// A density function is a small DAG of Node values — noise lookups,
// arithmetic combinators, splines, clamps, range selectors and chunk-scoped
// caching wrappers — sampled once per block position to decide where stone
// ends and air begins. densegraph builds that DAG, rewrites it into a form
// bound to a particular chunk's cache geometry, and evaluates it.
//
// The module is organized as:
//
//	noise/     — the noise-sampler contract + a reference double-Perlin sampler
//	spline/    — the spline contract + a reference multi-knot evaluator
//	densityfn/ — Node variants, Pos/Applier, the Visitor rewrite contract
//	chunkbind/ — chunk-bound cache nodes, the sampler-to-cache Converter
//	builder/   — assembles a registry of named noise parameters into the
//	             built-in overworld/nether/end/cave graphs
//
// densityfn, chunkbind and builder are pure computation: no I/O, no
// logging, no global state. cmd/densegraphdemo is the one place that wires
// a concrete chunk sampler and noise registry together and prints a sampled
// column, the way lvlath's examples/ package exercises its library from the
// outside rather than from within it.
//
//	go get github.com/katalvlaran/densegraph/densityfn
package densegraph
