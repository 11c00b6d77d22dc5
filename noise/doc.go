// Package noise defines the contract that densityfn's Noise-family nodes
// consume, and ships a reference sampler implementation good enough to make
// the rest of the module testable.
//
// densityfn treats noise generation as an external collaborator: every node
// that needs a scalar field over (x, y, z) only ever calls Sample and
// MaxValue on a Sampler value. How the bits are produced — Perlin, simplex,
// hashed value noise, or something else entirely — is this package's
// business alone, and swapping DoublePerlin for another Sampler never
// changes densityfn's semantics.
//
// Deterministic per seed: two Samplers built from the same seed and Params
// produce bit-identical output for the lifetime of the process. Sample must
// never be called with NaN/Inf coordinates; behavior in that case is
// undefined at the contract level (see spec.md §7).
package noise
