// Package builder assembles the fixed library of named built-in density
// functions — shift offsets, the three base 3D noises, the overworld
// terrain-shape roots, the three sloped-cheese bundles, the End island
// density, and the six cave functions — from a seeded NoiseRegistry.
//
// Build is the single entry point, composed of per-concern impl_*.go files
// the way the reviewed graph-assembly package splits named topology
// constructors across files sharing one registry and one functional-option
// configuration. Construction-time failures (a missing registry key) abort
// with a wrapped ErrMissingNoiseParam; the resulting graph never errors at
// sample time.
package builder
