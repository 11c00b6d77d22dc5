// Package chunkbind implements the rewrite pass that binds an unbound
// density-function graph to a single chunk: a Converter visitor replaces
// generic Wrapper nodes with chunk-bound cache nodes that amortize
// evaluation across an entire column, slab, or cell grid, and replaces the
// unbound BlendAlpha/BlendOffset proxies with their bound forms.
//
// A Binding owns the Converter and the rewrite memo that keeps shared
// sub-expressions shared after rewriting (see Binding.Bind). Bound cache
// nodes are never shared across chunks — each Binding allocates its own.
package chunkbind
