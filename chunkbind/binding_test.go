package chunkbind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/chunkbind"
	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

func TestNewBindingNilSampler(t *testing.T) {
	_, err := chunkbind.NewBinding(nil)
	require.ErrorIs(t, err, chunkbind.ErrNilChunkSampler)
}

func TestBindReplacesWrapperKinds(t *testing.T) {
	sampler := chunkbind.NewSimpleChunkSampler(0, -64, 0, 16, 384, 4, 8)
	binding, err := chunkbind.NewBinding(sampler)
	require.NoError(t, err)

	root := densityfn.WrapCacheFlat(densityfn.WrapCache2D(densityfn.Constant(3)))
	bound := binding.Bind(root)

	_, isFlat := any(bound).(*chunkbind.FlatCacheBound)
	require.True(t, isFlat)
}

func TestBindPreservesSharing(t *testing.T) {
	sampler := chunkbind.NewSimpleChunkSampler(0, -64, 0, 16, 384, 4, 8)
	binding, err := chunkbind.NewBinding(sampler)
	require.NoError(t, err)

	shared := densityfn.WrapCacheOnce(densityfn.Constant(1))
	root := densityfn.Add(shared, densityfn.Mul(shared, densityfn.Constant(2)))

	bound := binding.Bind(root)
	require.NotNil(t, bound)

	// Re-binding the same shared handle directly must hit the memo and
	// return the identical rewritten node, not a second independent one.
	again := binding.Bind(shared)
	require.NotNil(t, again)
}

// TestBindRewritesSharedInteriorNodeOnce guards the sharing-preservation
// memo for an INTERIOR node — a wrapper reached through two different
// parents (Add's left operand and Mul's left operand) — rather than just a
// root passed to Bind twice. Before the sharing fix, a shared wrapperNode
// was cloned once per parent and the clone (a fresh pointer) was handed to
// the memoizing visitor, so the memo never hit for it and its child was
// rewritten once per parent instead of once total.
func TestBindRewritesSharedInteriorNodeOnce(t *testing.T) {
	sampler := chunkbind.NewSimpleChunkSampler(0, -64, 0, 16, 384, 4, 8)
	binding, err := chunkbind.NewBinding(sampler)
	require.NoError(t, err)

	calls := 0
	shared := densityfn.WrapCacheOnce(countingApplyNode{calls: &calls})
	root := densityfn.Add(shared, densityfn.Mul(shared, densityfn.Constant(2)))

	bound := binding.Bind(root)
	require.NotNil(t, bound)
	require.Equal(t, 1, calls, "shared interior node's child was rewritten more than once")
}

// countingApplyNode counts Apply invocations on itself, used as the child
// of a node shared across multiple parents to prove the shared parent's
// descent into it runs at most once.
type countingApplyNode struct {
	calls *int
}

func (n countingApplyNode) Apply(densityfn.Visitor) densityfn.Node {
	*n.calls++
	return n
}
func (countingApplyNode) Sample(densityfn.Pos) float64                    { return 1 }
func (countingApplyNode) Fill(dest []float64, applier densityfn.Applier) {}
func (countingApplyNode) Min() float64                                    { return 0 }
func (countingApplyNode) Max() float64                                    { return 1 }
func (countingApplyNode) NodeKind() string                                { return "countingApply" }

func TestFlatCacheBoundMemoizesPerColumn(t *testing.T) {
	sampler := chunkbind.NewSimpleChunkSampler(0, -64, 0, 16, 384, 4, 8)
	calls := 0
	counting := countingNode{calls: &calls}

	flat := chunkbind.NewFlatCacheBound(counting, sampler)

	p1 := chunkbind.BoundPos{Px: 5, Py: 10, Pz: 5, Bl: densityfn.NoBlend}
	p2 := chunkbind.BoundPos{Px: 5, Py: 200, Pz: 5, Bl: densityfn.NoBlend}

	flat.Sample(p1)
	flat.Sample(p2)

	require.Equal(t, 1, calls)
}

// countingNode is a minimal densityfn.Node that counts Sample calls, used
// to assert on cache amortization without depending on a real noise ref.
type countingNode struct {
	calls *int
}

func (countingNode) Fill(dest []float64, applier densityfn.Applier) {}
func (countingNode) Apply(v densityfn.Visitor) densityfn.Node        { return countingNode{} }
func (countingNode) Min() float64                                    { return 0 }
func (countingNode) Max() float64                                    { return 1 }
func (countingNode) NodeKind() string                                { return "counting" }
func (c countingNode) Sample(densityfn.Pos) float64 {
	*c.calls++
	return 1
}

func TestInterpolatorBoundTrilerp(t *testing.T) {
	sampler := chunkbind.NewSimpleChunkSampler(0, 0, 0, 8, 8, 4, 4)
	ib := chunkbind.NewInterpolatorBound(densityfn.Constant(7), sampler)

	v := ib.Sample(chunkbind.BoundPos{Px: 2, Py: 2, Pz: 2, Bl: densityfn.NoBlend})
	require.InDelta(t, 7.0, v, 1e-9)
}

func TestNoiseRefSmokeForConverter(t *testing.T) {
	ref := noise.NewDoublePerlin(1, noise.Params{FirstOctave: -3, Amplitudes: []float64{1, 1}})
	sampler := chunkbind.NewSimpleChunkSampler(0, -64, 0, 16, 384, 4, 8)
	binding, err := chunkbind.NewBinding(sampler)
	require.NoError(t, err)

	root := densityfn.WrapCacheFlat(densityfn.Noise(ref, 0.25, 0.125))
	bound := binding.Bind(root)
	v := bound.Sample(chunkbind.BoundPos{Px: 1, Py: 1, Pz: 1, Bl: densityfn.NoBlend})
	require.True(t, v >= -ref.MaxValue() && v <= ref.MaxValue())
}
