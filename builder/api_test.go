package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/builder"
	"github.com/katalvlaran/densegraph/chunkbind"
	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

func fullRegistry() builder.NoiseRegistry {
	reg := builder.NoiseRegistry{}
	names := []string{
		"offset", "base_3d_overworld", "base_3d_nether", "base_3d_end",
		"continentalness", "erosion", "ridge", "jagged",
		"spaghetti_roughness", "spaghetti_roughness_modulator",
		"spaghetti_2d_thickness", "spaghetti_2d_modulator", "spaghetti_2d",
		"entrance_modulator", "entrance_noise", "spaghetti_3d_1", "spaghetti_3d_2",
		"noodle_toggle", "noodle_thickness", "noodle_ridge_a", "noodle_ridge_b",
		"pillar_noise", "pillar_rareness", "pillar_thickness", "pillar",
	}
	for _, n := range names {
		reg[n] = noise.Params{FirstOctave: -4, Amplitudes: []float64{1, 1, 1}}
	}
	return reg
}

func TestBuildMissingKey(t *testing.T) {
	reg := builder.NoiseRegistry{}
	_, err := builder.Build(reg, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrMissingNoiseParam)
}

func TestBuildNilRegistry(t *testing.T) {
	_, err := builder.Build(nil)
	require.ErrorIs(t, err, builder.ErrNilRegistry)
}

func TestBuildProducesEveryNamedRoot(t *testing.T) {
	built, err := builder.Build(fullRegistry(), builder.WithSeed(42))
	require.NoError(t, err)
	require.NotNil(t, built.Zero)
	require.NotNil(t, built.Ten)
	require.NotNil(t, built.Y)
	require.NotNil(t, built.ShiftX)
	require.NotNil(t, built.ShiftZ)
	require.NotNil(t, built.Base3DNoiseOverworld)
	require.NotNil(t, built.Overworld.SlopedCheese)
	require.NotNil(t, built.OverworldAmplified.SlopedCheese)
	require.NotNil(t, built.SlopedCheeseEnd)
	require.NotNil(t, built.CavesNoodleOverworld)

	_, ok := built.Named("sloped_cheese_overworld")
	require.True(t, ok)
	_, ok = built.Named("nonexistent")
	require.False(t, ok)
}

func TestBuildSlopedCheeseSamplesWithinBounds(t *testing.T) {
	built, err := builder.Build(fullRegistry(), builder.WithSeed(7))
	require.NoError(t, err)

	sampler := chunkbind.NewSimpleChunkSampler(0, -64, 0, 16, 384, 4, 8)
	binding, err := chunkbind.NewBinding(sampler)
	require.NoError(t, err)

	bound := binding.Bind(built.Overworld.SlopedCheese)
	v := bound.Sample(chunkbind.BoundPos{Px: 8, Py: 64, Pz: 8, Bl: densityfn.NoBlend})
	require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	require.GreaterOrEqual(t, v, bound.Min())
	require.LessOrEqual(t, v, bound.Max())
}

func TestBuildAmplifiedWidensOffset(t *testing.T) {
	built, err := builder.Build(fullRegistry(), builder.WithSeed(3), builder.WithAmplified())
	require.NoError(t, err)
	require.NotNil(t, built.OverworldAmplified.Offset)
	require.Greater(t, built.OverworldAmplified.Offset.Max(), built.Overworld.Offset.Max())
}

// TestCavesWeirdRootsAreNotDegenerateZero guards against the Weird cave
// nodes silently scaling by a Const{Value: 0} noise field: with a real
// noise field wired in, sampling across a handful of positions should not
// come back as the constant zero every pillars/entrances/spaghetti-2D
// sample would produce if Weird's ref were degenerate.
func TestCavesWeirdRootsAreNotDegenerateZero(t *testing.T) {
	built, err := builder.Build(fullRegistry(), builder.WithSeed(11))
	require.NoError(t, err)

	sampler := chunkbind.NewSimpleChunkSampler(0, -64, 0, 16, 384, 4, 8)
	binding, err := chunkbind.NewBinding(sampler)
	require.NoError(t, err)

	roots := map[string]densityfn.Node{
		"pillars":      built.CavesPillarsOverworld,
		"entrances":    built.CavesEntrancesOverworld,
		"spaghetti_2d": built.CavesSpaghetti2DOverworld,
	}
	for name, root := range roots {
		bound := binding.Bind(root)
		nonZero := false
		for _, x := range []int32{0, 3, 7, 11} {
			pos := chunkbind.BoundPos{Px: x, Py: 64, Pz: x, Bl: densityfn.NoBlend}
			if bound.Sample(pos) != 0 {
				nonZero = true
				break
			}
		}
		require.True(t, nonZero, "%s sampled to 0 at every probed position", name)
	}
}
