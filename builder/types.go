package builder

import (
	"fmt"

	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

// NoiseRegistry maps the symbolic noise-parameter names Build consumes
// (continentalness, erosion, ridge, jagged, offset, the spaghetti/noodle/
// pillar cave families, ...) to the octave parameters used to build each
// named noise.Sampler.
type NoiseRegistry map[string]noise.Params

// lookup resolves name to a noise.Sampler seeded by cfg.seed, or a wrapped
// ErrMissingNoiseParam naming the missing key.
func (r NoiseRegistry) lookup(name string, seed int64) (noise.Sampler, error) {
	params, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingNoiseParam)
	}
	return noise.NewDoublePerlin(seed, params), nil
}

// SlopedCheeseBundle groups the five nodes §4.3's sloped-cheese composition
// produces for one terrain variant (overworld, large-biome, amplified).
type SlopedCheeseBundle struct {
	Offset       densityfn.Node
	Factor       densityfn.Node
	Depth        densityfn.Node
	Jaggedness   densityfn.Node
	SlopedCheese densityfn.Node
}

// BuiltIn is the fixed library of named root nodes Build assembles from a
// NoiseRegistry: every identity of the terrain this module generates lives
// in the exact shape of these graphs.
type BuiltIn struct {
	Zero densityfn.Node
	Ten  densityfn.Node

	BlendAlpha  densityfn.Node
	BlendOffset densityfn.Node

	Y densityfn.Node

	ShiftX densityfn.Node
	ShiftZ densityfn.Node

	Base3DNoiseOverworld densityfn.Node
	Base3DNoiseNether    densityfn.Node
	Base3DNoiseEnd       densityfn.Node

	ContinentsOverworld     densityfn.Node
	ErosionOverworld        densityfn.Node
	RidgesOverworld         densityfn.Node
	RidgesFoldedOverworld   densityfn.Node

	Overworld             SlopedCheeseBundle
	OverworldLargeBiome   SlopedCheeseBundle
	OverworldAmplified    SlopedCheeseBundle

	SlopedCheeseEnd densityfn.Node

	CavesSpaghettiRoughnessFunctionOverworld  densityfn.Node
	CavesSpaghetti2DThicknessModularOverworld densityfn.Node
	CavesSpaghetti2DOverworld                 densityfn.Node
	CavesEntrancesOverworld                   densityfn.Node
	CavesNoodleOverworld                      densityfn.Node
	CavesPillarsOverworld                     densityfn.Node
}

// Named looks up a built-in root by its symbolic name, mirroring the
// per-field accessors a hand-written getter-per-root surface would expose.
// Reports ok=false for unrecognized names.
func (b *BuiltIn) Named(name string) (densityfn.Node, bool) {
	switch name {
	case "zero":
		return b.Zero, true
	case "ten":
		return b.Ten, true
	case "blend_alpha":
		return b.BlendAlpha, true
	case "blend_offset":
		return b.BlendOffset, true
	case "y":
		return b.Y, true
	case "shift_x":
		return b.ShiftX, true
	case "shift_z":
		return b.ShiftZ, true
	case "base_3d_noise_overworld":
		return b.Base3DNoiseOverworld, true
	case "base_3d_noise_nether":
		return b.Base3DNoiseNether, true
	case "base_3d_noise_end":
		return b.Base3DNoiseEnd, true
	case "continents_overworld":
		return b.ContinentsOverworld, true
	case "erosion_overworld":
		return b.ErosionOverworld, true
	case "ridges_overworld":
		return b.RidgesOverworld, true
	case "ridges_folded_overworld":
		return b.RidgesFoldedOverworld, true
	case "sloped_cheese_overworld":
		return b.Overworld.SlopedCheese, true
	case "sloped_cheese_overworld_large_biome":
		return b.OverworldLargeBiome.SlopedCheese, true
	case "sloped_cheese_overworld_amplified":
		return b.OverworldAmplified.SlopedCheese, true
	case "sloped_cheese_end":
		return b.SlopedCheeseEnd, true
	case "caves_spaghetti_roughness_function_overworld":
		return b.CavesSpaghettiRoughnessFunctionOverworld, true
	case "caves_spaghetti_2d_thickness_modular_overworld":
		return b.CavesSpaghetti2DThicknessModularOverworld, true
	case "caves_spaghetti_2d_overworld":
		return b.CavesSpaghetti2DOverworld, true
	case "caves_entrances_overworld":
		return b.CavesEntrancesOverworld, true
	case "caves_noodle_overworld":
		return b.CavesNoodleOverworld, true
	case "caves_pillars_overworld":
		return b.CavesPillarsOverworld, true
	default:
		return nil, false
	}
}
