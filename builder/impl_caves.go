package builder

import (
	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

// caveRegistryKeys names the noise-parameter keys the six cave recipes
// consume. Exact cave-noise tuning is out of scope (spec.md §1's
// terrain-shape-table Non-goal extends naturally to cave shaping); these
// recipes are representative algebraic combinations of Weird, Range,
// ClampedY and noise_in_range over named registry entries, in the shape
// the reviewed source's cave functions use.
//
// spaghetti_2d, spaghetti_3d_1, spaghetti_3d_2 and pillar are the noise
// fields the three Weird nodes below scale (density/mod.rs:399, :421, :540
// pass spaghetti_2d, spaghetti_3d_1/2 and pillar DoublePerlinNoiseParameters
// respectively) — distinct from the *_modulator keys, which only shape
// Weird's rarity lookup.
var caveRegistryKeys = []string{
	"spaghetti_roughness", "spaghetti_roughness_modulator",
	"spaghetti_2d_thickness", "spaghetti_2d_modulator", "spaghetti_2d",
	"entrance_modulator", "entrance_noise", "spaghetti_3d_1", "spaghetti_3d_2",
	"noodle_toggle", "noodle_thickness", "noodle_ridge_a", "noodle_ridge_b",
	"pillar_noise", "pillar_rareness", "pillar_thickness", "pillar",
}

// caveNoiseSet holds every sampler the cave recipes need, resolved once from
// the registry: nodes for keys read directly, refs for keys fed to Weird's
// noise field or to noiseInRange, which both need the raw noise.Sampler
// rather than a Node wrapping it.
type caveNoiseSet struct {
	nodes map[string]densityfn.Node
	refs  map[string]noise.Sampler
}

func buildCaveNoiseSet(reg NoiseRegistry, cfg *config) (caveNoiseSet, error) {
	set := caveNoiseSet{
		nodes: make(map[string]densityfn.Node, len(caveRegistryKeys)),
		refs:  make(map[string]noise.Sampler, len(caveRegistryKeys)),
	}
	for _, key := range caveRegistryKeys {
		ref, err := reg.lookup(key, cfg.seed)
		if err != nil {
			return caveNoiseSet{}, err
		}
		set.refs[key] = ref
		set.nodes[key] = densityfn.Noise(ref, 1, 1)
	}
	return set, nil
}

// pairedSampler averages two noise.Samplers into one, the shape a single
// Weird call needs when the source recipe scales by two correlated noise
// fields (spaghetti_3d_1 and spaghetti_3d_2) rather than one.
type pairedSampler struct {
	a, b noise.Sampler
}

func (p pairedSampler) Sample(x, y, z float64) float64 {
	return (p.a.Sample(x, y, z) + p.b.Sample(x, y, z)) / 2
}

func (p pairedSampler) MaxValue() float64 {
	return (p.a.MaxValue() + p.b.MaxValue()) / 2
}

// buildCaves assembles the six named cave-function roots.
func buildCaves(set caveNoiseSet, y densityfn.Node) (roughness, thicknessModular, spaghetti2D, entrances, noodle, pillars densityfn.Node) {
	roughness = set.nodes["spaghetti_roughness"]

	thicknessModular = noiseInRange(set.refs["spaghetti_2d_thickness"], 1, 1, -1.0, -0.4)

	spaghettiModulated := densityfn.Weird(set.nodes["spaghetti_2d_modulator"], set.refs["spaghetti_2d"], densityfn.CavesRarity, 1, 1)
	spaghetti2D = densityfn.Range(
		densityfn.Add(densityfn.Abs(roughness), thicknessModular),
		-1000, 0,
		densityfn.Add(spaghettiModulated, thicknessModular),
		densityfn.Constant(-1),
	)

	entranceField := pairedSampler{a: set.refs["spaghetti_3d_1"], b: set.refs["spaghetti_3d_2"]}
	entranceModulated := densityfn.Weird(set.nodes["entrance_modulator"], entranceField, densityfn.TunnelsRarity, 1, 1)
	entrances = densityfn.Max(
		densityfn.Min(set.nodes["entrance_noise"], entranceModulated),
		spaghetti2D,
	)

	noodleToggle := densityfn.Range(set.nodes["noodle_toggle"], -1000, 0, densityfn.Constant(-1), densityfn.Constant(1))
	ridgeDelta := densityfn.Add(set.nodes["noodle_ridge_a"], set.nodes["noodle_ridge_b"])
	thicknessRange := densityfn.Range(set.nodes["noodle_thickness"], -1000, 0, densityfn.Constant(-0.05), densityfn.Constant(0.05))
	noodleCore := densityfn.Add(densityfn.Abs(ridgeDelta), thicknessRange)
	noodle = verticalRangeChoice(y, densityfn.Max(noodleToggle, noodleCore), -60, 320, 1)

	pillars = densityfn.Weird(set.nodes["pillar_noise"], set.refs["pillar"], densityfn.CavesRarity, 1, 1)
	pillars = densityfn.Mul(pillars, densityfn.Add(set.nodes["pillar_rareness"], set.nodes["pillar_thickness"]))

	return
}
