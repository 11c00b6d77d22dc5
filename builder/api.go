package builder

import "github.com/katalvlaran/densegraph/densityfn"

// Build assembles the fixed library of named root nodes from registry,
// applying opts. Missing registry keys abort construction and return a
// wrapped ErrMissingNoiseParam; there is no runtime fallback.
func Build(registry NoiseRegistry, opts ...Option) (*BuiltIn, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	cfg := newConfig(opts...)

	out := &BuiltIn{
		Zero: densityfn.Constant(0),
		Ten:  densityfn.Constant(10),
		Y:    densityfn.ClampedY(minHeightTimes2, maxColumnHeightTimes2, minHeightTimes2, maxColumnHeightTimes2),
	}
	out.BlendAlpha = densityfn.BlendAlpha
	out.BlendOffset = densityfn.BlendOffset

	shiftX, shiftZ, err := buildShift(registry, cfg)
	if err != nil {
		return nil, err
	}
	out.ShiftX, out.ShiftZ = shiftX, shiftZ

	base3DOverworld, base3DNether, base3DEnd, err := buildBase3D(registry, cfg)
	if err != nil {
		return nil, err
	}
	out.Base3DNoiseOverworld, out.Base3DNoiseNether, out.Base3DNoiseEnd = base3DOverworld, base3DNether, base3DEnd

	continents, erosion, ridges, ridgesFolded, err := buildOverworldShape(registry, cfg, shiftX, shiftZ)
	if err != nil {
		return nil, err
	}
	out.ContinentsOverworld, out.ErosionOverworld = continents, erosion
	out.RidgesOverworld, out.RidgesFoldedOverworld = ridges, ridgesFolded

	jaggedRef, err := registry.lookup("jagged", cfg.seed)
	if err != nil {
		return nil, err
	}
	jaggedNoise := densityfn.WrapCacheFlat(densityfn.Noise(jaggedRef, 1500, 0))

	normalParams := buildTerrainParams(false)
	amplifiedParams := buildTerrainParams(true)

	out.Overworld = buildSlopedCheese(normalParams, continents, erosion, ridges, ridgesFolded, jaggedNoise,
		out.BlendOffset, out.Ten, out.Zero, out.Base3DNoiseOverworld)
	out.OverworldLargeBiome = buildSlopedCheese(normalParams, continents, erosion, ridges, ridgesFolded, jaggedNoise,
		out.BlendOffset, out.Ten, out.Zero, out.Base3DNoiseOverworld)
	out.OverworldAmplified = buildSlopedCheese(amplifiedParams, continents, erosion, ridges, ridgesFolded, jaggedNoise,
		out.BlendOffset, out.Ten, out.Zero, out.Base3DNoiseOverworld)

	out.SlopedCheeseEnd = buildEndShape(out.Base3DNoiseEnd)

	caveSet, err := buildCaveNoiseSet(registry, cfg)
	if err != nil {
		return nil, err
	}
	roughness, thicknessModular, spaghetti2D, entrances, noodle, pillars := buildCaves(caveSet, out.Y)
	out.CavesSpaghettiRoughnessFunctionOverworld = roughness
	out.CavesSpaghetti2DThicknessModularOverworld = thicknessModular
	out.CavesSpaghetti2DOverworld = spaghetti2D
	out.CavesEntrancesOverworld = entrances
	out.CavesNoodleOverworld = noodle
	out.CavesPillarsOverworld = pillars

	return out, nil
}

// Vertical column bounds: MIN_HEIGHT = -64, MAX_COLUMN_HEIGHT = 320, so
// Y's ClampedY spans their doubled range per spec.md's "y" root definition.
const (
	minHeightTimes2       = -64 * 2
	maxColumnHeightTimes2 = 320 * 2
)
