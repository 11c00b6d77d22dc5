package builder

import "github.com/katalvlaran/densegraph/densityfn"

// buildOverworldShape assembles continents_overworld, erosion_overworld,
// ridges_overworld and ridges_folded_overworld: each (except the folded
// ridges) is CacheFlat(ShiftedNoise(shiftX, 0, shiftZ, 0.25, 0, param)).
func buildOverworldShape(reg NoiseRegistry, cfg *config, shiftX, shiftZ densityfn.Node) (continents, erosion, ridges, ridgesFolded densityfn.Node, err error) {
	shapeRoot := func(key string) (densityfn.Node, error) {
		ref, e := reg.lookup(key, cfg.seed)
		if e != nil {
			return nil, e
		}
		shifted := densityfn.ShiftedNoise(shiftX, densityfn.Constant(0), shiftZ, 0.25, 0, ref)
		return densityfn.WrapCacheFlat(shifted), nil
	}

	continents, err = shapeRoot("continentalness")
	if err != nil {
		return
	}
	erosion, err = shapeRoot("erosion")
	if err != nil {
		return
	}
	ridges, err = shapeRoot("ridge")
	if err != nil {
		return
	}

	// ridges_folded_overworld = (|ridges| - 2/3).abs() - 1/3) * -3, the
	// "peaks and valleys" fold: scenario 4 in the testable-properties list.
	ridgesFolded = densityfn.MulConst(
		densityfn.AddConst(
			densityfn.Abs(densityfn.AddConst(densityfn.Abs(ridges), -2.0/3.0)),
			-1.0/3.0,
		),
		-3.0,
	)
	return
}

// buildSlopedCheese implements §4.3's composition for one terrain variant.
// jaggedNoise is the jagged_noise input §4.3 names directly (built by the
// caller from the registry's "jagged" parameter), independent of ridges.
func buildSlopedCheese(params terrainParams, continents, erosion, ridges, ridgesFolded, jaggedNoise densityfn.Node, blendOffset, ten, zero, base3D densityfn.Node) SlopedCheeseBundle {
	offsetSpline := densityfn.Spline(params.offset, params.offsetLo, params.offsetHi, continents, erosion, ridges, ridgesFolded)
	factorSpline := densityfn.Spline(params.factor, params.factorLo, params.factorHi, continents, erosion, ridges, ridgesFolded)
	jaggedSpline := densityfn.Spline(params.jaggedness, params.jaggedLo, params.jaggedHi, continents, erosion, ridges, ridgesFolded)

	// -0.50375f32 as f64: the single-precision constant must keep its
	// 32-bit rounding before widening, to match the reference offset.
	negOffset := float64(float32(-0.50375))

	offset := applyBlending(densityfn.AddConst(offsetSpline, negOffset), blendOffset)
	factor := applyBlending(factorSpline, ten)
	depth := densityfn.Add(densityfn.ClampedY(-64, 320, 1.564, -1.5), offset)
	jaggedness := applyBlending(jaggedSpline, zero)

	density1 := densityfn.Mul(jaggedness, densityfn.HalfNeg(jaggedNoise))
	density2 := densityfn.MulConst(densityfn.QuartNeg(densityfn.Mul(densityfn.Add(depth, density1), factor)), 4)
	slopedCheese := densityfn.Add(density2, base3D)

	return SlopedCheeseBundle{
		Offset: offset, Factor: factor, Depth: depth, Jaggedness: jaggedness, SlopedCheese: slopedCheese,
	}
}
