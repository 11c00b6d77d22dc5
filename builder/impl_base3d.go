package builder

import "github.com/katalvlaran/densegraph/densityfn"

// buildBase3D assembles the three base_3d_noise_* roots, each an
// InterpolatedNoise over its own registry-backed sampler with the named
// scale constants (xzScale, yScale, xzFactor, yFactor, smearScaleMultiplier).
func buildBase3D(reg NoiseRegistry, cfg *config) (overworld, nether, end densityfn.Node, err error) {
	overworldNoise, err := reg.lookup("base_3d_overworld", cfg.seed)
	if err != nil {
		return nil, nil, nil, err
	}
	netherNoise, err := reg.lookup("base_3d_nether", cfg.seed)
	if err != nil {
		return nil, nil, nil, err
	}
	endNoise, err := reg.lookup("base_3d_end", cfg.seed)
	if err != nil {
		return nil, nil, nil, err
	}

	overworld = densityfn.InterpolatedNoise(overworldNoise, densityfn.InterpolatedParams{
		XZScale: 0.25, YScale: 0.125, XZFactor: 80, YFactor: 160, SmearScaleMultiplier: 8,
	})
	nether = densityfn.InterpolatedNoise(netherNoise, densityfn.InterpolatedParams{
		XZScale: 0.25, YScale: 0.375, XZFactor: 80, YFactor: 60, SmearScaleMultiplier: 8,
	})
	end = densityfn.InterpolatedNoise(endNoise, densityfn.InterpolatedParams{
		XZScale: 0.25, YScale: 0.25, XZFactor: 80, YFactor: 160, SmearScaleMultiplier: 4,
	})
	return overworld, nether, end, nil
}
