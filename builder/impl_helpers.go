package builder

import (
	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

// noiseInRange squeezes noise ref's raw output into [min, max] via
// MapRange; the spaghetti-2D cave thickness modulator reads its noise
// through it.
func noiseInRange(ref noise.Sampler, xzScale, yScale, min, max float64) densityfn.Node {
	return densityfn.MapRange(densityfn.Noise(ref, xzScale, yScale), min, max)
}

// applyBlending wraps f so its sampled value blends toward blend under an
// active chunk Blender, cached per chunk column: CacheFlat(Cache2D(
// lerp_density(BlendAlpha, blend, f))).
func applyBlending(f, blend densityfn.Node) densityfn.Node {
	return densityfn.WrapCacheFlat(densityfn.WrapCache2D(densityfn.LerpDensity(densityfn.BlendAlpha, blend, f)))
}

// verticalRangeChoice selects inRange when input's sample falls in
// [minY, maxY], else the constant out, wrapped for per-cell interpolation:
// Wrapper(Range(input, minY, maxY+1, inRange, Constant(out)), Interpolated).
func verticalRangeChoice(input densityfn.Node, inRange densityfn.Node, minY, maxY int32, out float64) densityfn.Node {
	ranged := densityfn.Range(input, float64(minY), float64(maxY)+1, inRange, densityfn.Constant(out))
	return densityfn.WrapInterpolated(ranged)
}
