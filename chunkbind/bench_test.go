package chunkbind_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/chunkbind"
	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

// BenchmarkFlatCacheBoundFill measures bulk Fill throughput for a
// CacheFlat-wrapped noise node bound to a 16x384x16 chunk, the hot path a
// column-by-column terrain pass drives repeatedly.
func BenchmarkFlatCacheBoundFill(b *testing.B) {
	ref := noise.NewDoublePerlin(7, noise.Params{FirstOctave: -4, Amplitudes: []float64{1, 1, 1}})
	sampler := chunkbind.NewSimpleChunkSampler(0, -64, 0, 16, 384, 4, 8)
	flat := chunkbind.NewFlatCacheBound(densityfn.Noise(ref, 0.25, 0.125), sampler)

	applier := chunkbind.ColumnApplier{Sampler: sampler, Y: 64}
	dest := make([]float64, sampler.NumColumns())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flat.Fill(dest, applier)
	}
}
