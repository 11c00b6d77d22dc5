package densityfn_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/densityfn"
)

// BenchmarkFillVsRepeatedSample compares bulk Fill against an equivalent
// loop of individual Sample calls over the same graph and position batch,
// the shape every chunk-bound cache ultimately drives.
func BenchmarkFillVsRepeatedSample(b *testing.B) {
	graph := densityfn.AddConst(densityfn.MulConst(densityfn.Clamp(identityNode{}, -10, 10), 2), 1)

	positions := make([]densityfn.Pos, 256)
	for i := range positions {
		positions[i] = densityfn.UnblendedPos{Px: int32(i), Py: 64, Pz: int32(i % 16)}
	}
	applier := fixedApplier{positions: positions}
	dest := make([]float64, len(positions))

	b.Run("Fill", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			graph.Fill(dest, applier)
		}
	})

	b.Run("RepeatedSample", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for j, pos := range positions {
				dest[j] = graph.Sample(pos)
			}
		}
	})
}
