package densityfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/densityfn"
)

func TestShiftedNoiseOffsetsByShiftNodes(t *testing.T) {
	var seen [3]float64
	ref := recordingSampler{recorded: &seen, value: 1, bound: 1}

	n := densityfn.ShiftedNoise(
		densityfn.Constant(1), densityfn.Constant(2), densityfn.Constant(3),
		0.5, 0.5, ref,
	)
	v := n.Sample(densityfn.UnblendedPos{Px: 4, Py: 4, Pz: 4})

	require.Equal(t, 1.0, v)
	require.Equal(t, [3]float64{3, 4, 5}, seen) // 4*0.5+1, 4*0.5+2, 4*0.5+3
	require.Equal(t, "ShiftedNoise", n.NodeKind())
}
