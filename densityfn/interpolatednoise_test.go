package densityfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/densityfn"
)

func TestInterpolatedNoiseAppliesSmearAndScale(t *testing.T) {
	var seen [3]float64
	ref := recordingSampler{recorded: &seen, value: 1, bound: 2}

	n := densityfn.InterpolatedNoise(ref, densityfn.InterpolatedParams{
		XZScale: 1, YScale: 1, XZFactor: 2, YFactor: 4, SmearScaleMultiplier: 10,
	})
	v := n.Sample(densityfn.UnblendedPos{Px: 8, Py: 8, Pz: 8})

	require.Equal(t, 10.0, v)
	require.Equal(t, [3]float64{4, 2, 4}, seen) // 8/2, 8/4, 8/2
	require.Equal(t, -20.0, n.Min())
	require.Equal(t, 20.0, n.Max())
}
