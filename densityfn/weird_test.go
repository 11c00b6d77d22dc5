package densityfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/densityfn"
)

func TestCavesRarityTable(t *testing.T) {
	require.Equal(t, 0.75, densityfn.CavesRarity(-0.9))
	require.Equal(t, 1.0, densityfn.CavesRarity(-0.1))
	require.Equal(t, 1.5, densityfn.CavesRarity(0.2))
	require.Equal(t, 2.0, densityfn.CavesRarity(0.9))
}

func TestTunnelsRarityTable(t *testing.T) {
	require.Equal(t, 0.5, densityfn.TunnelsRarity(-1))
	require.Equal(t, 0.75, densityfn.TunnelsRarity(-0.5))
	require.Equal(t, 1.0, densityfn.TunnelsRarity(0))
	require.Equal(t, 1.5, densityfn.TunnelsRarity(0.5))
	require.Equal(t, 3.0, densityfn.TunnelsRarity(0.9))
}

func TestWeirdScalesNoiseByRarityMappedModulator(t *testing.T) {
	ref := recordingSampler{recorded: &[3]float64{}, value: 2, bound: 1}
	modulator := densityfn.Constant(0.2)

	n := densityfn.Weird(modulator, ref, densityfn.CavesRarity, 1, 1)
	v := n.Sample(densityfn.UnblendedPos{Px: 1, Py: 1, Pz: 1})

	require.Equal(t, 3.0, v) // CavesRarity(0.2) == 1.5, times ref value 2
	require.Equal(t, -3.0, n.Min())
	require.Equal(t, 3.0, n.Max())
}
