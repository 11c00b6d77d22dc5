package densityfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/densityfn"
)

func TestEndIslandIsDeterministicAndBounded(t *testing.T) {
	n := densityfn.EndIsland(42)
	pos := densityfn.UnblendedPos{Px: 100, Py: 64, Pz: -200}

	a := n.Sample(pos)
	b := n.Sample(pos)
	require.Equal(t, a, b)
	require.GreaterOrEqual(t, a, n.Min())
	require.LessOrEqual(t, a, n.Max())
	require.Equal(t, -1.0, n.Min())
	require.Equal(t, 1.0, n.Max())
	require.Equal(t, "EndIsland", n.NodeKind())
}

func TestEndIslandDiffersAcrossSeeds(t *testing.T) {
	pos := densityfn.UnblendedPos{Px: 500, Py: 64, Pz: 500}
	a := densityfn.EndIsland(1).Sample(pos)
	b := densityfn.EndIsland(2).Sample(pos)
	require.NotEqual(t, a, b)
}
