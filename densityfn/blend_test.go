package densityfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/densityfn"
)

func TestBlendProxiesUnderNoBlend(t *testing.T) {
	pos := densityfn.UnblendedPos{}

	require.Equal(t, 1.0, densityfn.BlendAlpha.Sample(pos))
	require.Equal(t, 0.0, densityfn.BlendOffset.Sample(pos))

	inner := densityfn.Constant(7)
	require.Equal(t, 7.0, densityfn.BlendDensity(inner).Sample(pos))
}

func TestIsBlendAlphaAndIsBlendOffset(t *testing.T) {
	require.True(t, densityfn.IsBlendAlpha(densityfn.BlendAlpha))
	require.False(t, densityfn.IsBlendAlpha(densityfn.BlendOffset))

	require.True(t, densityfn.IsBlendOffset(densityfn.BlendOffset))
	require.False(t, densityfn.IsBlendOffset(densityfn.BlendAlpha))

	require.False(t, densityfn.IsBlendAlpha(densityfn.Constant(1)))
}
