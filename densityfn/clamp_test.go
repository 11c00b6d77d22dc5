package densityfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/densityfn"
)

func TestClampSample(t *testing.T) {
	c := densityfn.Clamp(densityfn.Constant(5), -1, 1)
	require.Equal(t, 1.0, c.Sample(densityfn.UnblendedPos{}))

	c = densityfn.Clamp(densityfn.Constant(-5), -1, 1)
	require.Equal(t, -1.0, c.Sample(densityfn.UnblendedPos{}))
}

func TestClampBoundsIsInputIntersection(t *testing.T) {
	// Input is Constant(0.25) clamped to [0, 0.5], so its own bounds are
	// [0.25, 0.25]; the outer clamp range [-1, 1] never binds, so the
	// reported bounds should stay the tighter input-derived [0.25, 0.25],
	// not widen to [-1, 1].
	input := densityfn.Clamp(densityfn.Constant(0.25), 0, 0.5)
	c := densityfn.Clamp(input, -1, 1)
	require.Equal(t, 0.25, c.Min())
	require.Equal(t, 0.25, c.Max())
}
