package densityfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/densityfn"
)

func TestClampedYScenario(t *testing.T) {
	y := densityfn.ClampedY(-64, 320, 1.564, -1.5)

	require.InDelta(t, 1.564, y.Sample(densityfn.UnblendedPos{Py: -64}), 1e-9)
	require.InDelta(t, -1.5, y.Sample(densityfn.UnblendedPos{Py: 320}), 1e-9)
	require.InDelta(t, 0.032, y.Sample(densityfn.UnblendedPos{Py: 128}), 1e-9)
}

func TestRangeSelector(t *testing.T) {
	r := densityfn.Range(densityfn.Constant(0.5), 0, 1, densityfn.Constant(7), densityfn.Constant(9))
	require.Equal(t, 7.0, r.Sample(densityfn.UnblendedPos{}))

	r = densityfn.Range(densityfn.Constant(-0.1), 0, 1, densityfn.Constant(7), densityfn.Constant(9))
	require.Equal(t, 9.0, r.Sample(densityfn.UnblendedPos{}))
}

func TestNoiseInRangeBounds(t *testing.T) {
	ref := constSampler{value: 0.3, bound: 1}
	n := densityfn.MapRange(densityfn.Noise(ref, 1, 1), -0.1, 0.1)
	require.InDelta(t, -0.1, n.Min(), 1e-9)
	require.InDelta(t, 0.1, n.Max(), 1e-9)
}

type constSampler struct {
	value, bound float64
}

func (c constSampler) Sample(_, _, _ float64) float64 { return c.value }
func (c constSampler) MaxValue() float64              { return c.bound }
