package noise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/noise"
)

func TestDoublePerlinDeterministic(t *testing.T) {
	params := noise.Params{FirstOctave: -3, Amplitudes: []float64{1, 1, 1}}
	a := noise.NewDoublePerlin(42, params)
	b := noise.NewDoublePerlin(42, params)

	for _, p := range [][3]float64{{0, 0, 0}, {1.5, -2.25, 100}, {-7, 3, 0.1}} {
		require.Equal(t, a.Sample(p[0], p[1], p[2]), b.Sample(p[0], p[1], p[2]))
	}
}

func TestDoublePerlinDifferentSeedsDiffer(t *testing.T) {
	params := noise.Params{FirstOctave: 0, Amplitudes: []float64{1}}
	a := noise.NewDoublePerlin(1, params)
	b := noise.NewDoublePerlin(2, params)

	require.NotEqual(t, a.Sample(1.25, 2.5, 3.75), b.Sample(1.25, 2.5, 3.75))
}

func TestDoublePerlinBound(t *testing.T) {
	params := noise.Params{FirstOctave: -2, Amplitudes: []float64{1, 0.5, 0.25}}
	s := noise.NewDoublePerlin(7, params)
	bound := s.MaxValue()

	for x := -5.0; x <= 5.0; x += 0.7 {
		for z := -5.0; z <= 5.0; z += 0.7 {
			v := s.Sample(x, 0, z)
			require.GreaterOrEqual(t, v, -bound)
			require.LessOrEqual(t, v, bound)
		}
	}
}

func TestConstSampler(t *testing.T) {
	c := noise.Const{Value: 0.25, Bound: 1}
	require.Equal(t, 0.25, c.Sample(1, 2, 3))
	require.Equal(t, 1.0, c.MaxValue())
}
