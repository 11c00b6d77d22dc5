package spline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/spline"
)

func TestMultiEndpointValues(t *testing.T) {
	m, err := spline.NewMulti(0, []spline.Point{
		{Location: 0, Value: spline.Constant(1), Derivative: 0},
		{Location: 1, Value: spline.Constant(5), Derivative: 0},
	})
	require.NoError(t, err)

	require.InDelta(t, 1.0, m.Eval([]float64{0}), 1e-9)
	require.InDelta(t, 5.0, m.Eval([]float64{1}), 1e-9)
}

func TestMultiExtrapolatesLinearly(t *testing.T) {
	m, err := spline.NewMulti(0, []spline.Point{
		{Location: 0, Value: spline.Constant(0), Derivative: 2},
		{Location: 1, Value: spline.Constant(2), Derivative: 2},
	})
	require.NoError(t, err)

	require.InDelta(t, -2.0, m.Eval([]float64{-1}), 1e-9)
	require.InDelta(t, 4.0, m.Eval([]float64{2}), 1e-9)
}

func TestMultiNestedAxis(t *testing.T) {
	inner, err := spline.NewMulti(1, []spline.Point{
		{Location: -1, Value: spline.Constant(-10)},
		{Location: 1, Value: spline.Constant(10)},
	})
	require.NoError(t, err)

	outer, err := spline.NewMulti(0, []spline.Point{
		{Location: 0, Value: spline.Constant(0)},
		{Location: 1, Value: inner},
	})
	require.NoError(t, err)

	require.InDelta(t, 0.0, outer.Eval([]float64{0, 0.5}), 1e-9)
	require.InDelta(t, 10.0, outer.Eval([]float64{1, 1}), 1e-9)
}

func TestNewMultiEmptyPoints(t *testing.T) {
	_, err := spline.NewMulti(0, nil)
	require.ErrorIs(t, err, spline.ErrEmptyPoints)
}
