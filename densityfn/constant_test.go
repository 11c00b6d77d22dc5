package densityfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/densityfn"
)

func TestConstantSampleAndBounds(t *testing.T) {
	c := densityfn.Constant(3)
	require.Equal(t, 3.0, c.Sample(densityfn.UnblendedPos{}))
	require.Equal(t, 3.0, c.Min())
	require.Equal(t, 3.0, c.Max())
}

func TestConstantFill(t *testing.T) {
	c := densityfn.Constant(5)
	applier := fixedApplier{positions: []densityfn.Pos{
		densityfn.UnblendedPos{Px: 0}, densityfn.UnblendedPos{Px: 1}, densityfn.UnblendedPos{Px: 2},
	}}
	dest := make([]float64, 3)
	c.Fill(dest, applier)
	require.Equal(t, []float64{5, 5, 5}, dest)
}

// fixedApplier is a minimal densityfn.Applier over a fixed position slice,
// shared by every test file in this package.
type fixedApplier struct {
	positions []densityfn.Pos
}

func (a fixedApplier) At(i int) densityfn.Pos { return a.positions[i] }
func (a fixedApplier) Fill(dest []float64, n densityfn.Node) {
	for i := range dest {
		dest[i] = n.Sample(a.At(i))
	}
}
