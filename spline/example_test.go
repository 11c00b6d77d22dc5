package spline_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/spline"
)

// ExampleMulti shows a two-point spline blending between two constant
// values across a single axis.
func ExampleMulti() {
	m, _ := spline.NewMulti(0, []spline.Point{
		{Location: 0, Value: spline.Constant(-1)},
		{Location: 1, Value: spline.Constant(1)},
	})
	fmt.Println(m.Eval([]float64{0.5}))
	// Output: 0
}
