package densityfn_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/densityfn"
)

// ExampleAdd builds a small density graph combining a constant offset with a
// clamped linear term and samples it at a single position.
func ExampleAdd() {
	slope := densityfn.MulConst(densityfn.Clamp(densityfn.Constant(5), -2, 2), 3)
	graph := densityfn.AddConst(slope, 1)

	fmt.Println(graph.Sample(densityfn.UnblendedPos{Px: 0, Py: 0, Pz: 0}))
	// Output: 7
}
