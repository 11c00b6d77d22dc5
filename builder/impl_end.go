package builder

import "github.com/katalvlaran/densegraph/densityfn"

// buildEndShape assembles sloped_cheese_end = EndIsland(0) + base_3d_noise_end.
func buildEndShape(base3DEnd densityfn.Node) densityfn.Node {
	return densityfn.Add(densityfn.EndIsland(0), base3DEnd)
}
