package builder

import "github.com/katalvlaran/densegraph/spline"

// Exact Minecraft terrain-shape control points are out of scope; the
// splines built here are representative nested "spline of splines" curves
// over (continentalness, erosion, ridges) wide enough to exercise the
// sloped-cheese composition in impl_overworld.go, not a reproduction of any
// tuned dataset.

// terrainParams bundles the three splines the sloped-cheese composition
// consumes, plus the output bounds Build reports on each resulting
// densityfn.Spline node.
type terrainParams struct {
	offset, factor, jaggedness spline.Spline
	offsetLo, offsetHi         float64
	factorLo, factorHi         float64
	jaggedLo, jaggedHi         float64
}

// buildTerrainParams assembles representative offset/factor/jaggedness
// splines. The amplified flag widens the offset/jaggedness ranges, mirroring
// the wilder terrain the amplified world type produces. There is no
// large-biome variant of these splines: Build makes OverworldLargeBiome
// from the normal params and the same inputs as Overworld.
func buildTerrainParams(amplified bool) terrainParams {
	offsetSpread := 1.0
	jaggedSpread := 1.0
	if amplified {
		offsetSpread = 2.0
		jaggedSpread = 1.5
	}

	offset := nestedSpline2(
		[]float64{-1.05, -0.455, 0, 0.4, 1.0},
		[]float64{-0.1 * offsetSpread, -0.02 * offsetSpread, 0.1 * offsetSpread, 0.3 * offsetSpread, 1.0 * offsetSpread},
	)
	factor := nestedSpline2(
		[]float64{-1.05, -0.4, 0, 0.4, 1.0},
		[]float64{4.0, 5.0, 6.0, 4.5, 3.5},
	)
	jaggedness := nestedSpline1(
		[]float64{-1.0, -0.3, 0.3, 1.0},
		[]float64{0, 0.2 * jaggedSpread, 0.5 * jaggedSpread, 1.0 * jaggedSpread},
	)

	return terrainParams{
		offset: offset, factor: factor, jaggedness: jaggedness,
		offsetLo: -2 * offsetSpread, offsetHi: 2 * offsetSpread,
		factorLo: 2, factorHi: 8,
		jaggedLo: -jaggedSpread, jaggedHi: jaggedSpread,
	}
}

// nestedSpline2 builds a two-axis spline: axis 0 (continentalness) control
// points each hold the same axis-1 (erosion) curve, scaled by the
// continentalness control value — a simple but genuine two-axis "spline of
// splines" shape.
func nestedSpline2(continentX, erosionScale []float64) spline.Spline {
	points := make([]spline.Point, len(continentX))
	for i, cx := range continentX {
		scale := erosionScale[i%len(erosionScale)]
		inner, _ := spline.NewMulti(1, []spline.Point{
			{Location: -1, Value: spline.Constant(scale * 1.2)},
			{Location: 0, Value: spline.Constant(scale)},
			{Location: 1, Value: spline.Constant(scale * 0.8)},
		})
		points[i] = spline.Point{Location: cx, Value: inner}
	}
	m, _ := spline.NewMulti(0, points)
	return m
}

// nestedSpline1 builds a single-axis (ridges) spline for jaggedness.
func nestedSpline1(x, y []float64) spline.Spline {
	points := make([]spline.Point, len(x))
	for i := range x {
		points[i] = spline.Point{Location: x[i], Value: spline.Constant(y[i])}
	}
	m, _ := spline.NewMulti(2, points)
	return m
}
