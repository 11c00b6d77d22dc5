// Command densegraphdemo builds the built-in overworld density-function
// graph, binds it to a single chunk, and logs a sampled vertical column —
// exercising the noise, densityfn, chunkbind and builder packages end to
// end, the way lvlath's examples/ programs exercise that library from the
// outside.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/densegraph/builder"
	"github.com/katalvlaran/densegraph/chunkbind"
	"github.com/katalvlaran/densegraph/densityfn"
	"github.com/katalvlaran/densegraph/noise"
)

func main() {
	var (
		seed      = flag.Int64("seed", 0, "world seed")
		variant   = flag.String("variant", "overworld", "terrain variant: overworld, overworld_large_biome, overworld_amplified")
		columnX   = flag.Int64("x", 0, "block X coordinate of the sampled column")
		columnZ   = flag.Int64("z", 0, "block Z coordinate of the sampled column")
		amplified = flag.Bool("amplified", false, "pass builder.WithAmplified to Build (-variant picks the sampled bundle)")
	)
	flag.Parse()

	registry := demoRegistry()

	opts := []builder.Option{builder.WithSeed(*seed)}
	if *amplified {
		opts = append(opts, builder.WithAmplified())
	}

	built, err := builder.Build(registry, opts...)
	if err != nil {
		log.Fatalf("build graph: %v", err)
	}

	root, err := rootForVariant(built, *variant)
	if err != nil {
		log.Fatal(err)
	}

	sampler := chunkbind.NewSimpleChunkSampler(int32(*columnX), -64, int32(*columnZ), 16, 384, 4, 8)
	binding, err := chunkbind.NewBinding(sampler)
	if err != nil {
		log.Fatalf("bind chunk sampler: %v", err)
	}
	bound := binding.Bind(root)

	for y := int32(-64); y < 320; y += 16 {
		pos := chunkbind.BoundPos{Px: int32(*columnX), Py: y, Pz: int32(*columnZ), Bl: sampler.Blender()}
		log.Printf("column (%d, %d) y=%d density=%.4f", *columnX, *columnZ, y, bound.Sample(pos))
	}
}

func rootForVariant(built *builder.BuiltIn, variant string) (densityfn.Node, error) {
	switch variant {
	case "overworld":
		return built.Overworld.SlopedCheese, nil
	case "overworld_large_biome":
		return built.OverworldLargeBiome.SlopedCheese, nil
	case "overworld_amplified":
		return built.OverworldAmplified.SlopedCheese, nil
	default:
		return nil, fmt.Errorf("unknown terrain variant %q", variant)
	}
}

func demoRegistry() builder.NoiseRegistry {
	names := []string{
		"offset", "base_3d_overworld", "base_3d_nether", "base_3d_end",
		"continentalness", "erosion", "ridge", "jagged",
		"spaghetti_roughness", "spaghetti_roughness_modulator",
		"spaghetti_2d_thickness", "spaghetti_2d_modulator", "spaghetti_2d",
		"entrance_modulator", "entrance_noise", "spaghetti_3d_1", "spaghetti_3d_2",
		"noodle_toggle", "noodle_thickness", "noodle_ridge_a", "noodle_ridge_b",
		"pillar_noise", "pillar_rareness", "pillar_thickness", "pillar",
	}
	reg := make(builder.NoiseRegistry, len(names))
	for _, name := range names {
		reg[name] = noise.Params{FirstOctave: -4, Amplitudes: []float64{1, 1, 1}}
	}
	return reg
}
