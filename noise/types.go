package noise

// Sampler is the external collaborator every densityfn Noise-family node
// depends on: a pure, seeded, deterministic 3D scalar field with a stated
// output bound.
//
// Implementations MUST be safe for concurrent, read-only use from many
// goroutines (spec.md §5: "noise primitives are pure given a seed; they
// hold no mutable state and are safe to call concurrently").
type Sampler interface {
	// Sample returns the field's value at (x, y, z). Deterministic for a
	// fixed seed and input; never errors, never panics on finite input.
	Sample(x, y, z float64) float64

	// MaxValue returns a conservative upper bound on |Sample(...)| over all
	// finite inputs. Used by densityfn nodes to report static bounds.
	MaxValue() float64
}

// Params configures a DoublePerlin sampler: the octave range and the
// per-octave amplitude weights, mirroring the shape of Minecraft's
// DoublePerlinNoiseParameters record (first octave index + amplitude list)
// without claiming to reproduce its tuned tables (spec.md §1 puts the noise
// parameter tables out of scope; callers supply their own via a registry,
// see builder.NoiseRegistry).
type Params struct {
	// FirstOctave is the coarsest octave's exponent (frequency = 2^FirstOctave).
	FirstOctave int
	// Amplitudes weights each successive octave starting at FirstOctave.
	Amplitudes []float64
}
