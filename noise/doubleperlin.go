package noise

// DoublePerlin is the reference Sampler: two independently seeded
// fractal-octave noise sums evaluated at a relative offset and averaged,
// the same shape as Minecraft's double-Perlin sampler (two correlated
// octave stacks rather than one), without claiming to reproduce its tuned
// lattice tables (spec.md marks the actual noise primitive implementation
// out of scope; this is the stand-in that makes densityfn testable).
//
// Octave layout is grounded on BarretoDiego-cubetopia-voxel-game's
// internal/core/noise/fbm.go fractal-sum loop: each octave's frequency
// doubles and its amplitude is taken from Params.Amplitudes, starting at
// 2^Params.FirstOctave.
type DoublePerlin struct {
	lower, upper []*octave
	amplitudes   []float64
	firstOctave  int
	maxValue     float64
}

// NewDoublePerlin builds a DoublePerlin sampler from a seed and Params.
// Two independent lattice stacks ("lower", "upper", seeded seed and
// seed^0x5DEECE66D respectively) are summed per octave and averaged by
// 2/3, the conventional double-Perlin normalization constant.
func NewDoublePerlin(seed int64, params Params) *DoublePerlin {
	amplitudes := append([]float64(nil), params.Amplitudes...)
	if len(amplitudes) == 0 {
		amplitudes = []float64{1.0}
	}

	lower := make([]*octave, len(amplitudes))
	upper := make([]*octave, len(amplitudes))
	var sumAbs float64
	for i, a := range amplitudes {
		lower[i] = newOctave(seed + int64(i)*2)
		upper[i] = newOctave((seed ^ 0x5DEECE66D) + int64(i)*2 + 1)
		if a < 0 {
			a = -a
		}
		sumAbs += a
	}

	return &DoublePerlin{
		lower:       lower,
		upper:       upper,
		amplitudes:  amplitudes,
		firstOctave: params.FirstOctave,
		// Each octave lattice is conservatively bounded by ~1.05 (simplex
		// noise's theoretical supremum is close to but not exactly 1.0);
		// two stacks summed and scaled by 2/3 gives a conservative overall
		// bound.
		maxValue: 2.0 * (2.0 / 3.0) * 1.05 * sumAbs,
	}
}

// Sample implements Sampler.
func (d *DoublePerlin) Sample(x, y, z float64) float64 {
	var lo, hi float64
	freq := pow2(d.firstOctave)
	for i, a := range d.amplitudes {
		lo += a * d.lower[i].sample3(x*freq, y*freq, z*freq)
		hi += a * d.upper[i].sample3(x*freq+337.0, y*freq, z*freq+337.0)
		freq *= 2
	}
	return (lo + hi) * (2.0 / 3.0)
}

// MaxValue implements Sampler.
func (d *DoublePerlin) MaxValue() float64 {
	return d.maxValue
}

func pow2(n int) float64 {
	if n >= 0 {
		v := 1.0
		for i := 0; i < n; i++ {
			v *= 2
		}
		return v
	}
	v := 1.0
	for i := 0; i < -n; i++ {
		v /= 2
	}
	return v
}
