package noise

import "math"

// octave is a single-frequency 3D simplex/gradient noise lattice, ported
// from the seeded permutation-table approach in
// BarretoDiego-cubetopia-voxel-game's internal/core/noise/simplex.go and
// trimmed to the 3D case only, since every densityfn Noise-family node
// samples (x, y, z).
//
// sample3 returns values in approximately [-1, 1]; it is not a tight bound,
// which is why DoublePerlin treats 1.05 as the conservative per-octave bound
// rather than measuring the true supremum.
type octave struct {
	perm      [512]uint8
	permMod12 [512]uint8

	f3, g3 float64
}

// grad3 lists the twelve unit-ish gradient directions used by the 3D
// simplex contribution, unchanged from the teacher source.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// newOctave builds a seeded lattice. Equal seeds produce equal lattices.
func newOctave(seed int64) *octave {
	o := &octave{
		f3: 1.0 / 3.0,
		g3: 1.0 / 6.0,
	}
	o.initPermutation(seed)
	return o
}

func (o *octave) initPermutation(seed int64) {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	// Fisher-Yates shuffle driven by a Lehmer LCG seeded from seed, matching
	// the teacher's deterministic-shuffle approach.
	s := seed
	for i := 255; i > 0; i-- {
		s = (s * 16807) % 2147483647
		j := int(s) % (i + 1)
		if j < 0 {
			j += i + 1
		}
		p[i], p[j] = p[j], p[i]
	}

	for i := 0; i < 512; i++ {
		o.perm[i] = p[i&255]
		o.permMod12[i] = o.perm[i] % 12
	}
}

// sample3 evaluates the lattice at (x, y, z).
func (o *octave) sample3(xin, yin, zin float64) float64 {
	var n0, n1, n2, n3 float64

	t := (xin + yin + zin) * o.f3
	i := int(math.Floor(xin + t))
	j := int(math.Floor(yin + t))
	k := int(math.Floor(zin + t))

	t2 := float64(i+j+k) * o.g3
	x0 := xin - (float64(i) - t2)
	y0 := yin - (float64(j) - t2)
	z0 := zin - (float64(k) - t2)

	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 1, 0
		case x0 >= z0:
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 0, 1
		default:
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 0, 1, 1
		case x0 < z0:
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 0, 1, 1
		default:
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + o.g3
	y1 := y0 - float64(j1) + o.g3
	z1 := z0 - float64(k1) + o.g3
	x2 := x0 - float64(i2) + 2.0*o.g3
	y2 := y0 - float64(j2) + 2.0*o.g3
	z2 := z0 - float64(k2) + 2.0*o.g3
	x3 := x0 - 1.0 + 3.0*o.g3
	y3 := y0 - 1.0 + 3.0*o.g3
	z3 := z0 - 1.0 + 3.0*o.g3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := int(o.permMod12[ii+int(o.perm[jj+int(o.perm[kk])])])
	gi1 := int(o.permMod12[ii+i1+int(o.perm[jj+j1+int(o.perm[kk+k1])])])
	gi2 := int(o.permMod12[ii+i2+int(o.perm[jj+j2+int(o.perm[kk+k2])])])
	gi3 := int(o.permMod12[ii+1+int(o.perm[jj+1+int(o.perm[kk+1])])])

	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * (grad3[gi0][0]*x0 + grad3[gi0][1]*y0 + grad3[gi0][2]*z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * (grad3[gi1][0]*x1 + grad3[gi1][1]*y1 + grad3[gi1][2]*z1)
	}
	if t2v := 0.6 - x2*x2 - y2*y2 - z2*z2; t2v > 0 {
		t2v *= t2v
		n2 = t2v * t2v * (grad3[gi2][0]*x2 + grad3[gi2][1]*y2 + grad3[gi2][2]*z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * (grad3[gi3][0]*x3 + grad3[gi3][1]*y3 + grad3[gi3][2]*z3)
	}

	return 32.0 * (n0 + n1 + n2 + n3)
}
