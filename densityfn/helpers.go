package densityfn

// LerpDensity builds s*(1-δ) + e*δ, with δ wrapped in CacheOnce so repeated
// evaluation across many sample calls at the same applier reuses one
// computed delta. When s is already a Constant, the cheaper specialization
// δ*(e-s) + s is used instead (one multiply-add rather than two).
func LerpDensity(delta, s, e Node) Node {
	delta = WrapCacheOnce(delta)
	if _, ok := constVal(s); ok {
		return Add(s, Mul(delta, Add(e, Mul(s, Constant(-1)))))
	}
	oneMinusDelta := Add(Constant(1), Mul(delta, Constant(-1)))
	return Add(Mul(s, oneMinusDelta), Mul(e, delta))
}

// MapRange builds Constant((min+max)/2) + Constant((max-min)/2)*f, the
// affine remap used by noise_in_range to squeeze a noise sampler's
// [-1,1]-ish output into an arbitrary [min, max] band.
func MapRange(f Node, min, max float64) Node {
	mid := (min + max) / 2
	half := (max - min) / 2
	return Add(Constant(mid), Mul(Constant(half), f))
}
