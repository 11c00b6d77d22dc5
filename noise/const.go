package noise

// Const is a fixed-value Sampler, useful for pinning densityfn bounds
// properties in tests without depending on DoublePerlin's exact output.
type Const struct {
	Value, Bound float64
}

// Sample implements Sampler.
func (c Const) Sample(_, _, _ float64) float64 { return c.Value }

// MaxValue implements Sampler.
func (c Const) MaxValue() float64 { return c.Bound }
