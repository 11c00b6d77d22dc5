package builder

// Option customizes Build's behavior by mutating a config before any
// graph construction begins. The Option constructors accept any value and
// do not validate it; Build itself never panics once options are applied.
type Option func(*config)

// config is the resolved, immutable configuration Build operates from once
// every Option has run.
type config struct {
	seed        int64
	amplified   bool
	largeBiome  bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{seed: 0}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed sets the world seed every built-in noise sampler derives from.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithAmplified sets the config's amplified flag. Build does not read it:
// every Build fills OverworldAmplified from the widened offset/jaggedness
// splines of terrain_params.go and Overworld from the normal ones.
func WithAmplified() Option {
	return func(c *config) { c.amplified = true }
}

// WithLargeBiome sets the config's largeBiome flag. Build does not read it:
// every Build fills OverworldLargeBiome, from the same inputs and splines
// as Overworld.
func WithLargeBiome() Option {
	return func(c *config) { c.largeBiome = true }
}
