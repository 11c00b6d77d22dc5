package densityfn

// Node is the uniform interface every density-function variant implements.
// A Node is immutable: Apply never mutates the receiver, it returns a
// (possibly new) Node with rewritten children.
type Node interface {
	// Sample computes the density at a single position. Deterministic
	// given the same position and the same underlying noise seeds.
	Sample(pos Pos) float64

	// Fill writes one density per applier slot into dest. The zero-value
	// behavior — sample applier.At(i) for every i — lives in fillBySample;
	// concrete nodes that can do better (chunk-bound caches) override it.
	Fill(dest []float64, applier Applier)

	// Apply runs a structural rewrite: children are rewritten first, then
	// the (possibly cloned) node is handed to visitor.Apply. Implementations
	// must preserve this post-order so a Visitor sees already-rewritten
	// children. Implementations must route the whole rewrite (descent and
	// all) through visitor.Memoize(self, ...) so a receiver reachable from
	// multiple parents is rewritten exactly once — see Visitor.Memoize.
	Apply(visitor Visitor) Node

	// Min and Max are conservative static bounds: every value Sample can
	// return lies within [Min(), Max()].
	Min() float64
	Max() float64

	// NodeKind reports this node's tag, for debug printing and table-driven
	// tests that want to assert on node shape without a type switch.
	NodeKind() string
}

// Pos is a single 3D integer evaluation position. Blender returns the
// blending facility consulted by unbound BlendAlpha/BlendOffset/BlendDensity
// proxies; under NoBlend they behave as fixed constants.
type Pos interface {
	X() int32
	Y() int32
	Z() int32
	Blender() Blender
}

// Applier is an indexed source of positions feeding Fill — typically a
// chunk sampler's column, slab, or cell-grid iterator.
type Applier interface {
	// At returns the i-th position this applier iterates.
	At(i int) Pos

	// Fill is a callback hook letting a Node ask the applier to fill dest
	// with n's samples; chunk-bound appliers use this to drive their own
	// cache-aware iteration order instead of a plain index loop.
	Fill(dest []float64, n Node)
}

// Blender is the neighbor-chunk mixing facility consulted by BlendAlpha,
// BlendOffset and BlendDensity. NoBlend is the identity blender: no
// neighbor-chunk data exists, so these proxies behave as fixed constants.
type Blender interface {
	ApplyBlendAlpha(pos Pos) float64
	ApplyBlendOffset(pos Pos) float64
	ApplyBlendDensity(pos Pos, sampled float64) float64
}

// noBlend is the zero-value Blender: no active neighbor-chunk blending.
type noBlend struct{}

// NoBlend is the identity Blender — BlendAlpha reads 1, BlendOffset reads 0,
// BlendDensity passes its input through unchanged.
var NoBlend Blender = noBlend{}

func (noBlend) ApplyBlendAlpha(Pos) float64                { return 1.0 }
func (noBlend) ApplyBlendOffset(Pos) float64                { return 0.0 }
func (noBlend) ApplyBlendDensity(_ Pos, sampled float64) float64 { return sampled }

// UnblendedPos is a plain Pos backed by three coordinates and NoBlend —
// the "NoisePos" of a graph that has not been bound to any chunk.
type UnblendedPos struct {
	Px, Py, Pz int32
}

func (p UnblendedPos) X() int32       { return p.Px }
func (p UnblendedPos) Y() int32       { return p.Py }
func (p UnblendedPos) Z() int32       { return p.Pz }
func (p UnblendedPos) Blender() Blender { return NoBlend }
