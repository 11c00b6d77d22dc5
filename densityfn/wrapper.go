package densityfn

// WrapperKind tags which caching/interpolation annotation a Wrapper node
// carries. These are transparent at Sample time; the chunkbind package's
// Converter replaces each kind with its chunk-bound counterpart during
// binding.
type WrapperKind uint8

const (
	WrapperCache2D WrapperKind = iota
	WrapperCacheFlat
	WrapperCacheOnce
	WrapperInterpolated
	WrapperCacheCell
)

func (k WrapperKind) String() string {
	switch k {
	case WrapperCache2D:
		return "Cache2D"
	case WrapperCacheFlat:
		return "CacheFlat"
	case WrapperCacheOnce:
		return "CacheOnce"
	case WrapperInterpolated:
		return "Interpolated"
	case WrapperCacheCell:
		return "CacheCell"
	default:
		return "WrapperUnknown"
	}
}

// wrapperNode marks input for a particular chunk-bound caching strategy.
// Before binding, it is the identity: Sample/Fill/Min/Max all delegate to
// input unchanged.
type wrapperNode struct {
	input Node
	kind  WrapperKind
}

// WrapCache2D, WrapCacheFlat, WrapCacheOnce, WrapInterpolated and
// WrapCacheCell mark input for the corresponding chunk-bound cache kind.
func WrapCache2D(input Node) Node      { return &wrapperNode{input: input, kind: WrapperCache2D} }
func WrapCacheFlat(input Node) Node    { return &wrapperNode{input: input, kind: WrapperCacheFlat} }
func WrapCacheOnce(input Node) Node    { return &wrapperNode{input: input, kind: WrapperCacheOnce} }
func WrapInterpolated(input Node) Node { return &wrapperNode{input: input, kind: WrapperInterpolated} }
func WrapCacheCell(input Node) Node    { return &wrapperNode{input: input, kind: WrapperCacheCell} }

// WrapperInput exposes the wrapped child and its kind, letting callers (the
// chunkbind Converter, tests) inspect a Wrapper without depending on its
// unexported type.
func WrapperInput(n Node) (input Node, kind WrapperKind, ok bool) {
	w, isWrapper := n.(*wrapperNode)
	if !isWrapper {
		return nil, 0, false
	}
	return w.input, w.kind, true
}

func (w *wrapperNode) Sample(pos Pos) float64 { return w.input.Sample(pos) }

func (w *wrapperNode) Fill(dest []float64, applier Applier) { w.input.Fill(dest, applier) }

func (w *wrapperNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(w, func() Node {
		clone := &wrapperNode{input: w.input.Apply(visitor), kind: w.kind}
		return visitor.Apply(clone)
	})
}

func (w *wrapperNode) Min() float64 { return w.input.Min() }
func (w *wrapperNode) Max() float64 { return w.input.Max() }

func (w *wrapperNode) NodeKind() string { return w.kind.String() }
