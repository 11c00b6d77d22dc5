package densityfn

// beardifyerNode is the constant-zero structure-injection hook. The reviewed
// core never implements its non-trivial behavior (structure-aware density
// carving), so this stays a stub returning 0 everywhere.
type beardifyerNode struct{}

// Beardifyer is the singleton stub structure-injection node.
var Beardifyer Node = beardifyerNode{}

func (beardifyerNode) Sample(Pos) float64 { return 0 }
func (beardifyerNode) Fill(dest []float64, applier Applier) {
	fillBySample(beardifyerNode{}, dest, applier)
}
func (beardifyerNode) Apply(visitor Visitor) Node {
	return visitor.Memoize(beardifyerNode{}, func() Node { return visitor.Apply(beardifyerNode{}) })
}
func (beardifyerNode) Min() float64               { return 0 }
func (beardifyerNode) Max() float64               { return 0 }
func (beardifyerNode) NodeKind() string           { return "Beardifyer" }
