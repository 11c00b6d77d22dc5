package densityfn

// Add builds x+y, folding identity and linear-normal-form cases:
//
//	add(x, Constant(0)) = x
//	add(Linear(s, o, i), Constant(c)) = Linear(s, o+c, i)
func Add(x, y Node) Node {
	if cy, ok := constVal(y); ok {
		if cy == 0 {
			return x
		}
		if cx, ok := constVal(x); ok {
			return Constant(cx + cy)
		}
		if l, ok := asLinear(x); ok {
			return newLinear(l.slope, l.offset+cy, l.input)
		}
		return newLinear(1, cy, x)
	}
	if cx, ok := constVal(x); ok {
		return Add(y, Constant(cx))
	}
	return &binaryNode{kind: BinaryAdd, a: x, b: y}
}

// Mul builds x*y, folding identity/absorbing/linear-normal-form cases:
//
//	mul(x, Constant(1)) = x
//	mul(x, Constant(0)) = Constant(0)
//	mul(Linear(s, o, i), Constant(c)) = Linear(s*c, o*c, i)
func Mul(x, y Node) Node {
	if cy, ok := constVal(y); ok {
		if cy == 1 {
			return x
		}
		if cy == 0 {
			return Constant(0)
		}
		if cx, ok := constVal(x); ok {
			return Constant(cx * cy)
		}
		if l, ok := asLinear(x); ok {
			return newLinear(l.slope*cy, l.offset*cy, l.input)
		}
		return newLinear(cy, 0, x)
	}
	if cx, ok := constVal(x); ok {
		return Mul(y, Constant(cx))
	}
	return &binaryNode{kind: BinaryMul, a: x, b: y}
}

// AddConst is sugar for Add(x, Constant(c)).
func AddConst(x Node, c float64) Node { return Add(x, Constant(c)) }

// MulConst is sugar for Mul(x, Constant(c)).
func MulConst(x Node, c float64) Node { return Mul(x, Constant(c)) }

// Min builds the pointwise minimum of a and b.
func Min(a, b Node) Node {
	if ca, ok := constVal(a); ok {
		if cb, ok := constVal(b); ok {
			return Constant(minOf2(ca, cb))
		}
	}
	return &binaryNode{kind: BinaryMin, a: a, b: b}
}

// Max builds the pointwise maximum of a and b.
func Max(a, b Node) Node {
	if ca, ok := constVal(a); ok {
		if cb, ok := constVal(b); ok {
			return Constant(maxOf2(ca, cb))
		}
	}
	return &binaryNode{kind: BinaryMax, a: a, b: b}
}

// Abs, Square, Cube, HalfNeg, QuartNeg and Squeeze build the corresponding
// Unary node, constant-folding when the input is already a Constant.
func Abs(x Node) Node      { return foldUnary(UnaryAbs, x) }
func Square(x Node) Node   { return foldUnary(UnarySquare, x) }
func Cube(x Node) Node     { return foldUnary(UnaryCube, x) }
func HalfNeg(x Node) Node  { return foldUnary(UnaryHalfNeg, x) }
func QuartNeg(x Node) Node { return foldUnary(UnaryQuartNeg, x) }
func Squeeze(x Node) Node  { return foldUnary(UnarySqueeze, x) }

func foldUnary(kind UnaryKind, x Node) Node {
	if c, ok := constVal(x); ok {
		return Constant(applyUnary(kind, c))
	}
	return &unaryNode{kind: kind, input: x}
}
