package cf

import "math/big"

// bihom — the bihomographic (2-input) transform engine
//
// Description:
//
//	A bihom is the ephemeral 8-coefficient state of the bilinear function
//
//	    f(x,y) = (n0·xy + n1·y + n2·x + n3) / (d0·xy + d1·y + d2·x + d3)
//
//	applied to a pair of continued fractions. The four arithmetic
//	operators are fixed coefficient tables:
//
//	    x + y  (0, 1, 1, 0,  0, 0, 0, 1)
//	    x − y  (0,−1, 1, 0,  0, 0, 0, 1)
//	    x · y  (1, 0, 0, 0,  0, 0, 0, 1)
//	    x / y  (0, 0, 1, 0,  0, 1, 0, 0)
//
// Algorithm Outline:
//  1. Degenerate rows mirror the homographic engine: an all-zero
//     numerator row emits [0]; an all-zero denominator row is undefined.
//  2. Emit when all four denominator coefficients are nonzero and the
//     floors ⌊ni/di⌋ agree on a single q; update n ← d, d ← n − q·d.
//  3. Otherwise absorb one term from x or y (choice below); absorbing
//     from an exhausted input collapses the bihom to a hom in the other
//     variable (substitute the limit of the exhausted one) and hands the
//     remaining cursor to hom.run.
//  4. Input choice: an input that no longer occurs in the transform is
//     never consumed. Otherwise compare the widths px = |n0·d1 − n1·d0|
//     and py = |n0·d2 − n2·d0| — the determinants of the homographies
//     obtained by sending y (respectively x) to infinity, which bound the
//     remaining spread of the result in each direction — and absorb from
//     the wider direction; exact ties alternate so neither stream starves.
//
// The tie-break is a performance heuristic only: any choice that keeps
// both streams live yields the same output terms.
type bihom struct {
	n0, n1, n2, n3 *big.Int
	d0, d1, d2, d3 *big.Int
}

func newBihom(n0, n1, n2, n3, d0, d1, d2, d3 int64) bihom {
	return bihom{
		big.NewInt(n0), big.NewInt(n1), big.NewInt(n2), big.NewInt(n3),
		big.NewInt(d0), big.NewInt(d1), big.NewInt(d2), big.NewInt(d3),
	}
}

// Operator tables. Fresh coefficients per call: transforms are refined
// in place by the engine and must never be shared between invocations.
func bihomAdd() bihom { return newBihom(0, 1, 1, 0, 0, 0, 0, 1) }
func bihomSub() bihom { return newBihom(0, -1, 1, 0, 0, 0, 0, 1) }
func bihomMul() bihom { return newBihom(1, 0, 0, 0, 0, 0, 0, 1) }
func bihomDiv() bihom { return newBihom(0, 0, 1, 0, 0, 1, 0, 0) }

// apply returns the continued fraction f(x,y) as a new lazy value.
func (b bihom) apply(x, y CF) CF {
	return func(yield func(*big.Int) bool) {
		nextX, stopX := x.pull()
		defer stopX()
		nextY, stopY := y.pull()
		defer stopY()
		b.run(nextX, nextY, yield)
	}
}

func (b bihom) run(nextX, nextY func() (*big.Int, bool), yield func(*big.Int) bool) {
	fromX := false
	for {
		if b.n0.Sign() == 0 && b.n1.Sign() == 0 && b.n2.Sign() == 0 && b.n3.Sign() == 0 {
			yield(big.NewInt(0))
			return
		}
		if b.d0.Sign() == 0 && b.d1.Sign() == 0 && b.d2.Sign() == 0 && b.d3.Sign() == 0 {
			return
		}
		if q, ok := b.quotient(); ok {
			if !yield(new(big.Int).Set(q)) {
				return
			}
			b = b.emit(q)
			continue
		}

		xGone := b.xIrrelevant()
		yGone := b.yIrrelevant()
		switch {
		case xGone && yGone:
			// Neither input occurs anymore: the value is the constant n3/d3.
			emitRational(b.n3, b.d3, yield)
			return
		case xGone:
			fromX = false
		case yGone:
			fromX = true
		default:
			px, py := b.widths()
			switch px.Cmp(py) {
			case 1:
				fromX = true
			case -1:
				fromX = false
			default:
				fromX = !fromX
			}
		}

		if fromX {
			t, ok := nextX()
			if !ok {
				// x exhausted: collapse to a hom in y at x→∞.
				hom{n0: b.n0, n1: b.n2, d0: b.d0, d1: b.d2}.run(nextY, yield)
				return
			}
			b = b.absorbX(t)
		} else {
			t, ok := nextY()
			if !ok {
				// y exhausted: collapse to a hom in x at y→∞.
				hom{n0: b.n0, n1: b.n1, d0: b.d0, d1: b.d1}.run(nextX, yield)
				return
			}
			b = b.absorbY(t)
		}
	}
}

// quotient reports the common floor of all four coefficient ratios when
// every denominator coefficient is nonzero and the floors agree.
func (b bihom) quotient() (*big.Int, bool) {
	if b.d0.Sign() == 0 || b.d1.Sign() == 0 || b.d2.Sign() == 0 || b.d3.Sign() == 0 {
		return nil, false
	}
	q := floorDiv(b.n0, b.d0)
	if floorDiv(b.n1, b.d1).Cmp(q) != 0 ||
		floorDiv(b.n2, b.d2).Cmp(q) != 0 ||
		floorDiv(b.n3, b.d3).Cmp(q) != 0 {
		return nil, false
	}
	return q, true
}

// xIrrelevant reports whether x no longer occurs in the transform.
func (b bihom) xIrrelevant() bool {
	return b.n0.Sign() == 0 && b.n2.Sign() == 0 && b.d0.Sign() == 0 && b.d2.Sign() == 0
}

// yIrrelevant reports whether y no longer occurs in the transform.
func (b bihom) yIrrelevant() bool {
	return b.n0.Sign() == 0 && b.n1.Sign() == 0 && b.d0.Sign() == 0 && b.d1.Sign() == 0
}

// widths returns px = |n0·d1 − n1·d0| and py = |n0·d2 − n2·d0|, the
// bounds compared by the input tie-break.
func (b bihom) widths() (px, py *big.Int) {
	px = new(big.Int).Sub(new(big.Int).Mul(b.n0, b.d1), new(big.Int).Mul(b.n1, b.d0))
	px.Abs(px)
	py = new(big.Int).Sub(new(big.Int).Mul(b.n0, b.d2), new(big.Int).Mul(b.n2, b.d0))
	py.Abs(py)
	return px, py
}

// emit removes the integer part q: the numerator row becomes the old
// denominator row and the denominator row becomes n − q·d, exactly as in
// the homographic emit but across four coefficient pairs.
func (b bihom) emit(q *big.Int) bihom {
	sub := func(n, d *big.Int) *big.Int {
		return new(big.Int).Sub(n, new(big.Int).Mul(q, d))
	}
	return bihom{
		n0: b.d0, n1: b.d1, n2: b.d2, n3: b.d3,
		d0: sub(b.n0, b.d0), d1: sub(b.n1, b.d1), d2: sub(b.n2, b.d2), d3: sub(b.n3, b.d3),
	}
}

// absorbX substitutes x = t + 1/x' into the transform.
func (b bihom) absorbX(t *big.Int) bihom {
	fold := func(a, c *big.Int) *big.Int {
		return new(big.Int).Add(new(big.Int).Mul(a, t), c)
	}
	return bihom{
		n0: fold(b.n0, b.n1), n1: b.n0, n2: fold(b.n2, b.n3), n3: b.n2,
		d0: fold(b.d0, b.d1), d1: b.d0, d2: fold(b.d2, b.d3), d3: b.d2,
	}
}

// absorbY substitutes y = t + 1/y' into the transform.
func (b bihom) absorbY(t *big.Int) bihom {
	fold := func(a, c *big.Int) *big.Int {
		return new(big.Int).Add(new(big.Int).Mul(a, t), c)
	}
	return bihom{
		n0: fold(b.n0, b.n2), n1: fold(b.n1, b.n3), n2: b.n0, n3: b.n1,
		d0: fold(b.d0, b.d2), d1: fold(b.d1, b.d3), d2: b.d0, d3: b.d1,
	}
}
