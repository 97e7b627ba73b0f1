package cf

import "math/big"

// hom — the homographic (1-input) transform engine
//
// Description:
//
//	A hom is the ephemeral 4-coefficient state of the rational function
//
//	    f(x) = (n0·x + n1) / (d0·x + d1)
//
//	applied to one continued fraction. The engine repeatedly decides:
//	  emit   — both denominators are nonzero and ⌊n0/d0⌋ = ⌊n1/d1⌋ = q;
//	           q is the next output term regardless of the unread input,
//	           so yield it and continue with 1/(f − q)
//	  absorb — otherwise substitute x = t + 1/x' for the next input term t
//
// Algorithm Outline:
//  1. If n0 = n1 = 0 the function is constantly zero: emit [0], stop.
//  2. If d0 = d1 = 0 the function is division by the zero function:
//     the result is the empty (undefined) sequence.
//  3. If emittable, yield q and update
//     (n0,n1,d0,d1) ← (d0, d1, n0−q·d0, n1−q·d1).
//  4. Otherwise pull a term t; on exhaustion the remaining value is the
//     limit n0/d0 as x→∞, expanded by Euclid's algorithm; else update
//     (n0,n1,d0,d1) ← (n0·t+n1, n0, d0·t+d1, d0) and loop.
//
// Every iteration either emits one output term or consumes one input
// term, so the loop is productive for well-formed inputs.
type hom struct {
	n0, n1, d0, d1 *big.Int
}

func newHom(n0, n1, d0, d1 int64) hom {
	return hom{big.NewInt(n0), big.NewInt(n1), big.NewInt(d0), big.NewInt(d1)}
}

// run drives the emit/absorb loop against an already-open input cursor.
// The bihomographic engine enters here once one of its operands is
// exhausted, and the digit extractor reuses the same state type with its
// own emission rule (see digits.go).
func (h hom) run(next func() (*big.Int, bool), yield func(*big.Int) bool) {
	for {
		if h.n0.Sign() == 0 && h.n1.Sign() == 0 {
			yield(big.NewInt(0))
			return
		}
		if h.d0.Sign() == 0 && h.d1.Sign() == 0 {
			return
		}
		if q, ok := h.quotient(); ok {
			if !yield(new(big.Int).Set(q)) {
				return
			}
			h = h.emit(q)
			continue
		}
		t, ok := next()
		if !ok {
			// Exhausted input: the remaining value is the limit n0/d0.
			emitRational(h.n0, h.d0, yield)
			return
		}
		h = h.absorb(t)
	}
}

// quotient reports the common floor q = ⌊n0/d0⌋ = ⌊n1/d1⌋ when both
// denominator coefficients are nonzero and the floors agree.
func (h hom) quotient() (*big.Int, bool) {
	if h.d0.Sign() == 0 || h.d1.Sign() == 0 {
		return nil, false
	}
	q0 := floorDiv(h.n0, h.d0)
	q1 := floorDiv(h.n1, h.d1)
	if q0.Cmp(q1) != 0 {
		return nil, false
	}
	return q0, true
}

// emit removes the integer part q and inverts the remainder: the
// numerator row becomes the old denominator row and the denominator row
// becomes n − q·d. This mirrors one step of continued-fraction expansion.
func (h hom) emit(q *big.Int) hom {
	return hom{
		n0: h.d0,
		n1: h.d1,
		d0: new(big.Int).Sub(h.n0, new(big.Int).Mul(q, h.d0)),
		d1: new(big.Int).Sub(h.n1, new(big.Int).Mul(q, h.d1)),
	}
}

// absorb substitutes x = t + 1/x' into the transform, folding one more
// input term into the coefficients.
func (h hom) absorb(t *big.Int) hom {
	return hom{
		n0: new(big.Int).Add(new(big.Int).Mul(h.n0, t), h.n1),
		n1: h.n0,
		d0: new(big.Int).Add(new(big.Int).Mul(h.d0, t), h.d1),
		d1: h.d0,
	}
}

// emitRational expands the exact rational num/den into continued-fraction
// terms by repeated floor and reciprocation. Terminates for every
// rational; yields nothing when den is zero.
func emitRational(num, den *big.Int, yield func(*big.Int) bool) {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	for d.Sign() != 0 {
		q := floorDiv(n, d)
		r := new(big.Int).Sub(n, new(big.Int).Mul(q, d))
		if !yield(q) {
			return
		}
		n, d = d, r
	}
}

var intOne = big.NewInt(1)

// floorDiv returns ⌊a/b⌋. math/big's Quo truncates toward zero, so the
// quotient is decremented when the remainder and divisor disagree in sign.
func floorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, intOne)
	}
	return q
}
