package cf

import (
	"iter"
	"math/big"
	"strings"
)

// Decimal digit extraction.
//
// The extractor is the homographic emit/absorb loop with one change: a
// decimal emit does not invert the remainder. After a quotient q is
// proven, the state is rescaled by ten — n ← 10·(n − q·d) with the
// denominator row unchanged — so the next proven quotient is the next
// digit. The first emission is the whole integer part; every later one
// lies in 0..9 because the tracked remainder stays inside [0, 1).
//
// Once the source stream is exhausted the remaining value is the exact
// rational n0/d0 and extraction switches to plain long division, which
// stops at a zero remainder (terminating decimal) and otherwise runs for
// as long as digits are pulled.

// Decimal returns the decimal expansion of x as a lazy stream of
// characters: an optional leading '-', the integer-part digits, then a
// '.' followed by fraction digits whenever the expansion continues past
// the integer part (integers render without a trailing point). The
// stream is single-shot per range and is unbounded for values with
// non-terminating expansions — callers decide how many characters to
// consume. Returns ErrUndefined for the empty continued fraction.
func (x CF) Decimal() (iter.Seq[byte], error) {
	s, err := x.Sign()
	if err != nil {
		return nil, err
	}
	neg := s < 0
	v := x
	if neg {
		v = x.Neg()
	}
	return func(yield func(byte) bool) {
		if neg && !yield('-') {
			return
		}
		expandDigits(v, yield)
	}, nil
}

// DecimalString returns up to n leading characters of x's decimal
// expansion. Terminating expansions may return fewer than n characters.
// Returns ErrUndefined for the empty continued fraction; for pathological
// operands the call may not return (see the package doc).
func (x CF) DecimalString(n int) (string, error) {
	seq, err := x.Decimal()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for c := range seq {
		sb.WriteByte(c)
		if sb.Len() == n {
			break
		}
	}
	return sb.String(), nil
}

// String renders x as its decimal expansion truncated to 15 characters,
// and the empty continued fraction as "undefined". Use DecimalString or
// Decimal for control over the digit count.
func (x CF) String() string {
	s, err := x.DecimalString(15)
	if err != nil {
		return "undefined"
	}
	return s
}

// expandDigits writes the expansion of a non-negative value.
func expandDigits(x CF, yield func(byte) bool) {
	next, stop := x.pull()
	defer stop()

	h := newHom(1, 0, 0, 1)
	wroteInt, wroteDot := false, false
	for {
		if q, ok := h.quotient(); ok {
			if wroteInt {
				// The point appears only once fraction digits exist, so
				// integers never end in a dangling '.'.
				if !wroteDot {
					if !yield('.') {
						return
					}
					wroteDot = true
				}
				if !yield(byte('0' + q.Int64())) {
					return
				}
			} else {
				if !yieldInt(q, yield) {
					return
				}
				wroteInt = true
			}
			h = h.rescale(q)
			continue
		}
		t, ok := next()
		if !ok {
			longDivision(h.n0, h.d0, wroteInt, wroteDot, yield)
			return
		}
		h = h.absorb(t)
	}
}

// rescale removes the proven quotient q and multiplies the remainder by
// ten: n ← 10·(n − q·d), denominator row unchanged.
func (h hom) rescale(q *big.Int) hom {
	step := func(n, d *big.Int) *big.Int {
		r := new(big.Int).Sub(n, new(big.Int).Mul(q, d))
		return r.Mul(r, intTen)
	}
	return hom{n0: step(h.n0, h.d0), n1: step(h.n1, h.d1), d0: h.d0, d1: h.d1}
}

// longDivision expands the exact rational num/den once the source stream
// is exhausted. No further digits are produced after the remainder
// reaches zero; a repeating remainder keeps producing digits for as long
// as they are pulled.
func longDivision(num, den *big.Int, wroteInt, wroteDot bool, yield func(byte) bool) {
	if den.Sign() == 0 {
		return
	}
	n := new(big.Int).Set(num)
	d := den
	if !wroteInt {
		q := floorDiv(n, d)
		if !yieldInt(q, yield) {
			return
		}
		n.Sub(n, new(big.Int).Mul(q, d))
		n.Mul(n, intTen)
	}
	for n.Sign() != 0 {
		if !wroteDot {
			if !yield('.') {
				return
			}
			wroteDot = true
		}
		q := floorDiv(n, d)
		if !yield(byte('0' + q.Int64())) {
			return
		}
		n.Sub(n, new(big.Int).Mul(q, d))
		n.Mul(n, intTen)
	}
}

// yieldInt writes the digits of the integer part.
func yieldInt(q *big.Int, yield func(byte) bool) bool {
	for _, c := range []byte(q.String()) {
		if !yield(c) {
			return false
		}
	}
	return true
}

var intTen = big.NewInt(10)
