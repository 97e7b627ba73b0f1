package cf

import "math/big"

// Ordering over continued-fraction values.
//
// Comparison walks both term streams in lockstep. Continuant nesting
// alternates monotonicity — increasing a term at odd depth decreases the
// value — so the comparison sign flips at every level. An exhausted
// stream contributes the value +∞ at its depth (the enclosing level had
// no 1/… tail), which resolves the finite-versus-continuing case.
//
// Finite rationals have two encodings: a last term k ≥ 1 may also be
// written k−1, 1. Cursors are canonicalized before comparing so both
// encodings are treated as the same number rather than diverging on the
// trailing terms.

// Cmp compares the real values of x and y and returns
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// consuming only as many terms of either operand as the answer requires.
// Comparing equal infinite values does not return. An empty (undefined)
// operand yields ErrUndefined.
func (x CF) Cmp(y CF) (int, error) {
	nextX, stopX := x.pull()
	defer stopX()
	nextY, stopY := y.pull()
	defer stopY()
	cx := canonicalTerms(nextX)
	cy := canonicalTerms(nextY)

	sign := 1
	for depth := 0; ; depth++ {
		tx, okX := cx()
		ty, okY := cy()
		switch {
		case !okX && !okY:
			if depth == 0 {
				return 0, ErrUndefined
			}
			return 0, nil
		case !okX:
			if depth == 0 {
				return 0, ErrUndefined
			}
			// x ends here, so at this depth its value is +∞.
			return sign, nil
		case !okY:
			if depth == 0 {
				return 0, ErrUndefined
			}
			return -sign, nil
		}
		if c := tx.Cmp(ty); c != 0 {
			return c * sign, nil
		}
		sign = -sign
	}
}

// Equal reports whether x and y denote the same real value. Like Cmp it
// does not return when comparing equal infinite values.
func (x CF) Equal(y CF) (bool, error) {
	c, err := x.Cmp(y)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// canonicalTerms wraps a term cursor so that a final [k, 1] pair is
// rewritten as [k+1], collapsing the two encodings of a rational into
// one. A lone [1] is already canonical and passes through unchanged.
// The wrapper looks ahead up to two terms, which is enough because valid
// tails are strictly positive: a merge can never create a new trailing 1.
func canonicalTerms(next func() (*big.Int, bool)) func() (*big.Int, bool) {
	var buf []*big.Int
	done := false
	return func() (*big.Int, bool) {
		for !done && len(buf) < 3 {
			t, ok := next()
			if !ok {
				done = true
				break
			}
			buf = append(buf, t)
		}
		if len(buf) == 0 {
			return nil, false
		}
		if done && len(buf) == 2 && buf[1].Cmp(intOne) == 0 {
			t := new(big.Int).Add(buf[0], intOne)
			buf = nil
			return t, true
		}
		t := buf[0]
		buf = buf[1:]
		return t, true
	}
}
