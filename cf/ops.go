package cf

import "math/big"

// Arithmetic facade. Each operator routes through the bihomographic
// engine with its fixed coefficient table; none of them mutate their
// operands, and every result is a fresh lazy value.

// Add returns x + y.
func (x CF) Add(y CF) CF { return bihomAdd().apply(x, y) }

// Sub returns x − y.
func (x CF) Sub(y CF) CF { return bihomSub().apply(x, y) }

// Mul returns x · y.
func (x CF) Mul(y CF) CF { return bihomMul().apply(x, y) }

// Div returns x / y. Division by zero produces the undefined (empty)
// sequence, which propagates through further arithmetic.
func (x CF) Div(y CF) CF { return bihomDiv().apply(x, y) }

// Neg returns −x, computed as 0 − x.
func (x CF) Neg() CF { return FromInt(0).Sub(x) }

// Recip returns 1/x by the leading-zero rewrite: [0; a, b, …] becomes
// [a; b, …] and [a; b, …] becomes [0; a, b, …]. The value 1 maps to
// itself, and the reciprocal of zero is the undefined sequence. For
// non-negative x no transform engine is involved, so the call is cheap.
// Prepending a zero to a negative sequence would create a mixed-sign
// tail, so a negative leading term runs through the divide table and
// comes back in canonical form.
func (x CF) Recip() CF {
	return func(yield func(*big.Int) bool) {
		next, stop := x.pull()
		defer stop()
		t0, ok := next()
		if !ok {
			return
		}
		if t0.Sign() < 0 {
			for t := range FromInt(1).Div(x) {
				if !yield(t) {
					return
				}
			}
			return
		}
		if t0.Sign() == 0 {
			// 1/[0; a, b, …] = [a; b, …]; 1/[0] has no terms at all.
			// The remainder already leads with its own floor, so this
			// holds for negative tails too.
			copyRemaining(next, yield)
			return
		}
		t1, more := next()
		if !more && t0.Cmp(intOne) == 0 {
			yield(big.NewInt(1))
			return
		}
		if !yield(big.NewInt(0)) || !yield(new(big.Int).Set(t0)) {
			return
		}
		if !more {
			return
		}
		if !yield(new(big.Int).Set(t1)) {
			return
		}
		copyRemaining(next, yield)
	}
}

// Abs returns |x|, derived from the ordering against zero.
func (x CF) Abs() (CF, error) {
	s, err := x.Sign()
	if err != nil {
		return nil, err
	}
	if s < 0 {
		return x.Neg(), nil
	}
	return x, nil
}

// Sign returns −1, 0 or +1 as x is negative, zero or positive, derived
// from the ordering against zero. Returns ErrUndefined for the empty
// continued fraction.
func (x CF) Sign() (int, error) {
	return x.Cmp(FromInt(0))
}

// Split returns the integer part of x and its fractional remainder as a
// continued fraction. The leading term of a canonical sequence is the
// floor of the value, so the remainder [0; t1, t2, …] is always
// non-negative. Returns ErrUndefined for the empty continued fraction.
func (x CF) Split() (*big.Int, CF, error) {
	next, stop := x.pull()
	t0, ok := next()
	stop()
	if !ok {
		return nil, nil, ErrUndefined
	}
	ip := new(big.Int).Set(t0)
	frac := CF(func(yield func(*big.Int) bool) {
		next, stop := x.pull()
		defer stop()
		if _, ok := next(); !ok {
			return
		}
		if !yield(big.NewInt(0)) {
			return
		}
		copyRemaining(next, yield)
	})
	return ip, frac, nil
}

// copyRemaining forwards the rest of a cursor, copying each term.
func copyRemaining(next func() (*big.Int, bool), yield func(*big.Int) bool) {
	for {
		t, ok := next()
		if !ok {
			return
		}
		if !yield(new(big.Int).Set(t)) {
			return
		}
	}
}
