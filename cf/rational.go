package cf

import "math/big"

// Rational interop. *big.Rat is the exchange currency: construction
// expands a rational into its finite term sequence, and conversion back
// folds terms through the continuant recurrence.

// FromRat returns the finite continued fraction of r, produced by
// repeated floor and reciprocation. The expansion of a rational always
// terminates, and its tail terms are strictly positive.
func FromRat(r *big.Rat) CF {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	return func(yield func(*big.Int) bool) {
		emitRational(num, den, yield)
	}
}

// FromFrac returns the continued fraction of num/den, or
// ErrZeroDenominator when den is zero.
func FromFrac(num, den int64) (CF, error) {
	if den == 0 {
		return nil, ErrZeroDenominator
	}
	return FromRat(big.NewRat(num, den)), nil
}

// Rat returns the exact rational value of x, reading at most maxTerms
// terms. Irrationality is undecidable from a term stream, so the budget
// is explicit: if the stream is still producing terms past maxTerms the
// conversion fails with ErrNonTerminating rather than silently
// approximating. The empty continued fraction yields ErrUndefined.
//
// The value is rebuilt through the continuant recurrence
//
//	p(k) = t(k)·p(k−1) + p(k−2),  q(k) = t(k)·q(k−1) + q(k−2)
//
// with p(−1)=1, p(−2)=0, q(−1)=0, q(−2)=1.
func (x CF) Rat(maxTerms int) (*big.Rat, error) {
	next, stop := x.pull()
	defer stop()

	pPrev2, pPrev := big.NewInt(0), big.NewInt(1)
	qPrev2, qPrev := big.NewInt(1), big.NewInt(0)
	count := 0
	for {
		t, ok := next()
		if !ok {
			break
		}
		count++
		if count > maxTerms {
			return nil, ErrNonTerminating
		}
		p := new(big.Int).Add(new(big.Int).Mul(t, pPrev), pPrev2)
		q := new(big.Int).Add(new(big.Int).Mul(t, qPrev), qPrev2)
		pPrev2, pPrev = pPrev, p
		qPrev2, qPrev = qPrev, q
	}
	if count == 0 || qPrev.Sign() == 0 {
		return nil, ErrUndefined
	}
	return new(big.Rat).SetFrac(pPrev, qPrev), nil
}
