// Package cf defines the CF term-sequence type and its constructors.
package cf

import (
	"iter"
	"math/big"
)

// CF represents a real number as a continued fraction: a lazy sequence of
// integer terms t0, t1, t2, … with value t0 + 1/(t1 + 1/(t2 + …)).
//
// A CF is an iter.Seq over *big.Int. Ranging over it always restarts the
// sequence from its defining closure, so a value may be read by any number
// of independent consumers; no read ever mutates shared state. Yielded
// terms are freshly allocated and owned by the consumer.
//
// Representation invariants:
//   - a single term [i] is the exact integer i
//   - in longer sequences every term after t0 is strictly positive
//   - the empty sequence is the "undefined" sentinel (see ErrUndefined);
//     it never represents a number
type CF iter.Seq[*big.Int]

// pull opens a single-use cursor over x's terms. Callers must invoke stop
// once the cursor is no longer needed.
func (x CF) pull() (next func() (*big.Int, bool), stop func()) {
	return iter.Pull(iter.Seq[*big.Int](x))
}

// FromTerms builds a finite continued fraction from literal terms.
// FromTerms() with no arguments is the undefined sentinel.
func FromTerms(terms ...int64) CF {
	ts := make([]*big.Int, len(terms))
	for i, t := range terms {
		ts[i] = big.NewInt(t)
	}
	return func(yield func(*big.Int) bool) {
		for _, t := range ts {
			if !yield(new(big.Int).Set(t)) {
				return
			}
		}
	}
}

// FromInt returns the single-term continued fraction [v].
func FromInt(v int64) CF {
	return FromTerms(v)
}

// FromBigInt returns the single-term continued fraction [v].
// The value is copied; later mutation of v does not affect the result.
func FromBigInt(v *big.Int) CF {
	t := new(big.Int).Set(v)
	return func(yield func(*big.Int) bool) {
		yield(new(big.Int).Set(t))
	}
}

// Undefined returns the empty continued fraction, the sentinel for an
// undefined result such as division by zero.
func Undefined() CF {
	return func(yield func(*big.Int) bool) {}
}

// IsUndefined reports whether x has no terms at all.
//
// Deciding this forces the first term, so on pathological operands (see
// the package doc) the call may not return.
func (x CF) IsUndefined() bool {
	next, stop := x.pull()
	defer stop()
	_, ok := next()
	return !ok
}

// FirstTerms returns up to n leading terms of x. Shorter sequences return
// fewer terms; n <= 0 returns nil.
func (x CF) FirstTerms(n int) []*big.Int {
	if n <= 0 {
		return nil
	}
	out := make([]*big.Int, 0, n)
	for t := range x {
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}
