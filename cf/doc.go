// Package cf implements exact arithmetic on real numbers represented as
// continued fractions: lazy, possibly infinite streams of integer terms
// t0, t1, t2, … encoding the value t0 + 1/(t1 + 1/(t2 + …)).
//
// 🚀 What is cf?
//
//	An implementation of Gosper's term-at-a-time algorithm:
//	  • a homographic engine applies (n0·x+n1)/(d0·x+d1) to one stream
//	  • a bihomographic engine applies an 8-coefficient bilinear form to
//	    two streams — this is how +, −, ×, ÷ are computed
//	  • on every step the engine either proves the next output term and
//	    emits it, or consumes one more input term, so results are exact
//	    and incremental regardless of whether operands are rational
//	    (finite streams) or irrational (infinite ones, e.g. √2, e)
//
// ✨ Key properties:
//   - exact – coefficients and terms are math/big integers, no rounding
//   - lazy – a CF is an iter.Seq; nothing is computed until terms are pulled
//   - restartable – ranging over a CF always restarts it from its defining
//     closure, so independent consumers never interfere
//   - total order – Cmp/Equal agree with the real-number order, including
//     the two-encodings-of-one-rational ambiguity ([3] equals [2,1])
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/confrac/cf"
//
//	x := cf.Sqrt2()
//	y := cf.FromRat(big.NewRat(1, 2))
//	s, err := x.Mul(y).DecimalString(20) // "0.70710678118654752440"
//
// Caveats that are mathematics, not bugs:
//   - a result that sits exactly on a term or digit boundary (√2·√2,
//     e−e) can absorb input forever without emitting — bound how many
//     terms/digits you request
//   - the decimal expansion of a non-terminating rational (1/3) is
//     infinite; Decimal never truncates on its own
//
// The emit/absorb coefficient updates and the rule for choosing which
// input to absorb from are documented on the engine types in hom.go and
// bihom.go.
package cf
