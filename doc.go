// Package confrac is exact real arithmetic over continued fractions —
// add, subtract, multiply, divide, compare and print values like √2 and e
// without ever rounding.
//
// 🚀 What is confrac?
//
//	A lazy, pull-based implementation of Gosper's algorithm:
//	  • Values are (possibly infinite) streams of integer terms
//	  • Arithmetic runs a transform engine that emits each output term
//	    as soon as — and only as soon as — it is information-theoretically
//	    decided by the input terms consumed so far
//	  • Decimal digits come out one at a time, exactly, for as long as
//	    you keep asking
//
// ✨ Why choose confrac?
//
//   - Exact – no rounding anywhere; coefficients are math/big integers
//   - Lazy – infinite operands are first-class; you pay per term/digit
//   - Immutable – every value can be re-read by independent consumers
//   - Small API – one type, a handful of operators, two famous constants
//
// Everything lives in one subpackage:
//
//	cf/ — the CF type, the homographic/bihomographic engines, ordering,
//	      decimal digit extraction, constants (Sqrt2, E, Phi)
//
// plus a demo binary:
//
//	cmd/cfcalc — print terms or digits of constants, rationals and sums,
//	             products, quotients thereof
//
// Quick taste:
//
//	x := cf.Sqrt2().Add(cf.Sqrt2()) // 2√2, never rounded
//	fmt.Println(x)                  // 2.8284271247461
//
// Mind the mathematics: an operation whose result hovers forever on a
// term boundary (for instance computing √2·√2 digit-by-digit) may consume
// unboundedly many input terms before the next output — bound how much
// output you request.
//
//	go get github.com/katalvlaran/confrac/cf
package confrac
