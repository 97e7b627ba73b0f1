package cf_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/confrac/cf"
)

// ExampleSqrt2 prints the default 15-character rendering of √2.
func ExampleSqrt2() {
	fmt.Println(cf.Sqrt2())
	// Output:
	// 1.4142135623730
}

// ExampleCF_Add adds √2 to itself; the result is exact, only the
// rendering truncates.
func ExampleCF_Add() {
	sum := cf.Sqrt2().Add(cf.Sqrt2())
	fmt.Println(sum)
	// Output:
	// 2.8284271247461
}

// ExampleFromRat expands a rational and extracts digits on demand —
// 355/113 is a classic π approximation.
func ExampleFromRat() {
	x := cf.FromRat(big.NewRat(355, 113))
	s, _ := x.DecimalString(12)
	fmt.Println(s)
	// Output:
	// 3.1415929203
}

// ExampleCF_Split separates e into its integer part and fractional
// remainder.
func ExampleCF_Split() {
	ip, frac, _ := cf.E().Split()
	s, _ := frac.DecimalString(9)
	fmt.Println(ip, s)
	// Output:
	// 2 0.7182818
}

// ExampleCF_Cmp shows the two encodings of the same rational comparing
// equal: [3] and [2; 1] are both 3.
func ExampleCF_Cmp() {
	c, _ := cf.FromTerms(3).Cmp(cf.FromTerms(2, 1))
	fmt.Println(c)
	// Output:
	// 0
}

// ExampleCF_Recip inverts √2 without running a transform engine.
func ExampleCF_Recip() {
	fmt.Println(cf.Sqrt2().Recip())
	// Output:
	// 0.7071067811865
}

// ExampleCF_Rat folds a finite term sequence back into an exact rational.
func ExampleCF_Rat() {
	r, _ := cf.FromTerms(3, 7, 16).Rat(10)
	fmt.Println(r.RatString())
	// Output:
	// 355/113
}
