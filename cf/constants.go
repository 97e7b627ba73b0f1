package cf

import "math/big"

// Named constants with known term patterns. Each call returns a fresh
// immutable value; the generators hold no state between reads.

// Sqrt2 returns √2 = [1; 2, 2, 2, …].
func Sqrt2() CF {
	return func(yield func(*big.Int) bool) {
		if !yield(big.NewInt(1)) {
			return
		}
		for yield(big.NewInt(2)) {
		}
	}
}

// E returns Euler's number e = [2; 1, 2, 1, 1, 4, 1, 1, 6, 1, …], the
// pattern 1, 2n, 1 for n = 1, 2, 3, …
func E() CF {
	return func(yield func(*big.Int) bool) {
		if !yield(big.NewInt(2)) {
			return
		}
		for n := int64(1); ; n++ {
			if !yield(big.NewInt(1)) {
				return
			}
			if !yield(big.NewInt(2 * n)) {
				return
			}
			if !yield(big.NewInt(1)) {
				return
			}
		}
	}
}

// Phi returns the golden ratio φ = [1; 1, 1, 1, …].
func Phi() CF {
	return func(yield func(*big.Int) bool) {
		for yield(big.NewInt(1)) {
		}
	}
}
