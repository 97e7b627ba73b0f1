package cf_test

import (
	"testing"

	"github.com/katalvlaran/confrac/cf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cmp compares two values, failing the test on error.
func cmp(t *testing.T, x, y cf.CF) int {
	t.Helper()
	c, err := x.Cmp(y)
	require.NoError(t, err)
	return c
}

// TestCmp_Canonicalization verifies the two encodings of a rational
// compare equal: a final term k equals the pair k−1, 1.
func TestCmp_Canonicalization(t *testing.T) {
	assert.Zero(t, cmp(t, cf.FromTerms(3), cf.FromTerms(2, 1)))
	assert.Zero(t, cmp(t, cf.FromTerms(2, 1), cf.FromTerms(3)))
	assert.Zero(t, cmp(t, cf.FromTerms(1), cf.FromTerms(0, 1)))
	assert.Zero(t, cmp(t, cf.FromTerms(3, 2), cf.FromTerms(3, 1, 1)))
}

// TestCmp_SignAlternation verifies that a larger term at odd depth means
// a smaller value: [1;2] = 3/2 > [1;3] = 4/3.
func TestCmp_SignAlternation(t *testing.T) {
	assert.Equal(t, 1, cmp(t, cf.FromTerms(1, 2), cf.FromTerms(1, 3)))
	assert.Equal(t, -1, cmp(t, cf.FromTerms(1, 3), cf.FromTerms(1, 2)))
}

// TestCmp_FiniteVersusContinuing covers the case where one sequence ends
// while the other keeps refining: [3] = 3 < [3;2] = 3.5, and at the next
// depth the direction flips: [3;2] = 3.5 > [3;2,4] ≈ 3.444.
func TestCmp_FiniteVersusContinuing(t *testing.T) {
	assert.Equal(t, -1, cmp(t, cf.FromTerms(3), cf.FromTerms(3, 2)))
	assert.Equal(t, 1, cmp(t, cf.FromTerms(3, 2), cf.FromTerms(3)))
	assert.Equal(t, 1, cmp(t, cf.FromTerms(3, 2), cf.FromTerms(3, 2, 4)))
}

// TestCmp_AgainstIrrationals orders rationals around √2 and e, consuming
// only finitely many terms of the infinite operands.
func TestCmp_AgainstIrrationals(t *testing.T) {
	threeHalves, err := cf.FromFrac(3, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp(t, cf.Sqrt2(), threeHalves), "√2 < 3/2")
	assert.Equal(t, 1, cmp(t, cf.E(), cf.Sqrt2()), "e > √2")
	assert.Equal(t, -1, cmp(t, cf.Phi(), cf.E()), "φ < e")
	assert.Equal(t, 1, cmp(t, cf.Sqrt2(), cf.FromInt(1)), "√2 > 1")
}

// TestCmp_NegativeValues checks ordering across zero and between
// negative rationals.
func TestCmp_NegativeValues(t *testing.T) {
	minusTwoThirds := cf.FromTerms(-1, 3) // -1 + 1/3
	minusHalf := cf.FromTerms(-1, 2)      // -1 + 1/2
	assert.Equal(t, -1, cmp(t, minusTwoThirds, minusHalf))
	assert.Equal(t, -1, cmp(t, minusHalf, cf.FromInt(0)))
	assert.Equal(t, 1, cmp(t, cf.FromInt(0), cf.FromInt(-3)))
}

// TestEqual verifies Equal on identical values, distinct values and the
// reciprocal identity 1/[0;1,2] = [1;2].
func TestEqual(t *testing.T) {
	eq, err := cf.FromTerms(1, 2).Equal(cf.FromTerms(0, 1, 2).Recip())
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = cf.FromTerms(1, 2).Equal(cf.FromTerms(1, 3))
	require.NoError(t, err)
	assert.False(t, eq)

	eq, err = cf.FromInt(4).Equal(cf.FromInt(4))
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestCmp_Undefined verifies comparison of an empty operand reports
// ErrUndefined no matter which side it is on.
func TestCmp_Undefined(t *testing.T) {
	_, err := cf.Undefined().Cmp(cf.FromInt(1))
	assert.ErrorIs(t, err, cf.ErrUndefined)
	_, err = cf.FromInt(1).Cmp(cf.Undefined())
	assert.ErrorIs(t, err, cf.ErrUndefined)
	_, err = cf.Undefined().Cmp(cf.Undefined())
	assert.ErrorIs(t, err, cf.ErrUndefined)
}
