package cf_test

import (
	"testing"

	"github.com/katalvlaran/confrac/cf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSqrt2_TermPattern pins the defining pattern [1; 2, 2, 2, …].
func TestSqrt2_TermPattern(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 2, 2, 2, 2, 2, 2, 2, 2}, terms(cf.Sqrt2(), 10))
}

// TestE_TermPattern pins the defining pattern [2; 1, 2, 1, 1, 4, 1, …],
// the triple 1, 2n, 1 for n = 1, 2, 3, …
func TestE_TermPattern(t *testing.T) {
	want := []int64{2, 1, 2, 1, 1, 4, 1, 1, 6, 1, 1, 8, 1}
	assert.Equal(t, want, terms(cf.E(), 13))
}

// TestPhi_TermPattern pins the defining pattern [1; 1, 1, 1, …] and the
// identity φ = 1 + 1/φ.
func TestPhi_TermPattern(t *testing.T) {
	assert.Equal(t, []int64{1, 1, 1, 1, 1, 1}, terms(cf.Phi(), 6))

	viaIdentity := cf.FromInt(1).Add(cf.Phi().Recip())
	assert.Equal(t, digits(t, cf.Phi(), 20), digits(t, viaIdentity, 20))
}

// TestConstants_IndependentReads verifies each constructor call and each
// read is independent: draining one reader must not affect another.
func TestConstants_IndependentReads(t *testing.T) {
	x := cf.E()
	first := terms(x, 8)
	_ = terms(x, 3) // partially drain a second reader
	again := terms(x, 8)
	require.Equal(t, first, again, "reads restart from the defining closure")
}
