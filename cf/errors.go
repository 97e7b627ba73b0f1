package cf

import "errors"

var (
	// ErrUndefined indicates the empty continued fraction: the result of a
	// degenerate transform (for example division by zero) that represents
	// no real number. Arithmetic propagates it silently; extraction
	// surfaces (Cmp, Split, Rat, Decimal) report it.
	ErrUndefined = errors.New("cf: undefined value (empty continued fraction)")

	// ErrZeroDenominator indicates a rational constructor was given a zero
	// denominator.
	ErrZeroDenominator = errors.New("cf: zero denominator")

	// ErrNonTerminating indicates the term stream was still producing
	// terms past the caller's budget, so no exact rational value could be
	// recovered. The value may be irrational or simply very long.
	ErrNonTerminating = errors.New("cf: term stream exceeds budget, no finite expansion recovered")
)
