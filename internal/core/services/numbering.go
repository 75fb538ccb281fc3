package services

import (
	"math/rand/v2"
	"strconv"
)

// AccountNumberGenerator produces candidate account numbers. Uniqueness is
// enforced by the caller against the store, so implementations only need to
// draw candidates; tests substitute a deterministic sequence.
type AccountNumberGenerator interface {
	Next() string
}

// randomAccountNumberGenerator draws uniformly from the 10-digit space
// [1000000000, 9999999999].
type randomAccountNumberGenerator struct{}

// NewRandomAccountNumberGenerator returns the production generator.
func NewRandomAccountNumberGenerator() AccountNumberGenerator {
	return randomAccountNumberGenerator{}
}

func (randomAccountNumberGenerator) Next() string {
	return strconv.FormatInt(rand.Int64N(9_000_000_000)+1_000_000_000, 10)
}
