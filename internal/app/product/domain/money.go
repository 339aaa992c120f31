package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// storageScale is the number of fractional digits a Spanner NUMERIC keeps.
const storageScale = 9

// Money is an exact non-float amount. Values are never mutated in place.
type Money struct {
	rat *big.Rat
}

// NewMoneyFromString parses a decimal string such as "19.99".
func NewMoneyFromString(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return &Money{rat: rat}, nil
}

// NewMoneyFromRat copies rat. A nil rat is zero.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Rat returns a copy of the value rounded to NUMERIC storage precision.
func (m *Money) Rat() *big.Rat {
	rounded, _ := new(big.Rat).SetString(m.rat.FloatString(storageScale))
	return rounded
}

// Float64 is for JSON output only.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the amount with two decimals.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
