package domain

import (
	"math/big"
)

var hundred = big.NewRat(100, 1)

// Discount is a percentage taken off the product price, between 0 and 100.
type Discount struct {
	percent *big.Rat
}

// NoDiscount returns a zero discount.
func NoDiscount() *Discount {
	return &Discount{percent: new(big.Rat)}
}

// NewDiscount validates percent and wraps it.
func NewDiscount(percent *big.Rat) (*Discount, error) {
	if percent == nil {
		return NoDiscount(), nil
	}
	if percent.Sign() < 0 || percent.Cmp(hundred) > 0 {
		return nil, ErrInvalidDiscount
	}
	return &Discount{percent: new(big.Rat).Set(percent)}, nil
}

// NewDiscountFromString parses a decimal percentage such as "12.5".
func NewDiscountFromString(s string) (*Discount, error) {
	percent, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ErrInvalidDiscount
	}
	return NewDiscount(percent)
}

// Percent returns a copy of the percentage.
func (d *Discount) Percent() *big.Rat {
	return new(big.Rat).Set(d.percent)
}

// Float64 returns the percentage for display.
func (d *Discount) Float64() float64 {
	f, _ := d.percent.Float64()
	return f
}

// IsZero reports whether the discount takes nothing off.
func (d *Discount) IsZero() bool {
	return d.percent.Sign() == 0
}

// Equals reports whether both discounts have the same percentage.
func (d *Discount) Equals(other *Discount) bool {
	return d.percent.Cmp(other.percent) == 0
}

// Apply returns price - price*percent/100.
func (d *Discount) Apply(price *Money) *Money {
	amount := price.MultiplyByRat(new(big.Rat).Quo(d.percent, hundred))
	return price.Subtract(amount)
}

// Rat returns the percentage rounded to NUMERIC storage precision.
func (d *Discount) Rat() *big.Rat {
	rounded, _ := new(big.Rat).SetString(d.percent.FloatString(storageScale))
	return rounded
}
