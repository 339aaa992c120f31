package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscount(t *testing.T) {
	t.Run("bounds are inclusive", func(t *testing.T) {
		_, err := NewDiscount(big.NewRat(0, 1))
		assert.NoError(t, err)
		_, err = NewDiscount(big.NewRat(100, 1))
		assert.NoError(t, err)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := NewDiscount(big.NewRat(-1, 1))
		assert.ErrorIs(t, err, ErrInvalidDiscount)
		_, err = NewDiscount(big.NewRat(201, 2))
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("nil means no discount", func(t *testing.T) {
		d, err := NewDiscount(nil)
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("from string", func(t *testing.T) {
		d, err := NewDiscountFromString("12.5")
		require.NoError(t, err)
		assert.Equal(t, 12.5, d.Float64())

		_, err = NewDiscountFromString("ten")
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})
}

func TestDiscount_Apply(t *testing.T) {
	price, _ := NewMoneyFromString("200")

	tests := []struct {
		percent string
		want    string
	}{
		{"0", "200.00"},
		{"10", "180.00"},
		{"33.5", "133.00"},
		{"100", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.percent, func(t *testing.T) {
			d, err := NewDiscountFromString(tt.percent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Apply(price).String())
		})
	}
}
