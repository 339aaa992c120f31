package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		m, err := NewMoneyFromString("19.99")
		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
		assert.Equal(t, 19.99, m.Float64())
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		m, err := NewMoneyFromString(" 5 ")
		require.NoError(t, err)
		assert.Equal(t, "5.00", m.String())
	})

	t.Run("garbage returns error", func(t *testing.T) {
		_, err := NewMoneyFromString("abc")
		assert.Error(t, err)
	})

	t.Run("negative allowed", func(t *testing.T) {
		m, err := NewMoneyFromString("-1")
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestMoney_Rat(t *testing.T) {
	m := NewMoneyFromRat(big.NewRat(1, 3))
	// rounded to nine fractional digits for NUMERIC columns
	assert.Equal(t, "0.333333333", m.Rat().FloatString(9))
}

func TestMoney_Arithmetic(t *testing.T) {
	m, _ := NewMoneyFromString("100")
	other, _ := NewMoneyFromString("30")

	assert.Equal(t, "70.00", m.Subtract(other).String())
	assert.Equal(t, "25.00", m.MultiplyByRat(big.NewRat(1, 4)).String())
	assert.True(t, m.Equals(m.Copy()))
	assert.Equal(t, "0.00", NewMoneyFromRat(nil).String())
}
