package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromPaise(t *testing.T) {
	t.Run("should create money from paise", func(t *testing.T) {
		money, err := kernel.NewMoneyFromPaise(150050)

		require.NoError(t, err)
		assert.Equal(t, int64(150050), money.Paise())
		assert.InDelta(t, 1500.50, money.Rupees(), 0.001)
	})

	t.Run("should create zero money", func(t *testing.T) {
		money, err := kernel.NewMoneyFromPaise(0)

		require.NoError(t, err)
		assert.True(t, money.IsZero())
	})

	t.Run("should reject negative paise", func(t *testing.T) {
		_, err := kernel.NewMoneyFromPaise(-1)

		assert.ErrorIs(t, err, kernel.ErrNegativeMoney)
	})
}

func TestNewMoneyFromRupees(t *testing.T) {
	t.Run("should round rupees to whole paise", func(t *testing.T) {
		money, err := kernel.NewMoneyFromRupees(99.999)

		require.NoError(t, err)
		assert.Equal(t, int64(10000), money.Paise())
	})

	t.Run("should reject negative rupees", func(t *testing.T) {
		_, err := kernel.NewMoneyFromRupees(-0.01)

		assert.ErrorIs(t, err, kernel.ErrNegativeMoney)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	money := func(t *testing.T, paise int64) kernel.Money {
		t.Helper()
		m, err := kernel.NewMoneyFromPaise(paise)
		require.NoError(t, err)
		return m
	}

	t.Run("should add amounts", func(t *testing.T) {
		sum := money(t, 100).Add(money(t, 250))

		assert.Equal(t, int64(350), sum.Paise())
	})

	t.Run("should subtract smaller amount", func(t *testing.T) {
		diff, err := money(t, 250).Sub(money(t, 100))

		require.NoError(t, err)
		assert.Equal(t, int64(150), diff.Paise())
	})

	t.Run("should refuse subtraction below zero", func(t *testing.T) {
		_, err := money(t, 100).Sub(money(t, 250))

		assert.ErrorIs(t, err, kernel.ErrNegativeMoney)
	})

	t.Run("should multiply by integer factor", func(t *testing.T) {
		product, err := money(t, 500).MulInt(3)

		require.NoError(t, err)
		assert.Equal(t, int64(1500), product.Paise())
	})

	t.Run("should refuse negative integer factor", func(t *testing.T) {
		_, err := money(t, 500).MulInt(-1)

		assert.Error(t, err)
	})

	t.Run("should multiply by float factor with rounding", func(t *testing.T) {
		product, err := money(t, 1000).MulFloat(0.18)

		require.NoError(t, err)
		assert.Equal(t, int64(180), product.Paise())
	})

	t.Run("should compare amounts", func(t *testing.T) {
		small := money(t, 100)
		large := money(t, 200)

		assert.True(t, small.LessThan(large))
		assert.True(t, large.GreaterThan(small))
		assert.False(t, small.IsEqual(large))
		assert.True(t, small.IsEqual(money(t, 100)))
	})

	t.Run("should format as rupees", func(t *testing.T) {
		assert.Equal(t, "₹1500.50", money(t, 150050).String())
	})
}
