package kernel_test

import (
	"testing"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("should create money from positive cents", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(500)

		require.NoError(t, err)
		assert.Equal(t, int64(500), m.Cents())
		assert.InDelta(t, 5.0, m.Dollars(), 0.0001)
	})

	t.Run("should allow zero", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
		assert.False(t, m.IsPositive())
	})

	t.Run("should reject negative cents", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value equals explicit zero", func(t *testing.T) {
		var zero kernel.Money
		m, _ := kernel.NewMoneyFromCents(0)

		assert.True(t, zero.IsEqual(m))
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add sums amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(1000)
		b, _ := kernel.NewMoneyFromCents(800)

		sum := a.Add(b)

		assert.Equal(t, int64(1800), sum.Cents())
	})

	t.Run("multiply scales by quantity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromCents(500)

		subTotal := price.MultiplyBy(2)

		assert.Equal(t, int64(1000), subTotal.Cents())
	})

	t.Run("two meals A plus one meal B totals 18.00", func(t *testing.T) {
		mealA, _ := kernel.NewMoneyFromCents(500)
		mealB, _ := kernel.NewMoneyFromCents(800)

		total := mealA.MultiplyBy(2).Add(mealB.MultiplyBy(1))

		assert.Equal(t, int64(1800), total.Cents())
		assert.InDelta(t, 18.00, total.Dollars(), 0.0001)
	})
}

func TestMoney_String(t *testing.T) {
	cases := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{500, "5.00"},
		{1805, "18.05"},
	}

	for _, tc := range cases {
		m, err := kernel.NewMoneyFromCents(tc.cents)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, m.String())
	}
}
