package meal_test

import (
	"testing"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/meal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func TestNewMeal(t *testing.T) {
	t.Run("creates a valid meal", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		m, err := meal.NewMeal(kernel.NewUUID(), restaurantID, "Margherita", "Tomato and mozzarella", "margherita.jpg", price(t, 500))

		require.NoError(t, err)
		assert.Equal(t, "Margherita", m.Name())
		assert.Equal(t, int64(500), m.Price().Cents())
		assert.True(t, m.BelongsToRestaurant(restaurantID))
		assert.False(t, m.BelongsToRestaurant(kernel.NewUUID()))
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := meal.NewMeal(kernel.NewUUID(), kernel.NewUUID(), "", "", "", price(t, 500))

		require.ErrorIs(t, err, meal.ErrNameIsRequired)
	})

	t.Run("price must be positive", func(t *testing.T) {
		_, err := meal.NewMeal(kernel.NewUUID(), kernel.NewUUID(), "Margherita", "", "", kernel.Money{})

		require.ErrorIs(t, err, meal.ErrPriceIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m meal.Meal
		require.ErrorIs(t, m.Validate(), meal.ErrMealIsNotConstructed)
	})
}

func TestMeal_Update(t *testing.T) {
	t.Run("replaces editable fields", func(t *testing.T) {
		m, err := meal.NewMeal(kernel.NewUUID(), kernel.NewUUID(), "Margherita", "", "", price(t, 500))
		require.NoError(t, err)

		require.NoError(t, m.Update("Diavola", "Spicy salami", "diavola.jpg", price(t, 650)))

		assert.Equal(t, "Diavola", m.Name())
		assert.Equal(t, "Spicy salami", m.ShortDescription())
		assert.Equal(t, int64(650), m.Price().Cents())
	})

	t.Run("rejects invalid updates", func(t *testing.T) {
		m, err := meal.NewMeal(kernel.NewUUID(), kernel.NewUUID(), "Margherita", "", "", price(t, 500))
		require.NoError(t, err)

		require.ErrorIs(t, m.Update("", "", "", price(t, 650)), meal.ErrNameIsRequired)
		require.ErrorIs(t, m.Update("Diavola", "", "", kernel.Money{}), meal.ErrPriceIsInvalid)
		assert.Equal(t, "Margherita", m.Name())
	})
}
