package queries

import (
	"context"

	"foodtasker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMealsQueryHandler lists one restaurant's menu from the database,
// sorted by name.
type GetMealsQueryHandler struct {
	db *gorm.DB
}

// NewGetMealsQueryHandler creates a handler for menu listing.
func NewGetMealsQueryHandler(db *gorm.DB) GetMealsQueryHandler {
	return GetMealsQueryHandler{db: db}
}

// Handle executes the query to retrieve a restaurant's meals.
func (h GetMealsQueryHandler) Handle(
	ctx context.Context,
	query GetMealsQuery,
) ([]GetMealsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	meals := make([]GetMealsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			short_description,
			image,
			price_cents
		FROM meals
		WHERE restaurant_id = ?
		ORDER BY name, id
	`, query.RestaurantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMealsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.ShortDescription,
			&resp.Image,
			&resp.PriceCents,
		)
		if err != nil {
			return nil, err
		}

		mealID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = mealID

		meals = append(meals, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}
