package queries

import (
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetRestaurantReportQueryIsNotConstructed = errors.New(
	"GetRestaurantReportQuery must be created via NewGetRestaurantReportQuery constructor",
)

// GetRestaurantReportQuery builds the restaurant dashboard report for the
// week containing WeekOf: delivered revenue and order counts per day, the
// restaurant's three best-selling meals, and the platform's three busiest
// drivers.
type GetRestaurantReportQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	weekOf       time.Time

	guard guard.ConstructorGuard
}

// NewGetRestaurantReportQuery creates a dashboard report query.
// Validates the restaurant identifier; weekOf may be any moment inside the
// wanted week.
func NewGetRestaurantReportQuery(
	restaurantID kernel.UUID,
	weekOf time.Time,
) (GetRestaurantReportQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantReportQuery{}, err
	}

	return GetRestaurantReportQuery{
		restaurantID: restaurantID,
		weekOf:       weekOf,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantReportQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantReportQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the reporting restaurant.
func (q GetRestaurantReportQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// WeekOf returns the moment selecting the report week.
func (q GetRestaurantReportQuery) WeekOf() time.Time {
	return q.weekOf
}

// RestaurantReportEntry is one ranked row of a dashboard leaderboard.
type RestaurantReportEntry struct {
	Name  string
	Count int64
}

// GetRestaurantReportQueryResponse is the dashboard report. The day maps
// always contain all seven labels "Mon".."Sun"; leaderboards hold at most
// three entries, best first.
type GetRestaurantReportQueryResponse struct {
	RevenueCents map[string]int64
	OrderCounts  map[string]int64
	TopMeals     []RestaurantReportEntry
	TopDrivers   []RestaurantReportEntry
}
