package queries

import (
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetDriverWeeklyRevenueQueryIsNotConstructed = errors.New(
	"GetDriverWeeklyRevenueQuery must be created via NewGetDriverWeeklyRevenueQuery constructor",
)

// GetDriverWeeklyRevenueQuery sums a driver's delivered order totals per day
// over the week containing WeekOf. Days without deliveries report zero.
//
// Example:
//
//	query, _ := NewGetDriverWeeklyRevenueQuery(driverID, time.Now())
//	handler := NewGetDriverWeeklyRevenueQueryHandler(db)
//
//	revenue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build revenue report: %w", err)
//	}
//	fmt.Printf("Monday: %d cents\n", revenue.RevenueCents["Mon"])
type GetDriverWeeklyRevenueQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	weekOf   time.Time

	guard guard.ConstructorGuard
}

// NewGetDriverWeeklyRevenueQuery creates a weekly revenue query.
// Validates the driver identifier; weekOf may be any moment inside the
// wanted week.
func NewGetDriverWeeklyRevenueQuery(
	driverID kernel.UUID,
	weekOf time.Time,
) (GetDriverWeeklyRevenueQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverWeeklyRevenueQuery{}, err
	}

	return GetDriverWeeklyRevenueQuery{
		driverID: driverID,
		weekOf:   weekOf,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverWeeklyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverWeeklyRevenueQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver.
func (q GetDriverWeeklyRevenueQuery) DriverID() kernel.UUID {
	return q.driverID
}

// WeekOf returns the moment selecting the report week.
func (q GetDriverWeeklyRevenueQuery) WeekOf() time.Time {
	return q.weekOf
}

// GetDriverWeeklyRevenueQueryResponse maps day labels ("Mon".."Sun") to the
// driver's delivered revenue in cents. All seven days are always present.
type GetDriverWeeklyRevenueQueryResponse struct {
	RevenueCents map[string]int64
}
