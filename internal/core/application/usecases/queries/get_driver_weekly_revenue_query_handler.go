package queries

import (
	"context"
	"time"

	"foodtasker/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDriverWeeklyRevenueQueryHandler builds a driver's revenue-per-day
// report. The handler fetches the week's delivered orders in one range query
// and folds them into day buckets in Go, so bucketing follows the report
// week's timezone rather than the database server's.
type GetDriverWeeklyRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverWeeklyRevenueQueryHandler creates a handler for driver revenue reports.
func NewGetDriverWeeklyRevenueQueryHandler(db *gorm.DB) GetDriverWeeklyRevenueQueryHandler {
	return GetDriverWeeklyRevenueQueryHandler{db: db}
}

// Handle executes the report query. Only delivered orders count toward
// revenue, bucketed by the day they were placed, the same timestamp the
// restaurant report buckets on.
func (h GetDriverWeeklyRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetDriverWeeklyRevenueQuery,
) (GetDriverWeeklyRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverWeeklyRevenueQueryResponse{}, err
	}

	weekStart, weekEnd := weekRange(query.WeekOf())
	revenue := emptyWeek()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			created_at,
			total_cents
		FROM orders
		WHERE driver_id = ?
			AND status = ?
			AND created_at >= ?
			AND created_at < ?
	`, query.DriverID().String(), order.Delivered, weekStart, weekEnd).Rows()
	if err != nil {
		return GetDriverWeeklyRevenueQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var createdAt time.Time
		var totalCents int64

		if err = rows.Scan(&createdAt, &totalCents); err != nil {
			return GetDriverWeeklyRevenueQueryResponse{}, err
		}

		revenue[dayKey(createdAt.In(query.WeekOf().Location()))] += totalCents
	}

	if err = rows.Err(); err != nil {
		return GetDriverWeeklyRevenueQueryResponse{}, err
	}

	return GetDriverWeeklyRevenueQueryResponse{RevenueCents: revenue}, nil
}
