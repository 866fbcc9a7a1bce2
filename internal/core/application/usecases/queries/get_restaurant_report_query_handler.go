package queries

import (
	"context"
	"database/sql"
	"time"

	"foodtasker/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRestaurantReportQueryHandler assembles the restaurant dashboard report
// from three reads: the week's delivered orders, the all-time meal
// leaderboard, and the all-time driver leaderboard.
type GetRestaurantReportQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantReportQueryHandler creates a handler for dashboard reports.
func NewGetRestaurantReportQueryHandler(db *gorm.DB) GetRestaurantReportQueryHandler {
	return GetRestaurantReportQueryHandler{db: db}
}

// Handle executes the report query.
func (h GetRestaurantReportQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantReportQuery,
) (GetRestaurantReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantReportQueryResponse{}, err
	}

	resp := GetRestaurantReportQueryResponse{
		RevenueCents: emptyWeek(),
		OrderCounts:  emptyWeek(),
	}

	if err := h.foldWeek(ctx, query, &resp); err != nil {
		return GetRestaurantReportQueryResponse{}, err
	}

	topMeals, err := h.topMeals(ctx, query)
	if err != nil {
		return GetRestaurantReportQueryResponse{}, err
	}
	resp.TopMeals = topMeals

	topDrivers, err := h.topDrivers(ctx, query)
	if err != nil {
		return GetRestaurantReportQueryResponse{}, err
	}
	resp.TopDrivers = topDrivers

	return resp, nil
}

// foldWeek buckets the week's delivered orders by the day they were placed.
func (h GetRestaurantReportQueryHandler) foldWeek(
	ctx context.Context,
	query GetRestaurantReportQuery,
	resp *GetRestaurantReportQueryResponse,
) error {
	weekStart, weekEnd := weekRange(query.WeekOf())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			created_at,
			total_cents
		FROM orders
		WHERE restaurant_id = ?
			AND status = ?
			AND created_at >= ?
			AND created_at < ?
	`, query.RestaurantID().String(), order.Delivered, weekStart, weekEnd).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var createdAt time.Time
		var totalCents int64

		if err = rows.Scan(&createdAt, &totalCents); err != nil {
			return err
		}

		key := dayKey(createdAt.In(query.WeekOf().Location()))
		resp.RevenueCents[key] += totalCents
		resp.OrderCounts[key]++
	}

	return rows.Err()
}

// topMeals ranks the restaurant's meals by total quantity sold.
func (h GetRestaurantReportQueryHandler) topMeals(
	ctx context.Context,
	query GetRestaurantReportQuery,
) ([]RestaurantReportEntry, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.name,
			COALESCE(SUM(od.quantity), 0) AS sold
		FROM meals m
		LEFT JOIN order_details od ON od.meal_id = m.id
		WHERE m.restaurant_id = ?
		GROUP BY m.id, m.name
		ORDER BY sold DESC, m.name
		LIMIT 3
	`, query.RestaurantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReportEntries(rows)
}

// topDrivers ranks every driver on the platform by how many of this
// restaurant's orders they carried, any status.
func (h GetRestaurantReportQueryHandler) topDrivers(
	ctx context.Context,
	query GetRestaurantReportQuery,
) ([]RestaurantReportEntry, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.name,
			COUNT(o.id) AS carried
		FROM drivers d
		LEFT JOIN orders o ON o.driver_id = d.id AND o.restaurant_id = ?
		GROUP BY d.id, d.name
		ORDER BY carried DESC, d.name
		LIMIT 3
	`, query.RestaurantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReportEntries(rows)
}

func scanReportEntries(rows *sql.Rows) ([]RestaurantReportEntry, error) {
	entries := make([]RestaurantReportEntry, 0, 3)

	for rows.Next() {
		var entry RestaurantReportEntry
		if err := rows.Scan(&entry.Name, &entry.Count); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
