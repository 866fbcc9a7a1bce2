package http

import (
	"net/http"
	"time"

	"foodtasker/internal/core/application/usecases/commands"
	"foodtasker/internal/core/application/usecases/queries"
	"foodtasker/internal/core/domain/model/auth"
	"foodtasker/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type readyOrderJSON struct {
	ID             string    `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	Address        string    `json:"address"`
	Total          int64     `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
}

// GetReadyOrders handles GET /api/driver/orders/ready - lists claimable
// orders, the longest-waiting first.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	if _, err := s.authenticate(ctx, auth.RoleDriver); err != nil {
		return respondError(ctx, err)
	}

	query := queries.NewGetReadyOrdersQuery()

	orders, err := s.getReadyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]readyOrderJSON, len(orders))
	for i, order := range orders {
		response[i] = readyOrderJSON{
			ID:             order.ID.String(),
			RestaurantName: order.RestaurantName,
			Address:        order.Address,
			Total:          order.TotalCents,
			CreatedAt:      order.CreatedAt,
		}
	}

	return respondSuccess(ctx, map[string]any{"orders": response})
}

type orderIDRequest struct {
	OrderID string `json:"order_id"`
}

// PickUpOrder handles POST /api/driver/order/pick - claims a ready order.
// Exactly one driver wins when several race for the same order.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	driverID, err := s.authenticate(ctx, auth.RoleDriver)
	if err != nil {
		return respondError(ctx, err)
	}

	var req orderIDRequest
	if err = ctx.Bind(&req); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	cmd, err := commands.NewPickUpOrderCommand(orderID, driverID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	if err = s.pickUpOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, nil)
}

// GetDriverLatestOrder handles GET /api/driver/order/latest - the caller's
// current or most recent delivery.
func (s *Server) GetDriverLatestOrder(ctx echo.Context) error {
	driverID, err := s.authenticate(ctx, auth.RoleDriver)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverLatestOrderQuery(driverID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	order, err := s.getDriverLatestOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"order": orderToJSON(order)})
}

// CompleteDelivery handles POST /api/driver/order/complete - marks the
// caller's delivery as handed over.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	driverID, err := s.authenticate(ctx, auth.RoleDriver)
	if err != nil {
		return respondError(ctx, err)
	}

	var req orderIDRequest
	if err = ctx.Bind(&req); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, driverID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, nil)
}

// GetDriverRevenue handles GET /api/driver/revenue - the current week's
// delivered totals bucketed per day.
func (s *Server) GetDriverRevenue(ctx echo.Context) error {
	driverID, err := s.authenticate(ctx, auth.RoleDriver)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverWeeklyRevenueQuery(driverID, s.clock.Now())
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	revenue, err := s.getDriverWeeklyRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"revenue": revenue.RevenueCents})
}

type updateLocationRequest struct {
	Location string `json:"location"`
}

// UpdateDriverLocation handles POST /api/driver/location/update - records the
// caller's latest reported position.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := s.authenticate(ctx, auth.RoleDriver)
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, req.Location)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	if err = s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, nil)
}
