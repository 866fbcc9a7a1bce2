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

const lastRequestTimeParam = "last_request_time"

type restaurantOrderJSON struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Address      string    `json:"address"`
	Status       string    `json:"status"`
	Total        int64     `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

type reportEntryJSON struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// GetOrderNotification handles GET /api/restaurant/order/notification -
// counts orders that arrived since the dashboard's previous poll.
func (s *Server) GetOrderNotification(ctx echo.Context) error {
	restaurantID, err := s.authenticate(ctx, auth.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	// A missing parameter counts every order the restaurant ever received.
	var lastRequestTime time.Time
	if raw := ctx.QueryParam(lastRequestTimeParam); raw != "" {
		lastRequestTime, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
		}
	}

	query, err := queries.NewGetOrderNotificationQuery(restaurantID, lastRequestTime)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	notification, err := s.getOrderNotificationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"notification": notification.Count})
}

type markOrderReadyRequest struct {
	ID string `json:"id"`
}

// MarkOrderReady handles POST /api/restaurant/order/ready - moves a cooking
// order to ready. Submitting an order that already moved on changes nothing.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	restaurantID, err := s.authenticate(ctx, auth.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	var req markOrderReadyRequest
	if err = ctx.Bind(&req); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	orderID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID, restaurantID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	if err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, nil)
}

// GetRestaurantOrders handles GET /api/restaurant/orders - the kitchen's
// order queue, newest first.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := s.authenticate(ctx, auth.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	orders, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]restaurantOrderJSON, len(orders))
	for i, order := range orders {
		response[i] = restaurantOrderJSON{
			ID:           order.ID.String(),
			CustomerName: order.CustomerName,
			Address:      order.Address,
			Status:       order.Status,
			Total:        order.TotalCents,
			CreatedAt:    order.CreatedAt,
		}
	}

	return respondSuccess(ctx, map[string]any{"orders": response})
}

// GetRestaurantReport handles GET /api/restaurant/report - the current week's
// revenue, order counts, and top-3 meals and drivers.
func (s *Server) GetRestaurantReport(ctx echo.Context) error {
	restaurantID, err := s.authenticate(ctx, auth.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetRestaurantReportQuery(restaurantID, s.clock.Now())
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	report, err := s.getRestaurantReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"report": map[string]any{
		"revenue":      report.RevenueCents,
		"order_counts": report.OrderCounts,
		"top_meals":    reportEntriesToJSON(report.TopMeals),
		"top_drivers":  reportEntriesToJSON(report.TopDrivers),
	}})
}

func reportEntriesToJSON(entries []queries.RestaurantReportEntry) []reportEntryJSON {
	response := make([]reportEntryJSON, len(entries))
	for i, entry := range entries {
		response[i] = reportEntryJSON{Name: entry.Name, Count: entry.Count}
	}

	return response
}

type registerRestaurantRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Logo    string `json:"logo"`
}

// RegisterRestaurant handles POST /api/restaurant/signup - creates the
// caller's restaurant profile, or updates it when one already exists.
func (s *Server) RegisterRestaurant(ctx echo.Context) error {
	restaurantID, err := s.authenticate(ctx, auth.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	var req registerRestaurantRequest
	if err = ctx.Bind(&req); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	cmd, err := commands.NewRegisterRestaurantCommand(
		restaurantID, req.Name, req.Phone, req.Address, req.Logo)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	if err = s.registerRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, nil)
}

// GetRestaurantMeals handles GET /api/restaurant/meals - the caller's own
// menu for the management screen.
func (s *Server) GetRestaurantMeals(ctx echo.Context) error {
	restaurantID, err := s.authenticate(ctx, auth.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMealsQuery(restaurantID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	meals, err := s.getMealsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"meals": mealsToJSON(meals)})
}

type mealRequest struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
	Image            string `json:"image"`
	Price            int64  `json:"price"`
}

// AddMeal handles POST /api/restaurant/meal/add - puts a new dish on the
// caller's menu.
func (s *Server) AddMeal(ctx echo.Context) error {
	restaurantID, err := s.authenticate(ctx, auth.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	var req mealRequest
	if err = ctx.Bind(&req); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	price, err := kernel.NewMoneyFromCents(req.Price)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	mealID := kernel.NewUUID()

	cmd, err := commands.NewAddMealCommand(
		mealID, restaurantID, req.Name, req.ShortDescription, req.Image, price)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	if err = s.addMealHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"id": mealID.String()})
}

// EditMeal handles POST /api/restaurant/meal/edit - revises one of the
// caller's dishes. Existing orders keep their price snapshots.
func (s *Server) EditMeal(ctx echo.Context) error {
	restaurantID, err := s.authenticate(ctx, auth.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	var req mealRequest
	if err = ctx.Bind(&req); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	mealID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	price, err := kernel.NewMoneyFromCents(req.Price)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	cmd, err := commands.NewEditMealCommand(
		mealID, restaurantID, req.Name, req.ShortDescription, req.Image, price)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	if err = s.editMealHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, nil)
}
