package http

import (
	"errors"
	"net/http"
	"time"

	"foodtasker/internal/core/application/usecases/commands"
	"foodtasker/internal/core/application/usecases/queries"
	"foodtasker/internal/core/domain/model/auth"
	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type restaurantJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Logo    string `json:"logo"`
}

type mealJSON struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
	Image            string `json:"image"`
	Price            int64  `json:"price"`
}

type orderLineJSON struct {
	MealName string `json:"meal_name"`
	Quantity int    `json:"quantity"`
	SubTotal int64  `json:"sub_total"`
}

type orderJSON struct {
	ID             string          `json:"id"`
	RestaurantName string          `json:"restaurant_name"`
	DriverName     string          `json:"driver_name,omitempty"`
	Address        string          `json:"address"`
	Status         string          `json:"status"`
	Total          int64           `json:"total"`
	CreatedAt      time.Time       `json:"created_at"`
	PickedAt       *time.Time      `json:"picked_at,omitempty"`
	OrderDetails   []orderLineJSON `json:"order_details"`
}

func orderToJSON(details queries.OrderDetailsResponse) orderJSON {
	lines := make([]orderLineJSON, len(details.Lines))
	for i, line := range details.Lines {
		lines[i] = orderLineJSON{
			MealName: line.MealName,
			Quantity: line.Quantity,
			SubTotal: line.SubTotalCents,
		}
	}

	return orderJSON{
		ID:             details.ID.String(),
		RestaurantName: details.RestaurantName,
		DriverName:     details.DriverName,
		Address:        details.Address,
		Status:         details.Status,
		Total:          details.TotalCents,
		CreatedAt:      details.CreatedAt,
		PickedAt:       details.PickedAt,
		OrderDetails:   lines,
	}
}

// GetRestaurants handles GET /api/customer/restaurants - lists every
// registered restaurant. Browsing needs no token.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	query := queries.NewGetRestaurantsQuery()

	restaurants, err := s.getRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]restaurantJSON, len(restaurants))
	for i, restaurant := range restaurants {
		response[i] = restaurantJSON{
			ID:      restaurant.ID.String(),
			Name:    restaurant.Name,
			Phone:   restaurant.Phone,
			Address: restaurant.Address,
			Logo:    restaurant.LogoImage,
		}
	}

	return respondSuccess(ctx, map[string]any{"restaurants": response})
}

// GetMeals handles GET /api/customer/meals/:restaurant_id - lists one
// restaurant's menu.
func (s *Server) GetMeals(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurant_id"))
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
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

func mealsToJSON(meals []queries.GetMealsQueryResponse) []mealJSON {
	response := make([]mealJSON, len(meals))
	for i, meal := range meals {
		response[i] = mealJSON{
			ID:               meal.ID.String(),
			Name:             meal.Name,
			ShortDescription: meal.ShortDescription,
			Image:            meal.Image,
			Price:            meal.PriceCents,
		}
	}

	return response
}

type createOrderRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Address      string `json:"address"`
	OrderDetails []struct {
		MealID   string `json:"meal_id"`
		Quantity int    `json:"quantity"`
	} `json:"order_details"`
	StripeToken string `json:"stripe_token"`
}

// CreateOrder handles POST /api/customer/order/add - places a new order,
// charging the customer's card first.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx, auth.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	lines := make([]commands.OrderLineInput, 0, len(req.OrderDetails))
	for _, detail := range req.OrderDetails {
		mealID, idErr := kernel.UUIDFromString(detail.MealID)
		if idErr != nil {
			return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
		}

		line, lineErr := commands.NewOrderLineInput(mealID, detail.Quantity)
		if lineErr != nil {
			return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
		}

		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, restaurantID, req.Address, lines, req.StripeToken)
	if err != nil {
		if errors.Is(err, commands.ErrAddressIsRequired) {
			return respondFailure(ctx, http.StatusBadRequest, codeMissingAddress)
		}
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		// The only lookup that can miss during checkout is a meal id.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return respondFailure(ctx, http.StatusNotFound, codeMealNotFound)
		}
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"id": orderID.String()})
}

// GetCustomerLatestOrder handles GET /api/customer/order/latest - returns the
// caller's most recent order with its lines.
func (s *Server) GetCustomerLatestOrder(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx, auth.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerLatestOrderQuery(customerID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	order, err := s.getCustomerLatestOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"order": orderToJSON(order)})
}

// GetDriverLocation handles GET /api/customer/driver/location - reports where
// the driver carrying the caller's current order is.
func (s *Server) GetDriverLocation(ctx echo.Context) error {
	customerID, err := s.authenticate(ctx, auth.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverLocationQuery(customerID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	}

	location, err := s.getDriverLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondSuccess(ctx, map[string]any{"location": location.Location})
}
