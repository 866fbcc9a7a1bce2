// Package http exposes the JSON API consumed by the customer, driver, and
// restaurant clients. Every handler authenticates the caller, translates the
// request into a command or query, and renders the result into the
// status-keyed envelope the clients expect.
package http

import (
	"net/http"

	"foodtasker/internal/core/application/usecases/commands"
	"foodtasker/internal/core/application/usecases/queries"
	"foodtasker/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	markOrderReadyHandler       commands.MarkOrderReadyCommandHandler
	pickUpOrderHandler          commands.PickUpOrderCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler
	registerRestaurantHandler   commands.RegisterRestaurantCommandHandler
	addMealHandler              commands.AddMealCommandHandler
	editMealHandler             commands.EditMealCommandHandler

	// Query handlers
	getRestaurantsHandler         queries.GetRestaurantsQueryHandler
	getMealsHandler               queries.GetMealsQueryHandler
	getReadyOrdersHandler         queries.GetReadyOrdersQueryHandler
	getRestaurantOrdersHandler    queries.GetRestaurantOrdersQueryHandler
	getCustomerLatestOrderHandler queries.GetCustomerLatestOrderQueryHandler
	getDriverLatestOrderHandler   queries.GetDriverLatestOrderQueryHandler
	getDriverLocationHandler      queries.GetDriverLocationQueryHandler
	getOrderNotificationHandler   queries.GetOrderNotificationQueryHandler
	getDriverWeeklyRevenueHandler queries.GetDriverWeeklyRevenueQueryHandler
	getRestaurantReportHandler    queries.GetRestaurantReportQueryHandler

	tokens ports.AccessTokenRepository
	clock  ports.Clock
}

// Dependencies carries everything the server needs. Named fields keep the
// composition root readable with this many handlers.
type Dependencies struct {
	CreateOrderHandler          commands.CreateOrderCommandHandler
	MarkOrderReadyHandler       commands.MarkOrderReadyCommandHandler
	PickUpOrderHandler          commands.PickUpOrderCommandHandler
	CompleteDeliveryHandler     commands.CompleteDeliveryCommandHandler
	UpdateDriverLocationHandler commands.UpdateDriverLocationCommandHandler
	RegisterRestaurantHandler   commands.RegisterRestaurantCommandHandler
	AddMealHandler              commands.AddMealCommandHandler
	EditMealHandler             commands.EditMealCommandHandler

	GetRestaurantsHandler         queries.GetRestaurantsQueryHandler
	GetMealsHandler               queries.GetMealsQueryHandler
	GetReadyOrdersHandler         queries.GetReadyOrdersQueryHandler
	GetRestaurantOrdersHandler    queries.GetRestaurantOrdersQueryHandler
	GetCustomerLatestOrderHandler queries.GetCustomerLatestOrderQueryHandler
	GetDriverLatestOrderHandler   queries.GetDriverLatestOrderQueryHandler
	GetDriverLocationHandler      queries.GetDriverLocationQueryHandler
	GetOrderNotificationHandler   queries.GetOrderNotificationQueryHandler
	GetDriverWeeklyRevenueHandler queries.GetDriverWeeklyRevenueQueryHandler
	GetRestaurantReportHandler    queries.GetRestaurantReportQueryHandler

	Tokens ports.AccessTokenRepository
	Clock  ports.Clock
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		createOrderHandler:          deps.CreateOrderHandler,
		markOrderReadyHandler:       deps.MarkOrderReadyHandler,
		pickUpOrderHandler:          deps.PickUpOrderHandler,
		completeDeliveryHandler:     deps.CompleteDeliveryHandler,
		updateDriverLocationHandler: deps.UpdateDriverLocationHandler,
		registerRestaurantHandler:   deps.RegisterRestaurantHandler,
		addMealHandler:              deps.AddMealHandler,
		editMealHandler:             deps.EditMealHandler,

		getRestaurantsHandler:         deps.GetRestaurantsHandler,
		getMealsHandler:               deps.GetMealsHandler,
		getReadyOrdersHandler:         deps.GetReadyOrdersHandler,
		getRestaurantOrdersHandler:    deps.GetRestaurantOrdersHandler,
		getCustomerLatestOrderHandler: deps.GetCustomerLatestOrderHandler,
		getDriverLatestOrderHandler:   deps.GetDriverLatestOrderHandler,
		getDriverLocationHandler:      deps.GetDriverLocationHandler,
		getOrderNotificationHandler:   deps.GetOrderNotificationHandler,
		getDriverWeeklyRevenueHandler: deps.GetDriverWeeklyRevenueHandler,
		getRestaurantReportHandler:    deps.GetRestaurantReportHandler,

		tokens: deps.Tokens,
		clock:  deps.Clock,
	}
}

// RegisterRoutes wires every API route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	customer := e.Group("/api/customer")
	customer.GET("/restaurants", s.GetRestaurants)
	customer.GET("/meals/:restaurant_id", s.GetMeals)
	customer.POST("/order/add", s.CreateOrder)
	customer.GET("/order/latest", s.GetCustomerLatestOrder)
	customer.GET("/driver/location", s.GetDriverLocation)

	restaurant := e.Group("/api/restaurant")
	restaurant.GET("/order/notification", s.GetOrderNotification)
	restaurant.POST("/order/ready", s.MarkOrderReady)
	restaurant.GET("/orders", s.GetRestaurantOrders)
	restaurant.GET("/report", s.GetRestaurantReport)
	restaurant.POST("/signup", s.RegisterRestaurant)
	restaurant.GET("/meals", s.GetRestaurantMeals)
	restaurant.POST("/meal/add", s.AddMeal)
	restaurant.POST("/meal/edit", s.EditMeal)

	driver := e.Group("/api/driver")
	driver.GET("/orders/ready", s.GetReadyOrders)
	driver.POST("/order/pick", s.PickUpOrder)
	driver.GET("/order/latest", s.GetDriverLatestOrder)
	driver.POST("/order/complete", s.CompleteDelivery)
	driver.GET("/revenue", s.GetDriverRevenue)
	driver.POST("/location/update", s.UpdateDriverLocation)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
