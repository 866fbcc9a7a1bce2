package queries_test

import (
	"context"
	"testing"
	"time"

	"foodtasker/internal/adapters/out/postgres/driverrepo"
	"foodtasker/internal/adapters/out/postgres/mealrepo"
	"foodtasker/internal/adapters/out/postgres/orderrepo"
	"foodtasker/internal/core/application/usecases/queries"
	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ReportQueriesIntegrationTestSuite exercises the weekly revenue, restaurant
// report, and notification poll queries against a real PostgreSQL instance,
// covering zero-filled day buckets and top-N ranking with small candidate
// pools.
type ReportQueriesIntegrationTestSuite struct {
	suite.Suite
	container           *pgcontainer.PostgresContainer
	db                  *gorm.DB
	revenueHandler      queries.GetDriverWeeklyRevenueQueryHandler
	reportHandler       queries.GetRestaurantReportQueryHandler
	notificationHandler queries.GetOrderNotificationQueryHandler
}

func (suite *ReportQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&mealrepo.MealDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	))

	suite.revenueHandler = queries.NewGetDriverWeeklyRevenueQueryHandler(db)
	suite.reportHandler = queries.NewGetRestaurantReportQueryHandler(db)
	suite.notificationHandler = queries.NewGetOrderNotificationQueryHandler(db)
}

func (suite *ReportQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, meals, drivers CASCADE").Error)
}

func (suite *ReportQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReportQueriesIntegrationTestSuite) seedDriver(name string) uuid.UUID {
	dto := driverrepo.DriverDTO{ID: uuid.New(), Name: name}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *ReportQueriesIntegrationTestSuite) seedMeal(restaurantID uuid.UUID, name string) uuid.UUID {
	dto := mealrepo.MealDTO{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         name,
		PriceCents:   500,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *ReportQueriesIntegrationTestSuite) seedOrder(
	restaurantID uuid.UUID,
	driverID *uuid.UUID,
	status order.Status,
	totalCents int64,
	createdAt time.Time,
	pickedAt *time.Time,
) uuid.UUID {
	dto := orderrepo.OrderDTO{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: restaurantID,
		DriverID:     driverID,
		Address:      "123 Main Street",
		TotalCents:   totalCents,
		Status:       int(status),
		CreatedAt:    createdAt,
		PickedAt:     pickedAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *ReportQueriesIntegrationTestSuite) seedOrderLine(orderID, mealID uuid.UUID, quantity int) {
	dto := orderrepo.OrderLineDTO{
		ID:            uuid.New(),
		OrderID:       orderID,
		MealID:        mealID,
		Quantity:      quantity,
		SubTotalCents: int64(quantity) * 500,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func (suite *ReportQueriesIntegrationTestSuite) TestDriverWeeklyRevenue_BucketsAndZeroFills() {
	// Week of Monday 2024-03-18 .. Sunday 2024-03-24.
	weekOf := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	restaurantID := uuid.New()
	driverID := suite.seedDriver("Aziz")
	otherDriverID := suite.seedDriver("Bek")

	tue := time.Date(2024, 3, 19, 10, 0, 0, 0, time.UTC)
	fri := time.Date(2024, 3, 22, 19, 30, 0, 0, time.UTC)
	lastWeek := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)

	suite.seedOrder(restaurantID, &driverID, order.Delivered, 1500, tue.Add(-time.Hour), ptrTime(tue))
	suite.seedOrder(restaurantID, &driverID, order.Delivered, 500, tue, ptrTime(tue.Add(8*time.Hour)))
	suite.seedOrder(restaurantID, &driverID, order.Delivered, 700, fri, ptrTime(fri))
	// Placed last week, even though picked up this week; still in transit;
	// or someone else's delivery. None of these count.
	suite.seedOrder(restaurantID, &driverID, order.Delivered, 999, lastWeek, ptrTime(tue))
	suite.seedOrder(restaurantID, &driverID, order.OnTheWay, 800, weekOf, ptrTime(weekOf))
	suite.seedOrder(restaurantID, &otherDriverID, order.Delivered, 400, weekOf, ptrTime(weekOf))

	kernelDriverID, err := kernel.UUIDFromBytes(driverID[:])
	suite.Require().NoError(err)

	query, err := queries.NewGetDriverWeeklyRevenueQuery(kernelDriverID, weekOf)
	suite.Require().NoError(err)

	resp, err := suite.revenueHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Len(resp.RevenueCents, 7)
	suite.Equal(int64(0), resp.RevenueCents["Mon"])
	suite.Equal(int64(2000), resp.RevenueCents["Tue"])
	suite.Equal(int64(0), resp.RevenueCents["Wed"])
	suite.Equal(int64(0), resp.RevenueCents["Thu"])
	suite.Equal(int64(700), resp.RevenueCents["Fri"])
	suite.Equal(int64(0), resp.RevenueCents["Sat"])
	suite.Equal(int64(0), resp.RevenueCents["Sun"])
}

func (suite *ReportQueriesIntegrationTestSuite) TestRestaurantReport_RevenueCountsAndRankings() {
	weekOf := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	restaurantID := uuid.New()
	otherRestaurantID := uuid.New()

	azizID := suite.seedDriver("Aziz")
	bekID := suite.seedDriver("Bek")
	suite.seedDriver("Cho")
	zedID := suite.seedDriver("Zed")

	plovID := suite.seedMeal(restaurantID, "Plov")
	lagmanID := suite.seedMeal(restaurantID, "Lagman")
	suite.seedMeal(otherRestaurantID, "Somsa")

	mon := time.Date(2024, 3, 18, 13, 0, 0, 0, time.UTC)
	wed := time.Date(2024, 3, 20, 13, 0, 0, 0, time.UTC)

	monOrder := suite.seedOrder(restaurantID, &azizID, order.Delivered, 1000, mon, ptrTime(mon))
	wedOrder := suite.seedOrder(restaurantID, &azizID, order.Delivered, 2000, wed, ptrTime(wed))
	suite.seedOrder(restaurantID, &bekID, order.Delivered, 500, wed, ptrTime(wed))
	// Not yet delivered, or another restaurant's business.
	suite.seedOrder(restaurantID, &bekID, order.Cooking, 300, wed, nil)
	suite.seedOrder(otherRestaurantID, &zedID, order.Delivered, 9000, wed, ptrTime(wed))

	suite.seedOrderLine(monOrder, plovID, 2)
	suite.seedOrderLine(wedOrder, plovID, 3)
	suite.seedOrderLine(wedOrder, lagmanID, 2)

	kernelRestaurantID, err := kernel.UUIDFromBytes(restaurantID[:])
	suite.Require().NoError(err)

	query, err := queries.NewGetRestaurantReportQuery(kernelRestaurantID, weekOf)
	suite.Require().NoError(err)

	resp, err := suite.reportHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(int64(1000), resp.RevenueCents["Mon"])
	suite.Equal(int64(2500), resp.RevenueCents["Wed"])
	suite.Equal(int64(0), resp.RevenueCents["Sun"])
	suite.Equal(int64(1), resp.OrderCounts["Mon"])
	suite.Equal(int64(2), resp.OrderCounts["Wed"])
	suite.Equal(int64(0), resp.OrderCounts["Thu"])

	// Only two meals exist for this restaurant, so only two entries appear.
	suite.Require().Len(resp.TopMeals, 2)
	suite.Equal(queries.RestaurantReportEntry{Name: "Plov", Count: 5}, resp.TopMeals[0])
	suite.Equal(queries.RestaurantReportEntry{Name: "Lagman", Count: 2}, resp.TopMeals[1])

	// Every driver on the platform ranks, but only this restaurant's orders
	// count toward them: the still-cooking order counts for Bek, while Zed's
	// delivery for the other restaurant does not count at all, so the
	// never-assigned Cho outranks Zed on name.
	suite.Require().Len(resp.TopDrivers, 3)
	suite.Equal(queries.RestaurantReportEntry{Name: "Aziz", Count: 2}, resp.TopDrivers[0])
	suite.Equal(queries.RestaurantReportEntry{Name: "Bek", Count: 2}, resp.TopDrivers[1])
	suite.Equal(queries.RestaurantReportEntry{Name: "Cho", Count: 0}, resp.TopDrivers[2])
}

func (suite *ReportQueriesIntegrationTestSuite) TestOrderNotification_CountsEveryStatusSinceLastPoll() {
	restaurantID := uuid.New()
	otherRestaurantID := uuid.New()
	driverID := suite.seedDriver("Aziz")

	lastPoll := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	// Orders placed after the poll count no matter how far along they are.
	suite.seedOrder(restaurantID, nil, order.Cooking, 1000, lastPoll.Add(time.Minute), nil)
	suite.seedOrder(restaurantID, nil, order.Ready, 500, lastPoll.Add(2*time.Minute), nil)
	suite.seedOrder(restaurantID, &driverID, order.Delivered, 700, lastPoll.Add(3*time.Minute),
		ptrTime(lastPoll.Add(20*time.Minute)))
	// Already seen last poll, or another restaurant's order.
	suite.seedOrder(restaurantID, nil, order.Cooking, 300, lastPoll.Add(-time.Minute), nil)
	suite.seedOrder(otherRestaurantID, nil, order.Cooking, 900, lastPoll.Add(time.Minute), nil)

	kernelRestaurantID, err := kernel.UUIDFromBytes(restaurantID[:])
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderNotificationQuery(kernelRestaurantID, lastPoll)
	suite.Require().NoError(err)

	resp, err := suite.notificationHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(int64(3), resp.Count)
}

func TestReportQueriesIntegration(t *testing.T) {
	suite.Run(t, new(ReportQueriesIntegrationTestSuite))
}
