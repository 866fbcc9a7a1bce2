package cmd

import (
	"time"

	"foodtasker/internal/adapters/out/postgres"
	"foodtasker/internal/adapters/out/postgres/tokenrepo"
	"foodtasker/internal/adapters/out/stripepay"
	"foodtasker/internal/core/application/usecases/commands"
	"foodtasker/internal/core/application/usecases/queries"
	"foodtasker/internal/core/ports"

	"gorm.io/gorm"
)

// systemClock is the production ports.Clock. Tests inject fixed clocks
// instead.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
	clock      ports.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    stripepay.NewGateway(config.StripeAPIKey, config.StripeTimeout),
		clock:      systemClock{},
	}
}

func (c *CompositionRoot) Clock() ports.Clock {
	return c.clock
}

func (c *CompositionRoot) CreateAccessTokenRepository() ports.AccessTokenRepository {
	return tokenrepo.NewGormAccessTokenRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.gateway, c.clock, c.config.Currency)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f)
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickUpOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterRestaurantCommandHandler() commands.RegisterRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMealCommandHandler() commands.AddMealCommandHandler {
	var f commands.MealUoWFactory = FuncMealUoWFactory(func() commands.MealUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMealCommandHandler(f)
}

func (c *CompositionRoot) CreateEditMealCommandHandler() commands.EditMealCommandHandler {
	var f commands.MealUoWFactory = FuncMealUoWFactory(func() commands.MealUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditMealCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeExpiredTokensCommandHandler() commands.PurgeExpiredTokensCommandHandler {
	var f commands.AccessTokenUoWFactory = FuncAccessTokenUoWFactory(func() commands.AccessTokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredTokensCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMealsQueryHandler() queries.GetMealsQueryHandler {
	return queries.NewGetMealsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyOrdersQueryHandler() queries.GetReadyOrdersQueryHandler {
	return queries.NewGetReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerLatestOrderQueryHandler() queries.GetCustomerLatestOrderQueryHandler {
	return queries.NewGetCustomerLatestOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverLatestOrderQueryHandler() queries.GetDriverLatestOrderQueryHandler {
	return queries.NewGetDriverLatestOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverLocationQueryHandler() queries.GetDriverLocationQueryHandler {
	return queries.NewGetDriverLocationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderNotificationQueryHandler() queries.GetOrderNotificationQueryHandler {
	return queries.NewGetOrderNotificationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverWeeklyRevenueQueryHandler() queries.GetDriverWeeklyRevenueQueryHandler {
	return queries.NewGetDriverWeeklyRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantReportQueryHandler() queries.GetRestaurantReportQueryHandler {
	return queries.NewGetRestaurantReportQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncMealUoWFactory func() commands.MealUoW

func (f FuncMealUoWFactory) Create() commands.MealUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncAccessTokenUoWFactory func() commands.AccessTokenUoW

func (f FuncAccessTokenUoWFactory) Create() commands.AccessTokenUoW {
	return f()
}
