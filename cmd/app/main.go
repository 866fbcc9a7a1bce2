package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"foodtasker/cmd"
	"foodtasker/internal/adapters/in/http"
	"foodtasker/internal/adapters/out/postgres/customerrepo"
	"foodtasker/internal/adapters/out/postgres/driverrepo"
	"foodtasker/internal/adapters/out/postgres/mealrepo"
	"foodtasker/internal/adapters/out/postgres/orderrepo"
	"foodtasker/internal/adapters/out/postgres/restaurantrepo"
	"foodtasker/internal/adapters/out/postgres/tokenrepo"
	"foodtasker/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreatePurgeExpiredTokensCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		StripeAPIKey: goDotEnvVariable("STRIPE_API_KEY"),
		Currency:     goDotEnvVariable("CURRENCY"),
	}
	if config.Currency == "" {
		config.Currency = "usd"
	}
	config.StripeTimeout = 10 * time.Second
	if raw := goDotEnvVariable("STRIPE_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Error parsing STRIPE_TIMEOUT: %v", err)
		}
		config.StripeTimeout = timeout
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&mealrepo.MealDTO{},
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&tokenrepo.AccessTokenDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := http.NewServer(http.Dependencies{
		CreateOrderHandler:          app.CreateCreateOrderCommandHandler(),
		MarkOrderReadyHandler:       app.CreateMarkOrderReadyCommandHandler(),
		PickUpOrderHandler:          app.CreatePickUpOrderCommandHandler(),
		CompleteDeliveryHandler:     app.CreateCompleteDeliveryCommandHandler(),
		UpdateDriverLocationHandler: app.CreateUpdateDriverLocationCommandHandler(),
		RegisterRestaurantHandler:   app.CreateRegisterRestaurantCommandHandler(),
		AddMealHandler:              app.CreateAddMealCommandHandler(),
		EditMealHandler:             app.CreateEditMealCommandHandler(),

		GetRestaurantsHandler:         app.CreateGetRestaurantsQueryHandler(),
		GetMealsHandler:               app.CreateGetMealsQueryHandler(),
		GetReadyOrdersHandler:         app.CreateGetReadyOrdersQueryHandler(),
		GetRestaurantOrdersHandler:    app.CreateGetRestaurantOrdersQueryHandler(),
		GetCustomerLatestOrderHandler: app.CreateGetCustomerLatestOrderQueryHandler(),
		GetDriverLatestOrderHandler:   app.CreateGetDriverLatestOrderQueryHandler(),
		GetDriverLocationHandler:      app.CreateGetDriverLocationQueryHandler(),
		GetOrderNotificationHandler:   app.CreateGetOrderNotificationQueryHandler(),
		GetDriverWeeklyRevenueHandler: app.CreateGetDriverWeeklyRevenueQueryHandler(),
		GetRestaurantReportHandler:    app.CreateGetRestaurantReportQueryHandler(),

		Tokens: app.CreateAccessTokenRepository(),
		Clock:  app.Clock(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
