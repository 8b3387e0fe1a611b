package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"greenspace/cmd"
	httpserver "greenspace/internal/adapters/in/http"
	"greenspace/internal/adapters/out/media"
	"greenspace/internal/adapters/out/postgres/orderrepo"
	"greenspace/internal/adapters/out/postgres/revisionrepo"
	"greenspace/internal/adapters/out/postgres/worktaskrepo"
	"greenspace/internal/adapters/out/shipping"
	"greenspace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	carrierClient, err := shipping.NewClient(configs.CarrierAPIBaseURL, configs.CarrierAPIToken)
	if err != nil {
		log.Fatalf("Failed to create carrier client: %v", err)
	}

	mediaStore, err := media.NewMinioStore(context.Background(), media.Config{
		Endpoint:  configs.MinioEndpoint,
		AccessKey: configs.MinioAccessKey,
		SecretKey: configs.MinioSecretKey,
		Bucket:    configs.MinioBucket,
		UseSSL:    configs.MinioUseSSL,
		PublicURL: configs.MinioPublicURL,
	})
	if err != nil {
		log.Fatalf("Failed to create media store: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, carrierClient, mediaStore, logger)

	jobManager := jobs.NewJobManager(app.ShipmentTrackingJob())
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		CarrierAPIBaseURL:    goDotEnvVariable("CARRIER_API_BASE_URL"),
		CarrierAPIToken:      goDotEnvVariable("CARRIER_API_TOKEN"),
		ShipmentPollInterval: pollInterval(goDotEnvVariable("SHIPMENT_POLL_INTERVAL")),
		MinioEndpoint:        goDotEnvVariable("MINIO_ENDPOINT"),
		MinioAccessKey:       goDotEnvVariable("MINIO_ACCESS_KEY"),
		MinioSecretKey:       goDotEnvVariable("MINIO_SECRET_KEY"),
		MinioBucket:          goDotEnvVariable("MINIO_BUCKET"),
		MinioUseSSL:          goDotEnvVariable("MINIO_USE_SSL") == "true",
		MinioPublicURL:       goDotEnvVariable("MINIO_PUBLIC_URL"),
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

// pollInterval parses the shipment polling interval, falling back to the
// default when unset or malformed.
func pollInterval(raw string) time.Duration {
	if raw == "" {
		return jobs.DefaultPollInterval
	}

	interval, err := time.ParseDuration(raw)
	if err != nil {
		log.Warnf("Invalid SHIPMENT_POLL_INTERVAL %q, using default", raw)
		return jobs.DefaultPollInterval
	}
	return interval
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&worktaskrepo.WorkTaskDTO{},
		&revisionrepo.RevisionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateServiceOrderCommandHandler(),
		app.CreateSubmitSketchCommandHandler(),
		app.CreateReviewDesignPriceCommandHandler(),
		app.CreateSelectRevisionCommandHandler(),
		app.CreateSubmitDesignCommandHandler(),
		app.CreateApplyOrderTransitionCommandHandler(),
		app.CreateScheduleWorkTaskCommandHandler(),
		app.CreateAdvanceWorkTaskCommandHandler(),
		app.CreateStartShipmentCommandHandler(),
		app.CreateGetServiceOrderQueryHandler(),
		app.CreateGetOrderRevisionsQueryHandler(),
		app.CreateGetActiveWorkTaskQueryHandler(),
		app.CreateGetTrackedShipmentsQueryHandler(),
		app.MediaStore(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
