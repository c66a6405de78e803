package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"freight/cmd"
	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres/enquiryrepo"
	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/adapters/out/postgres/paymentrepo"
	"freight/internal/adapters/out/postgres/quotationrepo"
	"freight/internal/adapters/out/postgres/routerepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)

	root := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		root.CreateExpireQuotationsCommandHandler(),
		root.CreateExpireVendorRequestsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		APISpecPath: goDotEnvVariable("API_SPEC_PATH"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&truckrepo.TruckTypeDTO{},
		&truckrepo.TruckDTO{},
		&truckrepo.DriverDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StopDTO{},
		&routerepo.SegmentPricingDTO{},
		&enquiryrepo.ManagerDTO{},
		&enquiryrepo.EnquiryDTO{},
		&enquiryrepo.PriceRangeDTO{},
		&enquiryrepo.VendorRequestDTO{},
		&quotationrepo.RequestDTO{},
		&quotationrepo.QuotationDTO{},
		&quotationrepo.ItemDTO{},
		&quotationrepo.NegotiationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryDTO{},
		&paymentrepo.PaymentDTO{},
		&paymentrepo.StatusChangeDTO{},
		&paymentrepo.InvoiceDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startWebServer(root cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := httpin.NewServer(root.NewServerHandlers())
	httpin.RegisterRoutes(e, server)

	if configs.APISpecPath != "" {
		doc, err := httpin.LoadAPISpec(context.Background(), configs.APISpecPath)
		if err != nil {
			log.Fatalf("Error loading OpenAPI document: %v", err)
		}
		httpin.RegisterAPISpec(e, doc)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
