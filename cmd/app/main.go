package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"transport/cmd"
	"transport/internal/adapters/out/postgres/invoicerepo"
	"transport/internal/adapters/out/postgres/partyrepo"
	"transport/internal/adapters/out/postgres/transportorderrepo"
	"transport/internal/adapters/out/postgres/vehiclerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	mustMigrateDB(gormDB)

	taxRate := 0.0
	if configs.InvoiceTaxRate != "" {
		parsed, err := strconv.ParseFloat(configs.InvoiceTaxRate, 64)
		if err != nil {
			log.Fatalf("Invalid INVOICE_TAX_RATE: %v", err)
		}
		taxRate = parsed
	}

	app := cmd.NewCompositionRoot(gormDB, logger, taxRate)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		InvoiceTaxRate: goDotEnvVariable("INVOICE_TAX_RATE"),
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

// mustOpenDB opens the connection through lib/pq and hands it to GORM,
// so driver errors keep their SQLSTATE codes for the repositories.
func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	return gormDB
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&transportorderrepo.OrderDTO{},
		&transportorderrepo.CargoLineDTO{},
		&transportorderrepo.AssignmentDTO{},
		&vehiclerepo.VehicleDTO{},
		&vehiclerepo.TripDTO{},
		&partyrepo.CustomerDTO{},
		&partyrepo.CompanyDTO{},
		&partyrepo.ImportDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.InvoiceLineDTO{},
		&invoicerepo.NamingCounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
