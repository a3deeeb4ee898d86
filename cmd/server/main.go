package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "carrental-backoffice/internal/api/http"
	"carrental-backoffice/internal/config"
	"carrental-backoffice/internal/logger"
	"carrental-backoffice/internal/repository/postgres"
	"carrental-backoffice/internal/security"
	"carrental-backoffice/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Back Office...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.ServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database (caller-scoped role)
	scoped, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Test database connection
	if err := scoped.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Privileged role is optional; without it every query runs scoped
	adminDSN := ""
	if cfg.Database.HasAdminCredentials() {
		adminDSN = cfg.AdminConnectionString()
		logger.Info("Privileged database role configured", "admin_user", cfg.Database.AdminUser)
	} else {
		logger.Info("No privileged database role configured, using scoped role only")
	}
	db := postgres.NewDB(scoped, adminDSN)
	defer db.Close()

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.EmployeeRepository, tokenManager)
	rentalSvc := service.NewRentalService(
		store.RentalContractRepository,
		store.CarRepository,
		store.PaymentRepository,
		store.CustomerRepository,
	)
	carSvc := service.NewCarService(store.CarRepository, store.MaintenanceRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	reportSvc := service.NewReportService(store.ReportRepository, store.CarRepository, store.CustomerRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(&httpapi.Handlers{
		Auth:     authSvc,
		Rental:   rentalSvc,
		Car:      carSvc,
		Customer: customerSvc,
		Report:   reportSvc,
		Tokens:   tokenManager,
	})

	logger.Info("HTTP server listening", "address", cfg.ServerAddress())
	if err := http.ListenAndServe(cfg.ServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
