package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "rentledger-backend/internal/api/http"
	"rentledger-backend/internal/config"
	"rentledger-backend/internal/logger"
	"rentledger-backend/internal/repository/blob"
	"rentledger-backend/internal/service"
	"rentledger-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rent Ledger Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Property configuration", "name", cfg.Property.Name)

	// Initialize blob storage
	blobStore, cleanup, err := newBlobStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	// Initialize Repositories
	store := blob.NewStore(blobStore)

	// Initialize Services
	ledgerSvc := service.NewLedgerService(store.TenantRepository, store.PaymentRepository, cfg.Property.Name, nil)
	financeSvc := service.NewFinanceService(store.FinanceRepository, store.TenantRepository, nil, nil)

	// Set up HTTP server
	router := httpapi.NewRouter(ledgerSvc, financeSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

// newBlobStore builds the configured storage backend. The returned
// cleanup closes the database connection for the postgres backend and
// is a no-op otherwise.
func newBlobStore(cfg *config.Config) (storage.BlobStore, func(), error) {
	switch cfg.Storage.Type {
	case "", "file":
		logger.Info("Using file storage", "data_dir", cfg.Storage.DataDir)
		fileStore, err := storage.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fileStore, func() {}, nil

	case "postgres":
		logger.Info("Using postgres storage", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		pgStore := storage.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Database connection established")
		return pgStore, func() { db.Close() }, nil
	}

	// config.Validate rejects anything else before we get here
	panic("unreachable storage type: " + cfg.Storage.Type)
}
