package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"rentledger-backend/internal/config"
	"rentledger-backend/internal/jobs"
	"rentledger-backend/internal/logger"
	"rentledger-backend/internal/repository/blob"
	"rentledger-backend/internal/scheduler"
	"rentledger-backend/internal/service"
	"rentledger-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'recalculate-finance', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rent Ledger Cronjob Runner...", "log_level", cfg.Log.Level)

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
	ledgerService := service.NewLedgerService(store.TenantRepository, store.PaymentRepository, cfg.Property.Name, nil)
	financeService := service.NewFinanceService(store.FinanceRepository, store.TenantRepository, nil, nil)

	jobServices := &jobs.Services{
		Ledger:  ledgerService,
		Finance: financeService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "recalculate-finance":
		jobRunner.RecalculateFinance()
	case "report-overdue-tenants":
		jobRunner.ReportOverdueTenants()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - recalculate-finance\n")
		fmt.Printf("  - report-overdue-tenants\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}

// newBlobStore builds the configured storage backend.
func newBlobStore(cfg *config.Config) (storage.BlobStore, func(), error) {
	switch cfg.Storage.Type {
	case "", "file":
		fileStore, err := storage.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fileStore, func() {}, nil

	case "postgres":
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
		return pgStore, func() { db.Close() }, nil
	}

	panic("unreachable storage type: " + cfg.Storage.Type)
}
