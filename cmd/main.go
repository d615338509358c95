package main

import (
	"context"
	"fmt"
	"os"

	"qaseed/config"
	"qaseed/pkg/logger"
	"qaseed/service"
	"qaseed/storage"
	"qaseed/storage/postgres"
	"qaseed/storage/sqlite"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	ctx := context.Background()

	// 3. Open the target storage
	stg, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open storage", logger.Error(err))
		os.Exit(1)
	}
	defer stg.Close()

	// 4. Apply the seed
	svc := service.New(stg, log)

	report, err := svc.Seed().Apply(ctx)
	if err != nil {
		log.Error("failed to apply seed", logger.Error(err))
		os.Exit(1)
	}

	log.Info("QA seed data is in place",
		logger.Int64("inserted", report.Inserted),
		logger.Int64("skipped", report.Skipped),
	)
}

func openStorage(ctx context.Context, cfg config.Config, log logger.ILogger) (storage.IStorage, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg, log)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
