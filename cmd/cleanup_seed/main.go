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

// Removes the fixture users from the configured storage. Only rows with the
// reserved seed ids are deleted; everything else stays.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	ctx := context.Background()

	stg, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open storage", logger.Error(err))
		os.Exit(1)
	}
	defer stg.Close()

	svc := service.New(stg, log)

	removed, err := svc.Seed().Remove(ctx)
	if err != nil {
		log.Error("failed to remove seed data", logger.Error(err))
		os.Exit(1)
	}

	log.Info("seed data removed", logger.Int64("rows", removed))
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
