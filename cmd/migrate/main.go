package main

import (
	"context"
	"fmt"
	"os"

	"qaseed/config"
	"qaseed/pkg/logger"
	"qaseed/storage"
	"qaseed/storage/postgres"
	"qaseed/storage/sqlite"
)

// Applies pending schema migrations to the configured storage. The seed
// command itself never touches schema, so this runs first on a fresh
// database.
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

	if err := stg.Migrate(); err != nil {
		log.Error("failed to migrate", logger.Error(err))
		os.Exit(1)
	}
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
