package testhelpers

import (
	"context"
	"testing"

	"qaseed/config"
	"qaseed/pkg/logger"
	"qaseed/storage/sqlite"
)

// NewTestStore returns an in-memory SQLite store configured the same way as
// production. It is closed automatically when the test completes.
func NewTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	cfg := config.Config{
		ServiceName:   "qaseed-test",
		LoggerLevel:   "error",
		StorageDriver: config.DriverSQLite,
		SQLitePath:    ":memory:",
	}

	store, err := sqlite.New(context.Background(), cfg, logger.New(cfg.ServiceName, cfg.LoggerLevel))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}

	t.Cleanup(store.Close)

	return store
}

// NewMigratedStore returns an in-memory store with the user schema already
// applied, ready for seeding.
func NewMigratedStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store := NewTestStore(t)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}

	return store
}
