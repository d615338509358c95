package config_test

import (
	"testing"

	"qaseed/config"
)

// TestLoadDefaults verifies the configuration shipped when no environment is
// set: SQLite against a local data file.
func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVICE_NAME", "LOGGER_LEVEL", "STORAGE_DRIVER", "SQLITE_PATH",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	if cfg.ServiceName != "qaseed" {
		t.Errorf("ServiceName = %q, want %q", cfg.ServiceName, "qaseed")
	}
	if cfg.LoggerLevel != "debug" {
		t.Errorf("LoggerLevel = %q, want %q", cfg.LoggerLevel, "debug")
	}
	if cfg.StorageDriver != config.DriverSQLite {
		t.Errorf("StorageDriver = %q, want %q", cfg.StorageDriver, config.DriverSQLite)
	}
	if cfg.SQLitePath != "data/qaseed.db" {
		t.Errorf("SQLitePath = %q, want %q", cfg.SQLitePath, "data/qaseed.db")
	}
	if cfg.PostgresHost != "localhost" {
		t.Errorf("PostgresHost = %q, want %q", cfg.PostgresHost, "localhost")
	}
	if cfg.PostgresPort != "5432" {
		t.Errorf("PostgresPort = %q, want %q", cfg.PostgresPort, "5432")
	}
}

// TestLoadFromEnv verifies environment variables override the defaults.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVICE_NAME", "qaseed-ci")
	t.Setenv("LOGGER_LEVEL", "error")
	t.Setenv("STORAGE_DRIVER", config.DriverPostgres)
	t.Setenv("SQLITE_PATH", "/tmp/override.db")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_DB", "qa")

	cfg := config.Load()

	if cfg.ServiceName != "qaseed-ci" {
		t.Errorf("ServiceName = %q, want %q", cfg.ServiceName, "qaseed-ci")
	}
	if cfg.LoggerLevel != "error" {
		t.Errorf("LoggerLevel = %q, want %q", cfg.LoggerLevel, "error")
	}
	if cfg.StorageDriver != config.DriverPostgres {
		t.Errorf("StorageDriver = %q, want %q", cfg.StorageDriver, config.DriverPostgres)
	}
	if cfg.SQLitePath != "/tmp/override.db" {
		t.Errorf("SQLitePath = %q, want %q", cfg.SQLitePath, "/tmp/override.db")
	}
	if cfg.PostgresHost != "db.internal" {
		t.Errorf("PostgresHost = %q, want %q", cfg.PostgresHost, "db.internal")
	}
	if cfg.PostgresDB != "qa" {
		t.Errorf("PostgresDB = %q, want %q", cfg.PostgresDB, "qa")
	}
}
