package sqlite_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"qaseed/config"
	"qaseed/pkg/logger"
	"qaseed/pkg/testhelpers"
	"qaseed/storage"
	"qaseed/storage/sqlite"
)

var _ storage.IStorage = (*sqlite.Store)(nil)

func TestOpen(t *testing.T) {
	store := testhelpers.NewTestStore(t)
	db := store.GetDB()

	if err := db.Ping(); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	// In-memory databases report "memory" instead of "wal".
	if journalMode != "wal" && journalMode != "memory" {
		t.Errorf("journal_mode = %q, want wal or memory", journalMode)
	}

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

// TestOpenCreatesDataDir verifies a missing parent directory is created
// rather than reported as an error.
func TestOpenCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "qa.db")

	cfg := config.Config{SQLitePath: path}
	store, err := sqlite.New(context.Background(), cfg, logger.New("qaseed-test", "error"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(store.Close)

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
	if store.Path() != path {
		t.Errorf("Path() = %q, want %q", store.Path(), path)
	}
}

// TestOpenUnusablePath verifies an unusable target surfaces as
// ErrStorageUnavailable.
func TestOpenUnusablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("write blocker file: %v", err)
	}

	cfg := config.Config{SQLitePath: filepath.Join(blocker, "sub", "qa.db")}
	_, err := sqlite.New(context.Background(), cfg, logger.New("qaseed-test", "error"))
	if err == nil {
		t.Fatal("expected error opening store under a regular file")
	}
	if !errors.Is(err, storage.ErrStorageUnavailable) {
		t.Errorf("error = %v, want ErrStorageUnavailable", err)
	}
}

func TestMigrate(t *testing.T) {
	store := testhelpers.NewTestStore(t)

	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"registered_users", "pending_users", "banned_users", "schema_migrations"} {
		var n int
		err := store.GetDB().QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&n)
		if err != nil {
			t.Fatalf("probe %s: %v", table, err)
		}
		if n != 1 {
			t.Errorf("table %s missing after migrate", table)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	store := testhelpers.NewTestStore(t)

	for i := 0; i < 2; i++ {
		if err := store.Migrate(); err != nil {
			t.Fatalf("migrate (run %d): %v", i+1, err)
		}
	}
}
