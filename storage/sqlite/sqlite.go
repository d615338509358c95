package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"qaseed/config"
	"qaseed/migrations"
	"qaseed/pkg/logger"
	"qaseed/storage"
)

// Store wraps the single-file SQLite database targeted by default.
type Store struct {
	path string
	db   *sql.DB
	log  logger.ILogger
}

func New(ctx context.Context, cfg config.Config, log logger.ILogger) (*Store, error) {
	path := cfg.SQLitePath

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("failed to create data dir", logger.Error(err))
			return nil, fmt.Errorf("%w: create data dir: %v", storage.ErrStorageUnavailable, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Error("failed to open SQLite", logger.Error(err))
		return nil, fmt.Errorf("%w: open sqlite: %v", storage.ErrStorageUnavailable, err)
	}

	// Single connection to avoid locking issues, and so that an in-memory
	// database is shared by every statement.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			log.Error("failed to configure SQLite", logger.Error(err))
			return nil, fmt.Errorf("%w: exec %q: %v", storage.ErrStorageUnavailable, p, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.Error("failed to ping SQLite", logger.Error(err))
		return nil, fmt.Errorf("%w: ping: %v", storage.ErrStorageUnavailable, err)
	}

	log.Info("SQLite connected", logger.String("path", path))

	return &Store{
		path: path,
		db:   db,
		log:  log,
	}, nil
}

func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Error("failed to close SQLite", logger.Error(err))
	}
}

// GetDB exposes the underlying handle, mainly for tests.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Seed() storage.ISeedStorage { return NewSeedRepo(s.db, s.log) }

// Migrate applies pending schema migrations on the store's own connection,
// so it also works against an in-memory database.
func (s *Store) Migrate() error {
	src, err := iofs.New(migrations.SQLite, "sqlite")
	if err != nil {
		return fmt.Errorf("load migration source: %w", err)
	}

	driver, err := sqlitemigrate.WithInstance(s.db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			s.log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	s.log.Info("migrations applied", logger.String("path", s.path))
	return nil
}
