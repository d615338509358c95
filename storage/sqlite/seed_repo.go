package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"qaseed/pkg/logger"
	"qaseed/pkg/models"
	"qaseed/storage"
)

type seedRepo struct {
	db  *sql.DB
	log logger.ILogger
}

func NewSeedRepo(db *sql.DB, log logger.ILogger) storage.ISeedStorage {
	return &seedRepo{
		db:  db,
		log: log,
	}
}

var seedTables = []string{"registered_users", "pending_users"}

const (
	insertRegisteredSQL = `
		INSERT OR IGNORE INTO registered_users (telegram_id, username, first_name, last_name, email, phone, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertPendingSQL = `
		INSERT OR IGNORE INTO pending_users (telegram_id, username, first_name, last_name, email, phone, from_whom)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	deleteRegisteredSQL = `DELETE FROM registered_users WHERE telegram_id = ?`
	deletePendingSQL    = `DELETE FROM pending_users WHERE telegram_id = ?`
)

// VerifySchema checks that every table the seed writes to already exists.
// The loader never creates schema on its own.
func (r *seedRepo) VerifySchema(ctx context.Context) error {
	const query = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`

	for _, table := range seedTables {
		var n int
		if err := r.db.QueryRowContext(ctx, query, table).Scan(&n); err != nil {
			r.log.Error("failed to probe table", logger.String("table", table), logger.Error(err))
			return fmt.Errorf("%w: probe table %s: %v", storage.ErrStorageUnavailable, table, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: table %s", storage.ErrSchemaMissing, table)
		}
	}
	return nil
}

// InsertUsers writes both user sets in one transaction. Rows whose
// telegram_id, username or phone already exist are left untouched and
// counted as skipped.
func (r *seedRepo) InsertUsers(ctx context.Context, registered []models.RegisteredUser, pending []models.PendingUser) (*models.SeedReport, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.log.Error("failed to begin transaction", logger.Error(err))
		return nil, fmt.Errorf("%w: begin: %v", storage.ErrStorageUnavailable, err)
	}

	report := &models.SeedReport{}

	for _, u := range registered {
		res, err := tx.ExecContext(ctx, insertRegisteredSQL,
			u.TelegramID, u.Username, u.FirstName, u.LastName, u.Email, u.Phone, u.Role)
		if err != nil {
			tx.Rollback()
			r.log.Error("failed to insert registered user", logger.Int64("telegram_id", u.TelegramID), logger.Error(err))
			return nil, fmt.Errorf("insert registered user %d: %w", u.TelegramID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			report.Inserted++
		} else {
			report.Skipped++
		}
	}

	for _, u := range pending {
		res, err := tx.ExecContext(ctx, insertPendingSQL,
			u.TelegramID, u.Username, u.FirstName, u.LastName, u.Email, u.Phone, u.FromWhom)
		if err != nil {
			tx.Rollback()
			r.log.Error("failed to insert pending user", logger.Int64("telegram_id", u.TelegramID), logger.Error(err))
			return nil, fmt.Errorf("insert pending user %d: %w", u.TelegramID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			report.Inserted++
		} else {
			report.Skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		r.log.Error("failed to commit transaction", logger.Error(err))
		return nil, fmt.Errorf("%w: commit: %v", storage.ErrStorageUnavailable, err)
	}

	return report, nil
}

// DeleteUsers removes the given ids from both tables in one transaction and
// reports how many rows actually went away.
func (r *seedRepo) DeleteUsers(ctx context.Context, registeredIDs, pendingIDs []int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.log.Error("failed to begin transaction", logger.Error(err))
		return 0, fmt.Errorf("%w: begin: %v", storage.ErrStorageUnavailable, err)
	}

	var removed int64

	for _, id := range registeredIDs {
		res, err := tx.ExecContext(ctx, deleteRegisteredSQL, id)
		if err != nil {
			tx.Rollback()
			r.log.Error("failed to delete registered user", logger.Int64("telegram_id", id), logger.Error(err))
			return 0, fmt.Errorf("delete registered user %d: %w", id, err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}

	for _, id := range pendingIDs {
		res, err := tx.ExecContext(ctx, deletePendingSQL, id)
		if err != nil {
			tx.Rollback()
			r.log.Error("failed to delete pending user", logger.Int64("telegram_id", id), logger.Error(err))
			return 0, fmt.Errorf("delete pending user %d: %w", id, err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}

	if err := tx.Commit(); err != nil {
		r.log.Error("failed to commit transaction", logger.Error(err))
		return 0, fmt.Errorf("%w: commit: %v", storage.ErrStorageUnavailable, err)
	}

	return removed, nil
}
