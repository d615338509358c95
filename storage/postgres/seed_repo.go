package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"qaseed/pkg/logger"
	"qaseed/pkg/models"
	"qaseed/storage"
)

type seedRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewSeedRepo(db *pgxpool.Pool, log logger.ILogger) storage.ISeedStorage {
	return &seedRepo{db: db, log: log}
}

var seedTables = []string{"registered_users", "pending_users"}

// VerifySchema checks that every table the seed writes to already exists in
// the current schema. The loader never creates schema on its own.
func (r *seedRepo) VerifySchema(ctx context.Context) error {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = $1
		)
	`
	for _, table := range seedTables {
		var exists bool
		if err := r.db.QueryRow(ctx, query, table).Scan(&exists); err != nil {
			r.log.Error("failed to probe table", logger.String("table", table), logger.Error(err))
			return fmt.Errorf("%w: probe table %s: %v", storage.ErrStorageUnavailable, table, err)
		}
		if !exists {
			return fmt.Errorf("%w: table %s", storage.ErrSchemaMissing, table)
		}
	}
	return nil
}

// InsertUsers writes both user sets in one transaction. Rows that collide
// with an existing telegram_id, username or phone are left untouched and
// counted as skipped.
func (r *seedRepo) InsertUsers(ctx context.Context, registered []models.RegisteredUser, pending []models.PendingUser) (*models.SeedReport, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("failed to begin transaction", logger.Error(err))
		return nil, fmt.Errorf("%w: begin: %v", storage.ErrStorageUnavailable, err)
	}
	defer tx.Rollback(ctx)

	registeredQuery := `
		INSERT INTO registered_users (telegram_id, username, first_name, last_name, email, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT DO NOTHING
	`
	pendingQuery := `
		INSERT INTO pending_users (telegram_id, username, first_name, last_name, email, phone, from_whom)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT DO NOTHING
	`

	report := &models.SeedReport{}

	for _, u := range registered {
		tag, err := tx.Exec(ctx, registeredQuery,
			u.TelegramID, u.Username, u.FirstName, u.LastName, u.Email, u.Phone, u.Role)
		if err != nil {
			r.log.Error("failed to insert registered user", logger.Int64("telegram_id", u.TelegramID), logger.Error(err))
			return nil, fmt.Errorf("insert registered user %d: %w", u.TelegramID, err)
		}
		if tag.RowsAffected() > 0 {
			report.Inserted++
		} else {
			report.Skipped++
		}
	}

	for _, u := range pending {
		tag, err := tx.Exec(ctx, pendingQuery,
			u.TelegramID, u.Username, u.FirstName, u.LastName, u.Email, u.Phone, u.FromWhom)
		if err != nil {
			r.log.Error("failed to insert pending user", logger.Int64("telegram_id", u.TelegramID), logger.Error(err))
			return nil, fmt.Errorf("insert pending user %d: %w", u.TelegramID, err)
		}
		if tag.RowsAffected() > 0 {
			report.Inserted++
		} else {
			report.Skipped++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit transaction", logger.Error(err))
		return nil, fmt.Errorf("%w: commit: %v", storage.ErrStorageUnavailable, err)
	}

	return report, nil
}

// DeleteUsers removes the given ids from both tables in one transaction and
// reports how many rows actually went away.
func (r *seedRepo) DeleteUsers(ctx context.Context, registeredIDs, pendingIDs []int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("failed to begin transaction", logger.Error(err))
		return 0, fmt.Errorf("%w: begin: %v", storage.ErrStorageUnavailable, err)
	}
	defer tx.Rollback(ctx)

	var removed int64

	tag, err := tx.Exec(ctx, `DELETE FROM registered_users WHERE telegram_id = ANY($1)`, registeredIDs)
	if err != nil {
		r.log.Error("failed to delete registered users", logger.Error(err))
		return 0, fmt.Errorf("delete registered users: %w", err)
	}
	removed += tag.RowsAffected()

	tag, err = tx.Exec(ctx, `DELETE FROM pending_users WHERE telegram_id = ANY($1)`, pendingIDs)
	if err != nil {
		r.log.Error("failed to delete pending users", logger.Error(err))
		return 0, fmt.Errorf("delete pending users: %w", err)
	}
	removed += tag.RowsAffected()

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit transaction", logger.Error(err))
		return 0, fmt.Errorf("%w: commit: %v", storage.ErrStorageUnavailable, err)
	}

	return removed, nil
}
