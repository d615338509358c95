package storage

import (
	"context"

	"qaseed/pkg/models"
)

type IStorage interface {
	Seed() ISeedStorage
	Migrate() error
	Close()
}

// ISeedStorage is the storage contract of the seed loader. InsertUsers and
// DeleteUsers each run as one transaction spanning both tables: either the
// whole batch commits or none of it does.
type ISeedStorage interface {
	// VerifySchema fails with ErrSchemaMissing unless both target tables
	// exist. The loader declares its schema dependency instead of assuming
	// the migrations ran.
	VerifySchema(ctx context.Context) error

	// InsertUsers applies the batch, silently skipping every row whose
	// telegram_id, username, or phone already exists. Skips are counted,
	// never errors, and never update the surviving row.
	InsertUsers(ctx context.Context, registered []models.RegisteredUser, pending []models.PendingUser) (*models.SeedReport, error)

	// DeleteUsers removes the given telegram_ids from their respective
	// tables and reports how many rows went away.
	DeleteUsers(ctx context.Context, registeredIDs, pendingIDs []int64) (int64, error)
}
