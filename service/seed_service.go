package service

import (
	"context"

	"qaseed/pkg/logger"
	"qaseed/pkg/models"
	"qaseed/pkg/seed"
	"qaseed/storage"
)

type SeedService interface {
	Apply(ctx context.Context) (*models.SeedReport, error)
	Remove(ctx context.Context) (int64, error)
}

type seedService struct {
	stg storage.ISeedStorage
	log logger.ILogger
}

func NewSeedService(stg storage.IStorage, log logger.ILogger) SeedService {
	return &seedService{
		stg: stg.Seed(),
		log: log,
	}
}

// Apply loads the fixture users into the target database. Rows that already
// exist are skipped, so running it again is safe. The schema must already be
// in place; Apply refuses to create it.
func (s *seedService) Apply(ctx context.Context) (*models.SeedReport, error) {
	if err := s.stg.VerifySchema(ctx); err != nil {
		return nil, err
	}

	report, err := s.stg.InsertUsers(ctx, seed.RegisteredUsers(), seed.PendingUsers())
	if err != nil {
		return nil, err
	}

	s.log.Info("seed applied",
		logger.Int64("inserted", report.Inserted),
		logger.Int64("skipped", report.Skipped),
	)
	return report, nil
}

// Remove deletes exactly the fixture rows and reports how many were found.
// Rows the seed never owned are left alone.
func (s *seedService) Remove(ctx context.Context) (int64, error) {
	if err := s.stg.VerifySchema(ctx); err != nil {
		return 0, err
	}

	removed, err := s.stg.DeleteUsers(ctx, seed.RegisteredIDs(), seed.PendingIDs())
	if err != nil {
		return 0, err
	}

	s.log.Info("seed removed", logger.Int64("rows", removed))
	return removed, nil
}
