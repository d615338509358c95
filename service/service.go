package service

import (
	"qaseed/pkg/logger"
	"qaseed/storage"
)

type IServiceManager interface {
	Seed() SeedService
}

type service struct {
	seedService SeedService
}

func New(stg storage.IStorage, log logger.ILogger) IServiceManager {
	return &service{
		seedService: NewSeedService(stg, log),
	}
}

func (s *service) Seed() SeedService {
	return s.seedService
}
