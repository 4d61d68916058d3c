package service

import (
	"context"

	"github.com/scies/greenchem/internal/config"
	"github.com/scies/greenchem/internal/logger"
)

type appInfoService struct {
	appVersion   string
	contactEmail string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:   cfg.Version,
		contactEmail: cfg.ContactEmail,
		logger:       logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetContactEmail(ctx context.Context) string {
	return s.contactEmail
}
