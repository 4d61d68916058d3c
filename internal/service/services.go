package service

import (
	"github.com/scies/greenchem/internal/config"
	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	LookupService  LookupService
	AuditService   AuditService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, cfg.App, logger),
		LookupService:  NewLookupService(storages.Dataset, storages.QueryLog, logger),
		AuditService:   NewAuditService(storages.QueryLog, logger),
		AppInfoService: appInfoService,
	}, nil
}
