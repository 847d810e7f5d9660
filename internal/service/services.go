package service

import (
	"github.com/talentgrid/talentgrid-server/internal/config"
	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/store"
)

type Services struct {
	AuthService   AuthService
	HealthService HealthService
}

func NewServices(storages store.Storages, provider *store.Provider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		HealthService: NewHealthService(provider, logger),
	}
}
