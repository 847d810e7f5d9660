package http

import (
	"github.com/talentgrid/talentgrid-server/internal/config"
	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/sanitize"
	"github.com/talentgrid/talentgrid-server/internal/schema"
	"github.com/talentgrid/talentgrid-server/internal/service"
	"github.com/talentgrid/talentgrid-server/internal/store"
)

type Handler struct {
	services  *service.Services
	users     store.UserRepository
	resources store.ResourceRepository
	registry  *schema.Registry
	sanitizer *sanitize.Sanitizer
	cfg       *config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, storages store.Storages, registry *schema.Registry, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		users:     storages.UserRepository,
		resources: storages.ResourceRepository,
		registry:  registry,
		sanitizer: sanitize.New(),
		cfg:       cfg,
		logger:    logger,
	}
}
