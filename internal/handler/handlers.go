package handler

import (
	"github.com/talentgrid/talentgrid-server/internal/config"
	"github.com/talentgrid/talentgrid-server/internal/handler/http"
	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/schema"
	"github.com/talentgrid/talentgrid-server/internal/service"
	"github.com/talentgrid/talentgrid-server/internal/store"
)

// Handlers bundles the transport-level handlers of the application. HTTP is
// the only transport served.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages store.Storages, registry *schema.Registry, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, storages, registry, cfg, logger),
	}, nil
}
