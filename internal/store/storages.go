package store

import (
	"github.com/talentgrid/talentgrid-server/internal/logger"
)

// Storages bundles every repository behind the shared pool provider so the
// service layer receives a single dependency at startup.
type Storages struct {
	UserRepository     UserRepository
	ResourceRepository ResourceRepository
}

// NewStorages wires all repositories to the given pool provider. The pool
// itself is not opened here; it is constructed lazily by the first request
// that needs it.
func NewStorages(provider *Provider, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(provider, logger),
		ResourceRepository: NewResourceRepository(provider, logger),
	}
}
