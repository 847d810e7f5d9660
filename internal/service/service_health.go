package service

import (
	"context"
	"fmt"
	"time"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/store"
)

// healthService answers database reachability probes. It goes through the
// pool provider so a probe on a cold process also exercises lazy pool
// construction.
type healthService struct {
	provider *store.Provider
	logger   *logger.Logger
}

// NewHealthService constructs a HealthService bound to the shared pool provider.
func NewHealthService(provider *store.Provider, logger *logger.Logger) HealthService {
	return &healthService{provider: provider, logger: logger}
}

// CheckDatabase runs SELECT NOW() against the database and returns the
// reported timestamp. Pool construction failures and query failures are both
// reported as errors; the HTTP layer maps them to the database-error response.
func (h *healthService) CheckDatabase(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx)

	db, err := h.provider.Pool(ctx)
	if err != nil {
		log.Err(err).Str("func", "healthService.CheckDatabase").Msg("database pool unavailable")
		return time.Time{}, fmt.Errorf("database pool unavailable: %w", err)
	}

	var now time.Time
	if err := db.QueryRowContext(ctx, "SELECT NOW()").Scan(&now); err != nil {
		log.Err(err).Str("func", "healthService.CheckDatabase").Msg("database probe failed")
		return time.Time{}, fmt.Errorf("database probe failed: %w", err)
	}

	return now, nil
}
