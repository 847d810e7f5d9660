package http

import (
	"net/http"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

// withSchemaInit confirms the database tables backing the addressed resource
// before the request proceeds. Under the failfast policy an initializer
// failure rejects the request with the database-error envelope; under the
// default continue policy the registry logs and lets the request through in
// degraded mode.
func (h *Handler) withSchemaInit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.registry.EnsureForPath(r.Context(), r.URL.Path); err != nil {
			logger.FromRequest(r).Err(err).Msg("schema initialization rejected the request")
			utils.WriteJSON(w, models.Fail("Database error"), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r)
	})
}
