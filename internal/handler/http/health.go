package http

import (
	"net/http"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

// live is the liveness probe. It involves no dependencies and always succeeds
// while the process is serving.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.OK("Backend is live on Vercel!"), http.StatusOK)
}

// testDB probes database reachability and reports the database clock. Any
// failure — pool construction or the probe query itself — collapses to the
// fixed "Database error" envelope; details stay in the server log.
func (h *Handler) testDB(w http.ResponseWriter, r *http.Request) {
	now, err := h.services.HealthService.CheckDatabase(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("database probe failed")
		utils.WriteJSON(w, models.Fail("Database error"), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Time: &now}, http.StatusOK)
}
