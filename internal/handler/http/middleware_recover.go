package http

import (
	"net/http"
	"runtime/debug"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

// withRecover converts handler panics into the uniform 500 failure envelope.
// The panic value and stack trace are logged server-side and never reach the
// client.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromRequest(r).Error().
					Any("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("uri", r.RequestURI).
					Msg("handler panicked")
				utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
