package http

import (
	"net/http"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

// withBodyLimit caps inbound request bodies at the configured byte limit.
//
// Requests that declare an oversized Content-Length up front are rejected
// with 413 before any byte of the body is read and before sanitization or
// handlers run. Bodies without a declared length are wrapped with
// http.MaxBytesReader, so a handler reading past the cap fails mid-decode;
// that failure surfaces as the same 413 through the error normalizer.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	limit := h.cfg.Server.MaxBodyBytes

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > limit {
			logger.FromRequest(r).Warn().
				Int64("content_length", r.ContentLength).
				Int64("limit", limit).
				Msg("request body exceeds the configured cap")
			utils.WriteJSON(w, models.Fail(errBodyTooLarge.Error()), http.StatusRequestEntityTooLarge)
			return
		}

		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}

		next.ServeHTTP(w, r)
	})
}
