package http

import (
	"errors"
	"net/http"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/schema"
	"github.com/talentgrid/talentgrid-server/internal/service"
	"github.com/talentgrid/talentgrid-server/internal/store"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnknownRole:             http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrRecordNotFound:     http.StatusNotFound,
	store.ErrDuplicateRecord:    http.StatusConflict,
	store.ErrNoWritableFields:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	schema.ErrSchemaInit: http.StatusInternalServerError,

	errInvalidResourceID: http.StatusBadRequest,
	errInvalidJSONBody:   http.StatusBadRequest,
	errBodyTooLarge:      http.StatusRequestEntityTooLarge,
}

// matchSentinel resolves err to the first known sentinel it wraps and that
// sentinel's HTTP status. Unknown errors default to 500.
func matchSentinel(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}

// respondError is the terminal error normalizer: every handler and middleware
// failure funnels through it. The client receives the uniform failure
// envelope with a safe message; the full error chain is logged server-side
// only. Client-fault statuses surface the sentinel's message, server faults
// surface only the generic status text.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	sentinel, status := matchSentinel(err)

	message := http.StatusText(status)
	if sentinel != nil && status < http.StatusInternalServerError {
		message = sentinel.Error()
	}

	logger.FromRequest(r).Err(err).
		Int("status", status).
		Str("uri", r.RequestURI).
		Msg("request failed")

	utils.WriteJSON(w, models.Fail(message), status)
}
