package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

// Resource handlers are built per descriptor at route-registration time: one
// closure set per entry of the resource registry, all sharing the same
// repository. Records travel as generic column→value maps because the column
// set differs per resource.

func (h *Handler) listResource(res models.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.resources.List(r.Context(), res, orgScope(r))
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.OKData(records), http.StatusOK)
	}
}

func (h *Handler) getResource(res models.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := resourceID(r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		record, err := h.resources.Get(r.Context(), res, id, orgScope(r))
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.OKData(record), http.StatusOK)
	}
}

func (h *Handler) createResource(res models.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := h.decodePayload(r, res)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		record, err := h.resources.Create(r.Context(), res, fields, orgScope(r))
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.OKData(record), http.StatusCreated)
	}
}

func (h *Handler) updateResource(res models.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := resourceID(r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		fields, err := h.decodePayload(r, res)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		record, err := h.resources.Update(r.Context(), res, id, fields, orgScope(r))
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.OKData(record), http.StatusOK)
	}
}

func (h *Handler) deleteResource(res models.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := resourceID(r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		if err := h.resources.Delete(r.Context(), res, id, orgScope(r)); err != nil {
			h.respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.OK("deleted"), http.StatusOK)
	}
}

// decodePayload decodes the request body as a JSON object and sanitizes it
// against the resource's writable-column allow-list.
func (h *Handler) decodePayload(r *http.Request, res models.Resource) (map[string]any, error) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, decodeError(err)
	}

	return h.sanitizer.Payload(raw, res.Columns), nil
}

// decodeError distinguishes a body-cap violation from plain malformed JSON.
func decodeError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", errBodyTooLarge, err)
	}
	return fmt.Errorf("%w: %w", errInvalidJSONBody, err)
}

// resourceID parses the {id} path segment.
func resourceID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidResourceID, raw)
	}
	return id, nil
}

// orgScope returns the authenticated caller's tenant scope, zero when the
// request carries no organization binding.
func orgScope(r *http.Request) int64 {
	auth, ok := utils.GetAuthContext(r.Context())
	if !ok {
		return 0
	}
	return auth.OrgID
}
