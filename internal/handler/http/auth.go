package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/service"
	"github.com/talentgrid/talentgrid-server/internal/store"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := h.decodeUser(w, r)
	if !ok {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user registration failed")
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.OKData(map[string]any{
		"token": token.SignedString,
		"user":  registeredUser,
	}), http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := h.decodeUser(w, r)
	if !ok {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		// An unknown email and a wrong password are indistinguishable to the
		// client: both yield 401 so account existence is not probeable.
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword) {
			log.Err(err).Str("email", user.Email).Msg("login rejected")
			utils.WriteJSON(w, models.Fail("invalid email/password"), http.StatusUnauthorized)
			return
		}
		log.Err(err).Str("email", user.Email).Msg("unexpected error occurred during user login")
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.OKData(map[string]any{
		"token": token.SignedString,
		"user":  foundUser,
	}), http.StatusOK)
}

// decodeUser decodes and sanitizes a registration/login payload. On failure
// it writes the normalized error response and returns ok=false.
func (h *Handler) decodeUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.respondError(w, r, decodeError(err))
		return models.User{}, false
	}

	user.Email = h.sanitizer.String(user.Email)
	user.Name = h.sanitizer.String(user.Name)

	return user, true
}
