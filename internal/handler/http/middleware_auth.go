package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/utils"
	"github.com/talentgrid/talentgrid-server/models"
)

// authenticate is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], re-validates that the
// token's subject still exists through the user repository, and — on success —
// stores the caller's [models.AuthContext] in the request context under
// [utils.AuthCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following
// cases; the wrapped handler is never invoked:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, forged, malformed, or carries a wrong issuer.
//   - The subject user no longer exists.
//
// All rejection events are logged using the context-scoped logger; the client
// always receives the same uniform 401 envelope regardless of the cause.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.unauthorized(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			h.unauthorized(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.unauthorized(w, r, err)
			return
		}

		// A valid signature is not enough: the account may have been removed
		// after the token was issued.
		user, err := h.users.FindUserByID(ctx, token.UserID)
		if err != nil {
			h.unauthorized(w, r, err)
			return
		}

		authCtx := models.AuthContext{
			UserID: user.UserID,
			Role:   user.Role,
			OrgID:  user.OrgID,
		}
		ctx = context.WithValue(ctx, utils.AuthCtxKey, authCtx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRoles returns a middleware enforcing the route's authorization
// policy against the authenticated caller's role. An empty allowed set leaves
// the route open to any authenticated caller. Mismatches yield 403 with the
// uniform failure envelope; the handler is never invoked.
func (h *Handler) requireRoles(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, ok := utils.GetAuthContext(r.Context())
			if !ok {
				h.unauthorized(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			if !auth.Role.In(allowed) {
				logger.FromRequest(r).Warn().
					Str("role", string(auth.Role)).
					Int64("user_id", auth.UserID).
					Str("uri", r.RequestURI).
					Msg("role is not allowed on this route")
				utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusForbidden)), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// unauthorized logs the rejection cause and writes the uniform 401 envelope.
// The cause is never exposed to the client.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request rejected by auth guard")
	utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusUnauthorized)), http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
