// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/talentgrid/talentgrid-server/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthCtxKey is the key used to store the authenticated caller's identity in
// the request context. Used together with GetAuthContext for type-safe
// retrieval of the [models.AuthContext] attached by the auth middleware.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AuthCtxKey, models.AuthContext{UserID: 42})
var AuthCtxKey = contextKey("authContext")

// GetAuthContext retrieves the authenticated caller's identity from the context.
//
// Returns the [models.AuthContext] and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	auth, ok := utils.GetAuthContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetAuthContext(ctx context.Context) (models.AuthContext, bool) {
	auth, ok := ctx.Value(AuthCtxKey).(models.AuthContext)
	return auth, ok
}
