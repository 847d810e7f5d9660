package service

import (
	"context"
	"time"

	"github.com/talentgrid/talentgrid-server/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type HealthService interface {
	// CheckDatabase verifies database reachability and returns the server
	// clock reported by the database.
	CheckDatabase(ctx context.Context) (time.Time, error)
}
