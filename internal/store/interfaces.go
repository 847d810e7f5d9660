package store

import (
	"context"

	"github.com/talentgrid/talentgrid-server/models"
)

// UserRepository provides persistence for platform accounts. It backs both
// the registration/login endpoints and the auth middleware's identity
// re-validation.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ResourceRepository provides descriptor-driven CRUD over the resource
// tables. Rows are surfaced as generic column→value maps because the set of
// columns varies per resource descriptor.
//
// orgID carries the caller's tenant scope: for tenant-scoped resources it is
// applied as a filter on reads and stamped onto writes. It is ignored for
// unscoped resources.
type ResourceRepository interface {
	List(ctx context.Context, res models.Resource, orgID int64) ([]map[string]any, error)
	Get(ctx context.Context, res models.Resource, id int64, orgID int64) (map[string]any, error)
	Create(ctx context.Context, res models.Resource, fields map[string]any, orgID int64) (map[string]any, error)
	Update(ctx context.Context, res models.Resource, id int64, fields map[string]any, orgID int64) (map[string]any, error)
	Delete(ctx context.Context, res models.Resource, id int64, orgID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-level error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
