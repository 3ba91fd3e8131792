package users

import (
	"context"

	"github.com/mindfulhq/mindful/internal/models"
)

// Repository describes persistence operations for user records.
type Repository interface {
	// List returns every user.
	List(ctx context.Context) ([]models.User, error)

	// CreateOrIgnore inserts a user; an already-present id is a no-op.
	CreateOrIgnore(ctx context.Context, u models.User) error

	// Delete removes a user by id. Dependent reminders are removed by the
	// store's referential integrity.
	Delete(ctx context.Context, id string) error
}
