package reminders

import (
	"context"

	"github.com/mindfulhq/mindful/internal/models"
)

// Repository describes persistence operations for reminder records.
type Repository interface {
	// ListByUser returns the reminders owned by one user.
	ListByUser(ctx context.Context, userID string) ([]models.Reminder, error)

	// ListAll returns every reminder.
	ListAll(ctx context.Context) ([]models.Reminder, error)

	// Create inserts a reminder.
	Create(ctx context.Context, r models.Reminder) error

	// Update replaces the mutable fields of a reminder by id.
	Update(ctx context.Context, r models.Reminder) error

	// Delete removes a reminder by id.
	Delete(ctx context.Context, id string) error
}
