package sync

import (
	"context"

	"github.com/mindfulhq/mindful/internal/models"
)

// Remote is the surface of the backend the engine depends on. The gateway
// client satisfies it; tests provide a fake.
type Remote interface {
	Users(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) error
	DeleteUser(ctx context.Context, id string) error
	Reminders(ctx context.Context, userID string) ([]models.Reminder, error)
	AllReminders(ctx context.Context) ([]models.Reminder, error)
	CreateReminder(ctx context.Context, r models.Reminder) error
	UpdateReminder(ctx context.Context, r models.Reminder) error
	DeleteReminder(ctx context.Context, id string) error
}
