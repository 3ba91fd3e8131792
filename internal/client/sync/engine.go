package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mindfulhq/mindful/internal/client/mirror"
	"github.com/mindfulhq/mindful/internal/client/session"
	"github.com/mindfulhq/mindful/internal/common"
	"github.com/mindfulhq/mindful/internal/logging"
	"github.com/mindfulhq/mindful/internal/models"
)

// Engine orchestrates every domain operation through the Local Mirror and
// the Remote Gateway. It is the only writer of the mirror's collection
// snapshots. All operations run to completion, including their single
// remote attempt, before returning; callers must serialize overlapping
// mutations per collection or accept last-write-wins at whole-collection
// granularity.
type Engine struct {
	mirror   mirror.Repository
	sessions *session.Store
	remote   Remote
	logger   logging.Logger
	now      func() time.Time
}

// NewEngine wires an Engine from its collaborators.
func NewEngine(m mirror.Repository, s *session.Store, r Remote, l logging.Logger) *Engine {
	return &Engine{
		mirror:   m,
		sessions: s,
		remote:   r,
		logger:   l.With("module", "sync_engine"),
		now:      time.Now,
	}
}

// GetUsers returns the reconciled user list: the remote result merged with
// any local-only records, persisted back to the mirror. When the remote is
// unreachable the local snapshot is returned unchanged.
func (e *Engine) GetUsers(ctx context.Context) ([]models.User, error) {
	local := e.readUsers(ctx)

	remote, err := e.remote.Users(ctx)
	if err != nil {
		e.logger.Warn(ctx, "user fetch served from local mirror", "error", err)
		return local, nil
	}

	merged := mergeByID(remote, local, func(u models.User) string { return u.ID })
	if err := e.writeUsers(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// SaveUser stores a user locally (insert by id, no duplicates) and then
// best-effort forwards it to the backend, which ignores ids it already has.
func (e *Engine) SaveUser(ctx context.Context, u models.User) error {
	users := e.readUsers(ctx)

	known := false
	for _, existing := range users {
		if existing.ID == u.ID {
			known = true
			break
		}
	}
	if !known {
		users = append(users, u)
		if err := e.writeUsers(ctx, users); err != nil {
			return err
		}
	}

	if err := e.remote.CreateUser(ctx, u); err != nil {
		e.logger.Warn(ctx, "user saved locally only", "id", u.ID, "error", err)
	}
	return nil
}

// DeleteUser removes a user and all of its reminders from the mirror, then
// best-effort deletes it remotely (the backend cascades to the user's
// reminders itself). The root admin is not special-cased here: the backend
// rejects its deletion, so the optimistically removed record reappears on
// the next reconciling read.
func (e *Engine) DeleteUser(ctx context.Context, id string) error {
	users := e.readUsers(ctx)
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	reminders := e.readReminders(ctx)
	keptReminders := reminders[:0]
	for _, r := range reminders {
		if r.UserID != id {
			keptReminders = append(keptReminders, r)
		}
	}

	// Both snapshots change together; neither should land alone.
	err := e.mirror.InTx(ctx, func(repo mirror.Repository) error {
		if err := writeSnapshot(ctx, repo, mirror.CollectionUsers, kept); err != nil {
			return err
		}
		return writeSnapshot(ctx, repo, mirror.CollectionReminders, keptReminders)
	})
	if err != nil {
		return err
	}

	if err := e.remote.DeleteUser(ctx, id); err != nil {
		e.logger.Warn(ctx, "user deleted locally only", "id", id, "error", err)
	}
	return nil
}

// GetReminders returns the reconciled reminder list, scoped to userID when
// it is non-empty. The merged snapshot is always persisted unscoped, so
// local-only records of other users survive a scoped read.
func (e *Engine) GetReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	local := e.readReminders(ctx)

	var remote []models.Reminder
	var err error
	if userID == "" {
		remote, err = e.remote.AllReminders(ctx)
	} else {
		remote, err = e.remote.Reminders(ctx, userID)
	}
	if err != nil {
		e.logger.Warn(ctx, "reminder fetch served from local mirror", "error", err)
		return filterByUser(local, userID), nil
	}

	merged := mergeByID(remote, local, func(r models.Reminder) string { return r.ID })
	if err := e.writeReminders(ctx, merged); err != nil {
		return nil, err
	}
	return filterByUser(merged, userID), nil
}

// AddReminder validates and normalizes a new reminder, appends it to the
// mirror and best-effort creates it remotely. Validation failures are
// reported before anything is written.
func (e *Engine) AddReminder(ctx context.Context, r models.Reminder) error {
	if err := validateReminder(r); err != nil {
		return err
	}
	r.Normalize(e.now())

	reminders := append(e.readReminders(ctx), r)
	if err := e.writeReminders(ctx, reminders); err != nil {
		return err
	}

	if err := e.remote.CreateReminder(ctx, r); err != nil {
		e.logger.Warn(ctx, "reminder saved locally only", "id", r.ID, "error", err)
	}
	return nil
}

// UpdateReminder replaces the local copy sharing the reminder's id, then
// best-effort updates it remotely. An id unknown to the mirror leaves the
// snapshot untouched but is still sent to the backend.
func (e *Engine) UpdateReminder(ctx context.Context, r models.Reminder) error {
	if err := validateReminder(r); err != nil {
		return err
	}

	reminders := e.readReminders(ctx)
	for i, existing := range reminders {
		if existing.ID == r.ID {
			reminders[i] = r
			if err := e.writeReminders(ctx, reminders); err != nil {
				return err
			}
			break
		}
	}

	if err := e.remote.UpdateReminder(ctx, r); err != nil {
		e.logger.Warn(ctx, "reminder updated locally only", "id", r.ID, "error", err)
	}
	return nil
}

// DeleteReminder drops a reminder from the mirror and best-effort deletes
// it remotely.
func (e *Engine) DeleteReminder(ctx context.Context, id string) error {
	reminders := e.readReminders(ctx)
	kept := reminders[:0]
	for _, r := range reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if err := e.writeReminders(ctx, kept); err != nil {
		return err
	}

	if err := e.remote.DeleteReminder(ctx, id); err != nil {
		e.logger.Warn(ctx, "reminder deleted locally only", "id", id, "error", err)
	}
	return nil
}

// GetCurrentAuth returns the persisted identity, or nil when anonymous.
func (e *Engine) GetCurrentAuth(ctx context.Context) (*models.User, error) {
	return e.sessions.Get(ctx)
}

// SetAuth persists the identity; nil clears it.
func (e *Engine) SetAuth(ctx context.Context, u *models.User) error {
	return e.sessions.Set(ctx, u)
}

func validateReminder(r models.Reminder) error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if r.UserID == "" {
		return fmt.Errorf("%w: userId is required", common.ErrValidation)
	}
	return nil
}

// mergeByID merges a remote result with a local snapshot: every remote
// record wins wholesale over a local record sharing its id, and local-only
// records are appended in their local order. Merging the same remote result
// twice yields the same sequence as merging it once.
func mergeByID[T any](remote, local []T, id func(T) string) []T {
	seen := make(map[string]struct{}, len(remote))
	for _, rec := range remote {
		seen[id(rec)] = struct{}{}
	}

	merged := make([]T, 0, len(remote)+len(local))
	merged = append(merged, remote...)
	for _, rec := range local {
		if _, ok := seen[id(rec)]; !ok {
			merged = append(merged, rec)
		}
	}
	return merged
}

func filterByUser(reminders []models.Reminder, userID string) []models.Reminder {
	if userID == "" {
		return reminders
	}
	scoped := make([]models.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.UserID == userID {
			scoped = append(scoped, r)
		}
	}
	return scoped
}

// Snapshot codecs. A missing or corrupt snapshot decodes to an empty
// sequence; device storage is assumed always available, so read errors are
// logged and treated the same way.

func (e *Engine) readUsers(ctx context.Context) []models.User {
	var users []models.User
	e.readSnapshot(ctx, mirror.CollectionUsers, &users)
	return users
}

func (e *Engine) writeUsers(ctx context.Context, users []models.User) error {
	return writeSnapshot(ctx, e.mirror, mirror.CollectionUsers, users)
}

func (e *Engine) readReminders(ctx context.Context) []models.Reminder {
	var reminders []models.Reminder
	e.readSnapshot(ctx, mirror.CollectionReminders, &reminders)
	return reminders
}

func (e *Engine) writeReminders(ctx context.Context, reminders []models.Reminder) error {
	return writeSnapshot(ctx, e.mirror, mirror.CollectionReminders, reminders)
}

func (e *Engine) readSnapshot(ctx context.Context, collection string, out any) {
	data, err := e.mirror.Read(ctx, collection)
	if err != nil {
		e.logger.Error(ctx, "snapshot read failed", "collection", collection, "error", err)
		return
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		e.logger.Error(ctx, "snapshot corrupt, treating as empty", "collection", collection, "error", err)
	}
}

func writeSnapshot(ctx context.Context, repo mirror.Repository, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", collection, err)
	}
	if err := repo.Write(ctx, collection, data); err != nil {
		return fmt.Errorf("failed to persist %s snapshot: %w", collection, err)
	}
	return nil
}
