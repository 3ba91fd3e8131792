// Package session persists the currently authenticated identity. It shares
// the Local Mirror's durable medium but is keyed separately; there is no
// merge logic — last write wins.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mindfulhq/mindful/internal/client/mirror"
	"github.com/mindfulhq/mindful/internal/models"
)

// Store holds at most one authenticated identity per client. The identity
// survives process restarts.
type Store struct {
	repo mirror.Repository
}

func NewStore(repo mirror.Repository) *Store {
	return &Store{repo: repo}
}

// Get returns the current identity, or nil when anonymous. An unreadable
// or corrupt stored value is treated as anonymous rather than an error.
func (s *Store) Get(ctx context.Context) (*models.User, error) {
	data, err := s.repo.Read(ctx, mirror.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

// Set stores the identity; a nil user clears the session.
func (s *Store) Set(ctx context.Context, u *models.User) error {
	if u == nil {
		if err := s.repo.Delete(ctx, mirror.KeySession); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.repo.Write(ctx, mirror.KeySession, data); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
