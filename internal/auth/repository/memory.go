package repository

import (
	"context"
	"sync"
	"time"

	"salon_leads_backend/platform/apperr"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]User

	// FailWith, when set, makes every operation return this error.
	FailWith error
}

// NewMemoryStore creates an empty in-memory account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[uuid.UUID]User)}
}

// GetByEmail returns the account registered under the given address.
func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return User{}, s.FailWith
	}
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return User{}, apperr.NotFound("No existe una cuenta con ese correo.")
}

// GetByID returns the account with the given ID.
func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return User{}, s.FailWith
	}
	user, ok := s.users[id]
	if !ok {
		return User{}, apperr.NotFound("No existe la cuenta.")
	}
	return user, nil
}

// Create persists a new account, rejecting duplicate emails.
func (s *MemoryStore) Create(ctx context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return apperr.Conflict("Ya existe una cuenta con ese correo.")
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = user
	return nil
}

var _ Store = (*MemoryStore)(nil)
