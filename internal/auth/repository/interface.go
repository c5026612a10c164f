package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the stored account record.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	UserName     string
	SalonName    string
	Role         string
	CreatedAt    time.Time
}

// Store is the account persistence gateway. Emails are unique; Create fails
// with a conflict error when the address is already registered.
type Store interface {
	// GetByEmail returns the account registered under the given address.
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetByID returns the account with the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// Create persists a new account.
	Create(ctx context.Context, user User) error
}
