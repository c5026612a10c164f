// Package repository is the persistence gateway for account records stored
// in the "users" Firestore collection.
package repository

import (
	"context"
	"fmt"
	"time"

	"salon_leads_backend/platform/apperr"
	"salon_leads_backend/platform/logger"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

const usersCollection = "users"

// FirestoreStore persists accounts in Firestore. A nil client puts the store
// in a not-configured state: every operation fails fast with a configuration
// error and never dials the network.
type FirestoreStore struct {
	client *firestore.Client
	log    *logger.Logger
}

// NewFirestoreStore creates the gateway. The client may be nil when the
// Firebase project ID was never configured.
func NewFirestoreStore(client *firestore.Client, log *logger.Logger) *FirestoreStore {
	return &FirestoreStore{client: client, log: log}
}

func errNotConfigured() error {
	return apperr.Unavailable("La base de datos no está configurada (falta FIREBASE_PROJECT_ID).")
}

// GetByEmail returns the account registered under the given address.
func (s *FirestoreStore) GetByEmail(ctx context.Context, email string) (User, error) {
	if s.client == nil {
		return User{}, errNotConfigured()
	}

	iter := s.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return User{}, apperr.NotFound("No existe una cuenta con ese correo.")
	}
	if err != nil {
		s.log.StoreError("get user by email", err)
		return User{}, fmt.Errorf("leyendo cuenta: %w", err)
	}

	return docToUser(doc.Ref.ID, doc.Data()), nil
}

// GetByID returns the account with the given ID.
func (s *FirestoreStore) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	if s.client == nil {
		return User{}, errNotConfigured()
	}

	doc, err := s.client.Collection(usersCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if doc != nil && !doc.Exists() {
			return User{}, apperr.NotFound("No existe la cuenta.")
		}
		s.log.StoreError("get user by id", err)
		return User{}, fmt.Errorf("leyendo cuenta: %w", err)
	}

	return docToUser(doc.Ref.ID, doc.Data()), nil
}

// Create persists a new account under its ID, rejecting duplicate emails.
// The uniqueness check is a read-then-write; concurrent registrations of the
// same address are rare enough that a transaction is not worth the latency.
func (s *FirestoreStore) Create(ctx context.Context, user User) error {
	if s.client == nil {
		return errNotConfigured()
	}

	if _, err := s.GetByEmail(ctx, user.Email); err == nil {
		return apperr.Conflict("Ya existe una cuenta con ese correo.")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return err
	}

	_, err := s.client.Collection(usersCollection).Doc(user.ID.String()).Set(ctx, userToDoc(user))
	if err != nil {
		s.log.StoreError("create user", err)
		return fmt.Errorf("guardando cuenta: %w", err)
	}

	return nil
}

func userToDoc(user User) map[string]interface{} {
	return map[string]interface{}{
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"userName":     user.UserName,
		"salonName":    user.SalonName,
		"role":         user.Role,
		"createdAt":    firestore.ServerTimestamp,
	}
}

func docToUser(id string, doc map[string]interface{}) User {
	user := User{
		Email:        stringField(doc, "email"),
		PasswordHash: stringField(doc, "passwordHash"),
		UserName:     stringField(doc, "userName"),
		SalonName:    stringField(doc, "salonName"),
		Role:         stringField(doc, "role"),
	}
	if uid, err := uuid.Parse(id); err == nil {
		user.ID = uid
	}
	if ts, ok := doc["createdAt"].(time.Time); ok {
		user.CreatedAt = ts
	}
	return user
}

func stringField(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

var _ Store = (*FirestoreStore)(nil)
