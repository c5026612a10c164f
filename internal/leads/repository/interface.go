package repository

import (
	"context"

	"salon_leads_backend/internal/leads/domain"
)

// Store is the persistence gateway for leads. It is the only abstraction
// allowed to touch the document store. The model is append-only: there is no
// update or delete, and duplicate submissions produce duplicate records.
type Store interface {
	// Create appends one lead document with a server-assigned creation
	// timestamp and returns the store-assigned ID.
	Create(ctx context.Context, lead domain.Lead) (string, error)

	// ListAll returns every stored lead, newest first.
	ListAll(ctx context.Context) ([]domain.StoredLead, error)
}
