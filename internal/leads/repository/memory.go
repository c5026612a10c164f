package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"salon_leads_backend/internal/leads/domain"
)

// MemoryStore is an in-memory Store used by tests and local development.
// It mirrors the gateway contract: append-only writes, server-side
// timestamps, newest-first listing.
type MemoryStore struct {
	mu    sync.Mutex
	seq   int
	now   func() time.Time
	leads []domain.StoredLead

	// FailWith, when set, makes every operation return this error.
	FailWith error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	var counter int64
	return &MemoryStore{
		// Strictly increasing timestamps so ordering is deterministic even
		// when several leads are created within the same wall-clock tick.
		now: func() time.Time {
			counter++
			return time.Now().Add(time.Duration(counter) * time.Microsecond)
		},
	}
}

func (s *MemoryStore) Create(_ context.Context, lead domain.Lead) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return "", s.FailWith
	}

	s.seq++
	stored := domain.StoredLead{
		Lead:      lead,
		ID:        fmt.Sprintf("lead-%d", s.seq),
		CreatedAt: s.now(),
	}
	s.leads = append(s.leads, stored)
	return stored.ID, nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]domain.StoredLead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return nil, s.FailWith
	}

	out := append([]domain.StoredLead(nil), s.leads...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Len returns the number of stored leads.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads)
}

var _ Store = (*MemoryStore)(nil)
