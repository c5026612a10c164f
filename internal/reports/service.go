package reports

import (
	"context"

	"salon_leads_backend/internal/leads/cache"
	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/internal/leads/repository"
)

// Service fetches the full stored-lead set for reporting. The set is small
// enough to materialize in memory and is rebuilt wholesale on every cache
// miss; filtering happens over the materialized list, never in the store.
type Service struct {
	store repository.Store
	cache *cache.LeadCache
}

// NewService creates the report service. The cache may be nil (caching disabled).
func NewService(store repository.Store, leadCache *cache.LeadCache) *Service {
	return &Service{store: store, cache: leadCache}
}

// Leads returns every stored lead, newest first, serving from the cache when
// a listing is available.
func (s *Service) Leads(ctx context.Context) ([]domain.StoredLead, error) {
	if leads, ok := s.cache.Get(ctx); ok {
		return leads, nil
	}

	leads, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, leads)
	return leads, nil
}
