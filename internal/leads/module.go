// Package leads provides the lead intake bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"context"

	"salon_leads_backend/internal/events"
	apphttp "salon_leads_backend/internal/http"
	"salon_leads_backend/internal/leads/cache"
	"salon_leads_backend/internal/leads/handler"
	"salon_leads_backend/internal/leads/repository"
	"salon_leads_backend/internal/leads/service"
	"salon_leads_backend/platform/logger"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	store   repository.Store
}

// NewModule creates and initializes the leads module with all its dependencies.
// The lead cache is invalidated on every LeadRegistered event so reports and
// dashboards never serve a listing that predates the newest lead.
func NewModule(store repository.Store, leadCache *cache.LeadCache, eventBus events.Bus, log *logger.Logger) *Module {
	svc := service.New(store, eventBus, log)

	eventBus.Subscribe(events.LeadRegistered{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		if err := leadCache.Invalidate(ctx); err != nil {
			log.Warn("lead cache invalidation failed", "error", err)
		}
		return nil
	}))

	return &Module{
		handler: handler.New(svc),
		service: svc,
		store:   store,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/leads", m.handler.HandleRegisterLead)
}

// Store exposes the persistence gateway for modules that read leads.
func (m *Module) Store() repository.Store {
	return m.store
}

var _ apphttp.Module = (*Module)(nil)
