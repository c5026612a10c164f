// Package auth provides the account and session bounded context module.
// This file defines the module that encapsulates all auth setup and route registration.
package auth

import (
	"salon_leads_backend/internal/auth/handler"
	"salon_leads_backend/internal/auth/repository"
	"salon_leads_backend/internal/auth/service"
	apphttp "salon_leads_backend/internal/http"
	"salon_leads_backend/platform/config"
	"salon_leads_backend/platform/logger"
	"salon_leads_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(store repository.Store, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(store, cfg, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the auth service for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/auth/login", m.handler.Login)
	ctx.Protected.GET("/users/me", m.handler.GetMe)
	ctx.Admin.POST("/users", m.handler.CreateAccount)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
