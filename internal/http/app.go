// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"salon_leads_backend/platform/config"
	"salon_leads_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and JWT settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// StoreConfigured reports whether the persistence gateway has a live
	// client; surfaced on the health endpoint for operators.
	StoreConfigured bool
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
