// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"salon_leads_backend/platform/events"
	"salon_leads_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadRegistered is published after a lead is successfully persisted.
// Listeners invalidate cached lead listings and send notifications.
type LeadRegistered struct {
	BaseEvent
	LeadID        string `json:"leadId"`
	SalonName     string `json:"salonName"`
	UserName      string `json:"userName"`
	ChannelType   string `json:"channelType"`
	InterestLevel string `json:"interestLevel"`
}

func (e LeadRegistered) EventName() string { return "leads.registered" }
