// Package service implements the lead registration workflow: actor-context
// checks, schema validation, persistence and result mapping. Every outcome,
// including a panic below this layer, is normalized into a SubmitResult; no
// error escapes to the caller unhandled.
package service

import (
	"context"
	"fmt"
	"strings"

	"salon_leads_backend/internal/events"
	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/internal/leads/repository"
	"salon_leads_backend/platform/apperr"
	"salon_leads_backend/platform/logger"
)

const (
	msgSuccess        = "Consulta registrada exitosamente."
	msgMissingSession = "Error: Faltan datos del vendedor o del salón. Por favor, inicie sesión de nuevo."
	msgUnknownError   = "Error desconocido al registrar la consulta."
	msgInternalError  = "Error interno del servidor."
	msgErrorFallback  = "Ocurrió un error desconocido."
)

// SubmitResult is the user-facing outcome of a lead submission.
type SubmitResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Error   string              `json:"error,omitempty"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// Service orchestrates lead registration.
type Service struct {
	store repository.Store
	bus   events.Bus
	log   *logger.Logger
}

// New creates the registration service.
func New(store repository.Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{store: store, bus: bus, log: log}
}

// Register validates and persists one lead.
//
// The submitter name and salon are expected to have been filled in from the
// session, so their absence is reported as a session problem, not a form
// problem. Validation failures are field-scoped and reported all at once.
// On success a LeadRegistered event is published so cached listings are
// invalidated and notifications go out.
func (s *Service) Register(ctx context.Context, lead domain.Lead) (result SubmitResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic registering lead", "panic", fmt.Sprintf("%v", r))
			result = SubmitResult{
				Success: false,
				Message: msgInternalError,
				Error:   normalizeErrorValue(r),
			}
		}
	}()

	lead = lead.Normalized()

	if lead.UserName == "" || lead.SalonName == "" {
		return SubmitResult{Success: false, Message: msgMissingSession}
	}

	if fieldErrs := lead.Validate(); len(fieldErrs) > 0 {
		return SubmitResult{
			Success: false,
			Message: "Datos inválidos: " + joinFieldErrors(fieldErrs),
			Fields:  fieldErrs,
		}
	}

	id, err := s.store.Create(ctx, lead)
	if err != nil {
		if domainErr, ok := err.(*apperr.Error); ok {
			return SubmitResult{Success: false, Message: domainErr.Message, Error: err.Error()}
		}
		return SubmitResult{Success: false, Message: msgUnknownError, Error: normalizeErrorValue(err)}
	}

	s.bus.Publish(ctx, events.LeadRegistered{
		BaseEvent:     events.NewBaseEvent(),
		LeadID:        id,
		SalonName:     lead.SalonName,
		UserName:      lead.UserName,
		ChannelType:   string(lead.ChannelType),
		InterestLevel: string(lead.InterestLevel),
	})

	s.log.Info("lead registered",
		"id", id, "salon", lead.SalonName, "channel", string(lead.ChannelType))

	return SubmitResult{Success: true, Message: msgSuccess}
}

func joinFieldErrors(errs []domain.FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// normalizeErrorValue converts anything thrown or returned below the workflow
// into a string: error values yield their message, strings pass through,
// anything printable is printed, and everything else becomes a fixed fallback.
func normalizeErrorValue(v interface{}) string {
	switch value := v.(type) {
	case error:
		return value.Error()
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return msgErrorFallback
	}
}
