// Package handler exposes the leads module's HTTP endpoints.
package handler

import (
	"net/http"

	"salon_leads_backend/internal/leads/service"
	"salon_leads_backend/internal/leads/transport"
	"salon_leads_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles lead registration requests.
type Handler struct {
	svc *service.Service
}

// New creates a new leads handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// HandleRegisterLead is the form-submission entry point. It mirrors the
// saveLead RPC contract: the response body is always a SubmitResult with a
// success flag and a user-facing message, delivered with status 200. Only a
// body that cannot be decoded at all yields a 400.
func (h *Handler) HandleRegisterLead(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.RegisterLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	lead := req.ToDomain(identity.UserName(), identity.SalonName())
	result := h.svc.Register(c.Request.Context(), lead)

	httpkit.OK(c, result)
}
