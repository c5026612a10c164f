package handler

import (
	"net/http"

	"salon_leads_backend/internal/auth/service"
	"salon_leads_backend/internal/auth/transport"
	"salon_leads_backend/platform/httpkit"
	"salon_leads_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler serves login, account provisioning and the profile endpoint.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new auth handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Login authenticates an account and returns a bearer token plus profile.
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	token, profile, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.AuthResponse{AccessToken: token, User: profileResponse(profile)})
}

// CreateAccount provisions a new account. Admin only.
func (h *Handler) CreateAccount(c *gin.Context) {
	var req transport.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	profile, err := h.svc.CreateAccount(c.Request.Context(), service.CreateAccountInput{
		Email:     req.Email,
		Password:  req.Password,
		UserName:  req.UserName,
		SalonName: req.SalonName,
		Role:      req.Role,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, profileResponse(profile))
}

// GetMe returns the authenticated account's profile.
func (h *Handler) GetMe(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	profile, err := h.svc.GetMe(c.Request.Context(), id.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, profileResponse(profile))
}

func profileResponse(p service.Profile) transport.ProfileResponse {
	return transport.ProfileResponse{
		ID:        p.ID.String(),
		Email:     p.Email,
		UserName:  p.UserName,
		SalonName: p.SalonName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}
