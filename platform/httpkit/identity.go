// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated user's identity as supplied by the
// session/role gate. Handlers read the submitter name and salon from here
// instead of trusting form input.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() uuid.UUID
	// Role returns the user's role ("admin" or "vendedor").
	Role() string
	// IsAdmin returns true if the user has the admin role.
	IsAdmin() bool
	// UserName returns the user's display name for lead attribution.
	UserName() string
	// SalonName returns the salon the user is assigned to.
	SalonName() string
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

// identity is the concrete implementation of Identity.
type identity struct {
	userID        uuid.UUID
	role          string
	userName      string
	salonName     string
	authenticated bool
}

func (i *identity) UserID() uuid.UUID { return i.userID }
func (i *identity) Role() string      { return i.role }
func (i *identity) IsAdmin() bool     { return i.role == RoleAdmin }
func (i *identity) UserName() string  { return i.userName }
func (i *identity) SalonName() string { return i.salonName }

func (i *identity) IsAuthenticated() bool { return i.authenticated }

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextUserIDKey)
	if !userOK {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	return &identity{
		userID:        uid,
		role:          c.GetString(ContextRoleKey),
		userName:      c.GetString(ContextUserNameKey),
		salonName:     c.GetString(ContextSalonKey),
		authenticated: true,
	}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
