package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"salon_leads_backend/internal/auth/password"
	"salon_leads_backend/internal/auth/repository"
	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/platform/apperr"
	"salon_leads_backend/platform/config"
	"salon_leads_backend/platform/httpkit"
	"salon_leads_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const msgBadCredentials = "Correo o contraseña incorrectos."

// Profile is the account information returned to callers. UserName and
// SalonName travel inside the access token so lead registration can attribute
// records without a store round trip.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	SalonName string    `json:"salonName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service implements login and account management. Accounts are provisioned
// by an admin; there is no self-service sign-up.
type Service struct {
	store repository.Store
	cfg   config.AuthServiceConfig
	log   *logger.Logger
	now   func() time.Time
}

// New creates the auth service.
func New(store repository.Store, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{store: store, cfg: cfg, log: log, now: time.Now}
}

// CreateAccountInput holds the fields of a new account.
type CreateAccountInput struct {
	Email     string
	Password  string
	UserName  string
	SalonName string
	Role      string
}

// Login verifies the credentials and issues a signed access token carrying
// the identity fields lead registration attributes records with. Unknown
// email and wrong password produce the same message.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (string, Profile, error) {
	email = normalizeEmail(email)

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			s.log.AuthEvent("login", email, false, "unknown email")
			return "", Profile{}, apperr.Unauthorized(msgBadCredentials)
		}
		return "", Profile{}, err
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("login", email, false, "wrong password")
		return "", Profile{}, apperr.Unauthorized(msgBadCredentials)
	}

	token, err := s.signAccessToken(user)
	if err != nil {
		return "", Profile{}, apperr.Wrap(apperr.KindInternal, "Error interno del servidor.", err)
	}

	s.log.AuthEvent("login", email, true, "")
	return token, profileOf(user), nil
}

// CreateAccount provisions a new account. The salon must be one of the
// business locations and the role one of the two known roles.
func (s *Service) CreateAccount(ctx context.Context, in CreateAccountInput) (Profile, error) {
	in.Email = normalizeEmail(in.Email)
	in.UserName = strings.TrimSpace(in.UserName)

	if !slices.Contains(domain.SalonNames, in.SalonName) {
		return Profile{}, apperr.Validation("Seleccione un salón.")
	}
	if in.Role != httpkit.RoleAdmin && in.Role != httpkit.RoleVendedor {
		return Profile{}, apperr.Validation("Seleccione un rol válido.")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return Profile{}, apperr.Wrap(apperr.KindInternal, "Error interno del servidor.", err)
	}

	user := repository.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		UserName:     in.UserName,
		SalonName:    in.SalonName,
		Role:         in.Role,
		CreatedAt:    s.now(),
	}
	if err := s.store.Create(ctx, user); err != nil {
		return Profile{}, err
	}

	s.log.AuthEvent("account_created", in.Email, true, "")
	return profileOf(user), nil
}

// GetMe returns the profile of the account with the given ID.
func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (Profile, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return profileOf(user), nil
}

func (s *Service) signAccessToken(user repository.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"role":  user.Role,
		"name":  user.UserName,
		"salon": user.SalonName,
		"exp":   now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.GetJWTSecret()))
}

func profileOf(user repository.User) Profile {
	return Profile{
		ID:        user.ID,
		Email:     user.Email,
		UserName:  user.UserName,
		SalonName: user.SalonName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
