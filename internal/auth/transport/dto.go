package transport

import "time"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateAccountRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	UserName  string `json:"userName" validate:"required"`
	SalonName string `json:"salonName" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=admin vendedor"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	SalonName string    `json:"salonName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	AccessToken string          `json:"accessToken"`
	User        ProfileResponse `json:"user"`
}
