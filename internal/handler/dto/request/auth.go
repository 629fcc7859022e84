package request

import (
	"eiffel-bike-client/internal/domain/identity"
)

type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (identity.Registration, error) {
	return identity.NewRegistration(r.FullName, r.Email, r.Password, r.Role)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (identity.Credentials, error) {
	return identity.NewCredentials(r.Email, r.Password)
}
