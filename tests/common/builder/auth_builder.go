//go:build unit

package builder

import (
	reqdto "eiffel-bike-client/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

type RegisterBuilder struct {
	FullName string
	Email    string
	Password string
	Role     string
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{
		FullName: "Test Customer",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "STUDENT",
	}
}

func (r *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}
