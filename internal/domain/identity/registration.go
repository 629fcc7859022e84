package identity

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrMissingName     = errors.New("full name is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Registration is a validated sign-up request.
type Registration struct {
	FullName string
	Email    string
	Password string
	Role     Role
}

func NewRegistration(fullName, email, password, role string) (Registration, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return Registration{}, ErrMissingName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Registration{}, ErrInvalidEmail
	}
	if len(password) < 8 {
		return Registration{}, ErrPasswordTooWeak
	}
	parsedRole, err := NewRole(role)
	if err != nil {
		return Registration{}, err
	}
	return Registration{
		FullName: fullName,
		Email:    email,
		Password: password,
		Role:     parsedRole,
	}, nil
}

// Credentials is a validated login request.
type Credentials struct {
	Email    string
	Password string
}

func NewCredentials(email, password string) (Credentials, error) {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Credentials{}, ErrInvalidEmail
	}
	if password == "" {
		return Credentials{}, ErrPasswordTooWeak
	}
	return Credentials{Email: email, Password: password}, nil
}
