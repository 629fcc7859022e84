package token

import (
	"errors"

	"eiffel-bike-client/internal/domain/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMalformed         = errors.New("malformed credential")
	ErrIncompletePayload = errors.New("credential payload missing required claims")
)

// Decode extracts an identity claim from a bearer credential without
// verifying its signature. The signing key lives server-side only, so the
// result is a display/gating convenience; the backend re-verifies the
// credential on every request and remains the real authorization boundary.
//
// The customer identifier is read from the standard "sub" claim; the role is
// carried in the backend's "type" claim.
func Decode(credential string) (identity.Claim, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return identity.Claim{}, ErrMalformed
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return identity.Claim{}, ErrIncompletePayload
	}

	roleStr, ok := claims["type"].(string)
	if !ok || roleStr == "" {
		return identity.Claim{}, ErrIncompletePayload
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return identity.Claim{}, ErrMalformed
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	claim, err := identity.NewClaim(id, name, email, identity.NormalizeRole(roleStr))
	if err != nil {
		return identity.Claim{}, ErrIncompletePayload
	}
	return claim, nil
}
