package identity

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole    = errors.New("invalid role")
	ErrMissingSubject = errors.New("missing subject identifier")
)

// Claim is the decoded, unverified client-side view of who is logged in.
// It is advisory only: the backend independently verifies the credential on
// every request, so nothing security-critical may hinge on a Claim alone.
// Claims are never mutated in place; the session store replaces them wholesale.
type Claim struct {
	id       uuid.UUID
	fullName string
	email    string
	role     Role
}

func NewClaim(id uuid.UUID, fullName, email string, role Role) (Claim, error) {
	if id == uuid.Nil {
		return Claim{}, ErrMissingSubject
	}
	return Claim{
		id:       id,
		fullName: fullName,
		email:    email,
		role:     role,
	}, nil
}

func (c Claim) ID() uuid.UUID    { return c.id }
func (c Claim) FullName() string { return c.fullName }
func (c Claim) Email() string    { return c.email }
func (c Claim) Role() Role       { return c.role }

// HasRole reports whether the claim's role is in the allowed set,
// case-normalized on both sides.
func (c Claim) HasRole(allowed []Role) bool {
	for _, r := range allowed {
		if NormalizeRole(string(r)) == NormalizeRole(string(c.role)) {
			return true
		}
	}
	return false
}
