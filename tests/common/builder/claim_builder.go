//go:build unit

package builder

import (
	"testing"

	"eiffel-bike-client/internal/domain/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type ClaimBuilder struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Role     identity.Role
}

func NewClaimBuilder() *ClaimBuilder {
	return &ClaimBuilder{
		ID:       uuid.New(),
		FullName: "Test Customer",
		Email:    "test@example.com",
		Role:     identity.RoleStudent,
	}
}

func (b *ClaimBuilder) WithRole(role identity.Role) *ClaimBuilder {
	b.Role = role
	return b
}

func (b *ClaimBuilder) WithID(id uuid.UUID) *ClaimBuilder {
	b.ID = id
	return b
}

func (b *ClaimBuilder) BuildDomain(t *testing.T) identity.Claim {
	t.Helper()
	claim, err := identity.NewClaim(b.ID, b.FullName, b.Email, b.Role)
	require.NoError(t, err)
	return claim
}

// BuildCredential produces a signed bearer token carrying the builder's
// identity, shaped like the backend issues them.
func (b *ClaimBuilder) BuildCredential(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   b.ID.String(),
		"type":  string(b.Role),
		"name":  b.FullName,
		"email": b.Email,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}
