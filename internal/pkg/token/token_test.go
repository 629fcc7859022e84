//go:build unit

package token_test

import (
	"testing"

	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/pkg/token"
	"eiffel-bike-client/tests/common/builder"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestDecode(t *testing.T) {
	t.Run("extracts the full identity from a well-formed credential", func(t *testing.T) {
		b := builder.NewClaimBuilder().WithRole(identity.RoleEmployee)
		credential := b.BuildCredential(t)

		claim, err := token.Decode(credential)
		require.NoError(t, err)

		assert.Equal(t, b.ID, claim.ID())
		assert.Equal(t, b.FullName, claim.FullName())
		assert.Equal(t, b.Email, claim.Email())
		assert.Equal(t, identity.RoleEmployee, claim.Role())
	})

	t.Run("signature is not checked", func(t *testing.T) {
		// The backend owns the signing key; a tampered signature still
		// decodes locally and is rejected server-side on first use.
		b := builder.NewClaimBuilder()
		credential := b.BuildCredential(t) + "tampered"

		claim, err := token.Decode(credential)
		require.NoError(t, err)
		assert.Equal(t, b.ID, claim.ID())
	})

	t.Run("keeps unknown roles so gating can reject them later", func(t *testing.T) {
		id := uuid.New()
		credential := signed(t, jwt.MapClaims{"sub": id.String(), "type": "AUDITOR"})

		claim, err := token.Decode(credential)
		require.NoError(t, err)
		assert.Equal(t, identity.Role("AUDITOR"), claim.Role())
		assert.False(t, claim.HasRole([]identity.Role{identity.RoleStudent}))
	})

	t.Run("missing name and email decode to empty strings", func(t *testing.T) {
		id := uuid.New()
		credential := signed(t, jwt.MapClaims{"sub": id.String(), "type": "STUDENT"})

		claim, err := token.Decode(credential)
		require.NoError(t, err)
		assert.Empty(t, claim.FullName())
		assert.Empty(t, claim.Email())
	})

	t.Run("rejects incomplete payloads", func(t *testing.T) {
		cases := []struct {
			name   string
			claims jwt.MapClaims
		}{
			{name: "no sub", claims: jwt.MapClaims{"type": "STUDENT"}},
			{name: "empty sub", claims: jwt.MapClaims{"sub": "", "type": "STUDENT"}},
			{name: "no role type", claims: jwt.MapClaims{"sub": uuid.New().String()}},
			{name: "empty role type", claims: jwt.MapClaims{"sub": uuid.New().String(), "type": ""}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := token.Decode(signed(t, tc.claims))
				assert.ErrorIs(t, err, token.ErrIncompletePayload)
			})
		}
	})

	t.Run("rejects malformed credentials", func(t *testing.T) {
		cases := []struct {
			name       string
			credential string
		}{
			{name: "not a token", credential: "garbage"},
			{name: "empty", credential: ""},
			{name: "sub is not a uuid", credential: signed(t, jwt.MapClaims{"sub": "42", "type": "STUDENT"})},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := token.Decode(tc.credential)
				assert.ErrorIs(t, err, token.ErrMalformed)
			})
		}
	})
}
