//go:build unit

package payment_test

import (
	"strings"
	"testing"

	"eiffel-bike-client/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	validNumber := strings.Repeat("4", 16)

	t.Run("accepts a complete card", func(t *testing.T) {
		card, err := payment.NewCard(validNumber, "12/30", "123")
		require.NoError(t, err)
		assert.Equal(t, validNumber, card.Number())
		assert.Equal(t, "12/30", card.Expiry())
	})

	t.Run("strips spacing from the number before counting digits", func(t *testing.T) {
		card, err := payment.NewCard("4444 4444 4444 4444", "12/30", "123")
		require.NoError(t, err)
		assert.Equal(t, validNumber, card.Number())
	})

	cases := []struct {
		name   string
		number string
		expiry string
		cvc    string
		errIs  error
	}{
		{name: "number under 16 digits", number: strings.Repeat("4", 15), expiry: "12/30", cvc: "123", errIs: payment.ErrCardNumberTooShort},
		{name: "empty number", number: "", expiry: "12/30", cvc: "123", errIs: payment.ErrCardNumberTooShort},
		{name: "missing expiry", number: validNumber, expiry: "  ", cvc: "123", errIs: payment.ErrMissingExpiry},
		{name: "security code under 3 digits", number: validNumber, expiry: "12/30", cvc: "12", errIs: payment.ErrInvalidSecurityCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := payment.NewCard(tc.number, tc.expiry, tc.cvc)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
