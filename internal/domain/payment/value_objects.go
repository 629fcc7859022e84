package payment

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrCardNumberTooShort  = errors.New("card number must be at least 16 digits")
	ErrMissingExpiry       = errors.New("expiry is required")
	ErrInvalidSecurityCode = errors.New("security code must be at least 3 digits")
)

const DefaultMethod = "pm_card_visa"

// Card is the validated payment form input. The checks are UX validation
// only, not a security control; the payment provider does the real vetting.
type Card struct {
	number string
	expiry string
	cvc    string
}

func NewCard(number, expiry, cvc string) (Card, error) {
	digits := digitsOf(number)
	if len(digits) < 16 {
		return Card{}, ErrCardNumberTooShort
	}
	if strings.TrimSpace(expiry) == "" {
		return Card{}, ErrMissingExpiry
	}
	if len(digitsOf(cvc)) < 3 {
		return Card{}, ErrInvalidSecurityCode
	}
	return Card{number: digits, expiry: strings.TrimSpace(expiry), cvc: cvc}, nil
}

func (c Card) Number() string { return c.number }
func (c Card) Expiry() string { return c.expiry }

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
