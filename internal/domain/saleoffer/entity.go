package saleoffer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidAskingPrice = errors.New("asking price must be greater than zero")

type Status string

const (
	StatusListed Status = "LISTED"
	StatusSold   Status = "SOLD"
)

// SaleOffer lists a bike on the marketplace. A bike may carry at most one
// active offer at a time.
type SaleOffer struct {
	ID             int64
	BikeID         int64
	SellerID       uuid.UUID
	AskingPriceEur float64
	Status         Status
	ListedAt       time.Time
}

func (o SaleOffer) IsSoldBy(customerID uuid.UUID) bool {
	return o.SellerID == customerID
}

func (o SaleOffer) IsActive() bool {
	return o.Status == StatusListed
}

// ValidateAskingPrice is the client-side check before a listing call is made.
func ValidateAskingPrice(priceEur float64) error {
	if priceEur <= 0 {
		return ErrInvalidAskingPrice
	}
	return nil
}

// Note carries condition remarks attached to an offer. Offer and note are
// independent resources: a failed note attach never rolls back the offer.
type Note struct {
	ID          int64
	SaleOfferID int64
	Text        string
	CreatedAt   time.Time
}
