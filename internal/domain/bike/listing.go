package bike

import (
	"errors"
	"strings"

	"eiffel-bike-client/internal/domain/identity"

	"github.com/google/uuid"
)

var (
	ErrMissingDescription = errors.New("description is required")
	ErrInvalidDailyRate   = errors.New("daily rate must be greater than zero")
)

// Listing is a validated request to put a bike up for rent.
type Listing struct {
	Description   string
	Type          Type
	DailyRateEur  float64
	OfferedByID   uuid.UUID
	OfferedByRole identity.Role
}

func NewListing(description string, bikeType Type, dailyRateEur float64, offeredByID uuid.UUID, offeredByRole identity.Role) (Listing, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Listing{}, ErrMissingDescription
	}
	if dailyRateEur <= 0 {
		return Listing{}, ErrInvalidDailyRate
	}
	return Listing{
		Description:   description,
		Type:          bikeType,
		DailyRateEur:  dailyRateEur,
		OfferedByID:   offeredByID,
		OfferedByRole: offeredByRole,
	}, nil
}
