package bike

import (
	"eiffel-bike-client/internal/domain/identity"

	"github.com/google/uuid"
)

// Provider identifies who listed a bike for rent.
type Provider struct {
	ID   uuid.UUID
	Role identity.Role
}

// Bike is a read-mostly snapshot of a catalog entry. The backend is the
// source of truth; the client never mutates a Bike, only replaces it on fetch.
type Bike struct {
	ID           int64
	Description  string
	Type         Type
	DailyRateEur float64
	OfferedBy    Provider
	Status       Status
}

func (b Bike) IsOfferedBy(customerID uuid.UUID) bool {
	return b.OfferedBy.ID == customerID
}
