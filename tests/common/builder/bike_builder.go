//go:build unit

package builder

import (
	"time"

	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/domain/rental"

	"github.com/google/uuid"
)

type BikeBuilder struct {
	ID            int64
	Description   string
	Type          bike.Type
	DailyRateEur  float64
	OfferedByID   uuid.UUID
	OfferedByRole identity.Role
	Status        bike.Status
}

func NewBikeBuilder() *BikeBuilder {
	return &BikeBuilder{
		ID:            1,
		Description:   "City bike",
		Type:          bike.TypeCity,
		DailyRateEur:  10,
		OfferedByID:   uuid.New(),
		OfferedByRole: identity.RoleEiffelBikeCorp,
		Status:        bike.StatusAvailable,
	}
}

func (b *BikeBuilder) WithID(id int64) *BikeBuilder {
	b.ID = id
	return b
}

func (b *BikeBuilder) WithStatus(status bike.Status) *BikeBuilder {
	b.Status = status
	return b
}

func (b *BikeBuilder) WithOfferedBy(id uuid.UUID) *BikeBuilder {
	b.OfferedByID = id
	return b
}

func (b *BikeBuilder) BuildDomain() bike.Bike {
	return bike.Bike{
		ID:           b.ID,
		Description:  b.Description,
		Type:         b.Type,
		DailyRateEur: b.DailyRateEur,
		OfferedBy: bike.Provider{
			ID:   b.OfferedByID,
			Role: b.OfferedByRole,
		},
		Status: b.Status,
	}
}

type RentalBuilder struct {
	ID         int64
	BikeID     int64
	CustomerID uuid.UUID
	Status     rental.Status
	StartAt    time.Time
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:         100,
		BikeID:     1,
		CustomerID: uuid.New(),
		Status:     rental.StatusActive,
		StartAt:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RentalBuilder) WithBikeID(bikeID int64) *RentalBuilder {
	r.BikeID = bikeID
	return r
}

func (r *RentalBuilder) WithCustomerID(id uuid.UUID) *RentalBuilder {
	r.CustomerID = id
	return r
}

func (r *RentalBuilder) WithStatus(status rental.Status) *RentalBuilder {
	r.Status = status
	return r
}

func (r *RentalBuilder) BuildDomain() rental.Rental {
	return rental.Rental{
		ID:         r.ID,
		BikeID:     r.BikeID,
		CustomerID: r.CustomerID,
		Status:     r.Status,
		StartAt:    r.StartAt,
	}
}
