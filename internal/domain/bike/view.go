package bike

import (
	"eiffel-bike-client/internal/domain/rental"

	"github.com/google/uuid"
)

// View is a catalog entry annotated with flags derived from the viewer's own
// rentals. The flags steer the rent flow: a bike rented by the viewer is a
// no-op, a bike reserved for the viewer skips straight to payment reusing the
// existing reservation.
type View struct {
	Bike
	IsRentedByMe     bool
	IsReservedForMe  bool
	ReservedRentalID int64
}

// BuildViews recomputes every derived flag from the bike list, the rental
// list, and the viewer identity in one combined step. Callers must never
// patch flags individually: a partial recompute can leave a stale flag that
// mis-gates the rent flow (e.g. lets a self-rental through).
func BuildViews(bikes []Bike, rentals []rental.Rental, viewer uuid.UUID) []View {
	activeBikeIDs := make(map[int64]struct{})
	reservedRentals := make(map[int64]int64)
	for _, r := range rentals {
		if r.CustomerID != viewer {
			continue
		}
		switch r.Status {
		case rental.StatusActive:
			activeBikeIDs[r.BikeID] = struct{}{}
		case rental.StatusReserved:
			reservedRentals[r.BikeID] = r.ID
		}
	}

	views := make([]View, 0, len(bikes))
	for _, b := range bikes {
		v := View{Bike: b}
		if _, ok := activeBikeIDs[b.ID]; ok {
			v.IsRentedByMe = true
		}
		if rentalID, ok := reservedRentals[b.ID]; ok {
			v.IsReservedForMe = true
			v.ReservedRentalID = rentalID
		}
		views = append(views, v)
	}
	return views
}
