package rental

import (
	"time"

	"github.com/google/uuid"
)

// Rental tracks one customer's hold on one bike. Created by the rent flow;
// becomes ACTIVE only after payment confirmation (or directly for a served
// waitlist entry); RETURNED via an explicit return action.
type Rental struct {
	ID             int64
	BikeID         int64
	CustomerID     uuid.UUID
	Status         Status
	StartAt        time.Time
	EndAt          *time.Time
	TotalAmountEur float64
}

func (r Rental) IsActive() bool   { return r.Status == StatusActive }
func (r Rental) IsReserved() bool { return r.Status == StatusReserved }

// WaitlistEntry is a queued rental request for a currently-unavailable bike.
// ServedAt set means the customer may now complete payment.
type WaitlistEntry struct {
	ID         int64
	CustomerID uuid.UUID
	BikeID     int64
	CreatedAt  time.Time
	ServedAt   *time.Time
}

func (w WaitlistEntry) Served() bool {
	return w.ServedAt != nil
}

// PendingOnly filters the entries a customer can still act on.
func PendingOnly(entries []WaitlistEntry) []WaitlistEntry {
	pending := make([]WaitlistEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Served() {
			pending = append(pending, e)
		}
	}
	return pending
}

// Notification is a backend message about a rental, e.g. a served waitlist
// entry.
type Notification struct {
	ID         int64
	CustomerID uuid.UUID
	BikeID     int64
	Message    string
	SentAt     time.Time
}

// ReturnNote is the condition report attached to a completed return.
type ReturnNote struct {
	ID        int64
	BikeID    int64
	Condition Condition
	Comment   string
	CreatedAt time.Time
}

// ActiveOnly returns the rentals a customer currently holds.
func ActiveOnly(rentals []Rental) []Rental {
	active := make([]Rental, 0, len(rentals))
	for _, r := range rentals {
		if r.IsActive() {
			active = append(active, r)
		}
	}
	return active
}
